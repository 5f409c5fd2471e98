package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// Alignment is a padding rule.
//
// For a single value, padding to the next multiple of Width bits is applied after the value.
// For arrays and slices, padding is applied after every Every elements, and always after the last one.
// If Every is 0, the elements are packed and only the end of the field is padded.
//
// Offsets are counted from the start of the record, so encoding and decoding pad identically.
type Alignment struct {
	Width int
	Every int
}

// Enabled returns true if the Alignment ever pads.
func (a Alignment) Enabled() bool { return a.Width > 1 }

// after returns true if padding follows element i of n.
func (a Alignment) after(i, n int) bool {
	if !a.Enabled() {
		return false
	}
	if i == n-1 {
		return true
	}
	return a.Every > 0 && (i+1)%a.Every == 0
}

// encodeElem pads w if element i of n is followed by padding.
func (a Alignment) encodeElem(w *encio.BitWriter, i, n int) {
	if a.after(i, n) {
		w.Pad(a.Width)
	}
}

// decodeElem skips padding in r if element i of n is followed by padding.
func (a Alignment) decodeElem(r *encio.BitReader, i, n int) error {
	if a.after(i, n) {
		_, err := r.Align(a.Width)
		return err
	}
	return nil
}

// size returns the encoded size of n elements of elemSize bits.
// Padding depends on where the field starts, so aligned fields are always variable.
func (a Alignment) size(elemSize, n int) int {
	if elemSize < 0 || a.Enabled() {
		return -1
	}
	return elemSize * n
}

// NewAligned returns an Encodable that pads after enc to the next multiple of width bits.
func NewAligned(enc Encodable, width int) *Aligned {
	if width < 1 {
		panic(encio.NewError(encio.ErrBadConfig, fmt.Sprintf("alignment width %v is not positive", width), 0))
	}
	return &Aligned{
		Encodable: enc,
		width:     width,
	}
}

// Aligned wraps an Encodable, padding after it.
type Aligned struct {
	Encodable
	width int
}

// Size implements Encodable.
// Padding depends on where the value starts, so the size is variable unless width is 1.
func (e *Aligned) Size() int {
	if e.width == 1 {
		return e.Encodable.Size()
	}
	return -1
}

// Type implements Encodable.
func (e *Aligned) Type() reflect.Type { return e.Encodable.Type() }

// Encode implements Encodable.
func (e *Aligned) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	if err := e.Encodable.Encode(ptr, w); err != nil {
		return err
	}
	w.Pad(e.width)
	return nil
}

// Decode implements Encodable.
func (e *Aligned) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	if err := e.Encodable.Decode(ptr, r, s); err != nil {
		return err
	}
	_, err := r.Align(e.width)
	return err
}
