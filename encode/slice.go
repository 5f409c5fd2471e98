package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// NewSlice returns a new slice Encodable.
// The encoded form carries no length; opts.Length gives the element count while decoding,
// and NewSlice panics with an Error wrapping encio.ErrMissingLength if it is nil.
func NewSlice(ty reflect.Type, opts Options, src Source) *Slice {
	if ty.Kind() != reflect.Slice {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a slice", ty), 0))
	}
	if opts.Length == nil {
		panic(encio.NewError(encio.ErrMissingLength, fmt.Sprintf("slice field %v (%v) needs a len or lenfunc option", opts.Name, ty), 0))
	}

	return &Slice{
		t:      ty,
		name:   opts.Name,
		elem:   src.NewEncodable(ty.Elem(), opts.elem(), src),
		length: opts.Length,
		align:  opts.Align,
	}
}

// Slice is an Encodable for slices.
type Slice struct {
	t      reflect.Type
	name   string
	elem   Encodable
	length Length
	align  Alignment
}

// Size implemenets Encodable.
func (e *Slice) Size() int {
	return -1
}

// Type implements Encodable.
func (e *Slice) Type() reflect.Type {
	return e.t
}

// Encode implements Encodable.Encode.
// Every element present is encoded; the length policy is not consulted.
func (e *Slice) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)

	slice := reflect.NewAt(e.t, ptr).Elem()
	l := slice.Len()
	for i := 0; i < l; i++ {
		if err := e.elem.Encode(unsafe.Pointer(slice.Index(i).UnsafeAddr()), w); err != nil {
			return err
		}
		e.align.encodeElem(w, i, l)
	}
	return nil
}

// Decode implemenets Encodable.
// A length of zero decodes to a nil slice.
// Lengths whose elements would take more than encio.TooBig bits of memory give a DataError wrapping encio.ErrOutOfRange.
func (e *Slice) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)
	slice := reflect.NewAt(e.t, ptr).Elem()

	length, err := e.length.Len(e.name, s)
	if err != nil {
		return err
	}

	if length < 0 || length > encio.TooBig {
		return encio.NewDataError(
			encio.ErrOutOfRange,
			r.Offset(),
			fmt.Sprintf("%v has invalid length %v", e.name, length),
		)
	}

	if length == 0 {
		slice.Set(reflect.Zero(e.t))
		return nil
	}

	if mem := uint64(length) * uint64(e.t.Elem().Size()) * 8; mem > uint64(encio.TooBig) {
		return encio.NewDataError(
			encio.ErrOutOfRange,
			r.Offset(),
			fmt.Sprintf("%v elements in %v need %v bits of memory", length, e.name, mem),
		)
	}

	// Variable size elements aren't known to fit until they're decoded,
	// so the slice grows as they are, starting from what the input could hold.
	capacity := length
	if size := e.elem.Size(); size > 0 {
		if length > r.Remaining()/size {
			return encio.NewDataError(
				encio.ErrInsufficientBits,
				r.Offset(),
				fmt.Sprintf("%v elements of %v bits in %v need more than the %v bits remaining", length, size, e.name, r.Remaining()),
			)
		}
	} else if capacity > r.Remaining() {
		capacity = r.Remaining()
	}

	slice.Set(reflect.MakeSlice(e.t, 0, capacity))
	zero := reflect.Zero(e.t.Elem())

	for i := 0; i < length; i++ {
		slice.Set(reflect.Append(slice, zero))
		eptr := unsafe.Pointer(slice.Index(i).UnsafeAddr())
		if err := e.elem.Decode(eptr, r, s); err != nil {
			return err
		}
		if err := e.align.decodeElem(r, i, length); err != nil {
			return err
		}
	}

	return nil
}
