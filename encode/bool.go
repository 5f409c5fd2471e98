package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// NewBool returns a new byte-wide bool Encodable.
func NewBool(ty reflect.Type) *Bool {
	if ty.Kind() != reflect.Bool {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of bool kind", ty.String()), 0))
	}
	return &Bool{
		ty: ty,
	}
}

// Bool is an Encodable for bools taking a whole byte.
// The value is bit 0; the other 7 bits are written as zero and ignored when decoding.
type Bool struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *Bool) Size() int { return 8 }

// Type implements Encodable.
func (e *Bool) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Bool) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)
	w.PutByteBool(*(*bool)(ptr))
	return nil
}

// Decode implements Encodable.
func (e *Bool) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)
	b, err := r.ByteBool()
	if err != nil {
		return err
	}
	*(*bool)(ptr) = b
	return nil
}

// NewBit returns a new single bit bool Encodable.
func NewBit(ty reflect.Type) *Bit {
	if ty.Kind() != reflect.Bool {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of bool kind", ty.String()), 0))
	}
	return &Bit{
		ty: ty,
	}
}

// Bit is an Encodable for bools taking a single bit.
type Bit struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *Bit) Size() int { return 1 }

// Type implements Encodable.
func (e *Bit) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Bit) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)
	w.WriteBit(*(*bool)(ptr))
	return nil
}

// Decode implements Encodable.
func (e *Bit) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)
	b, err := r.ReadBit()
	if err != nil {
		return err
	}
	*(*bool)(ptr) = b
	return nil
}
