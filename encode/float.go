package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// NewFloat32 returns a new float32 Encodable.
func NewFloat32(ty reflect.Type) *Float32 {
	if ty.Kind() != reflect.Float32 {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of float32 kind", ty.String()), 0))
	}
	return &Float32{
		ty: ty,
	}
}

// Float32 is an Encodable for float32s, encoded as the 32 bits of its IEEE-754 form.
type Float32 struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *Float32) Size() int { return 32 }

// Type implements Encodable.
func (e *Float32) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *Float32) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)
	w.PutFloat32(*(*float32)(ptr))
	return nil
}

// Decode implements Encodable.
func (e *Float32) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)
	f, err := r.Float32()
	if err != nil {
		return err
	}
	*(*float32)(ptr) = f
	return nil
}
