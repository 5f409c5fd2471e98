package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// NewVarUint returns a new variable-length integer Encodable for any unsigned integer type.
func NewVarUint(ty reflect.Type) *VarUint {
	switch ty.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
	default:
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not an unsigned integer", ty.String()), 0))
	}
	return &VarUint{
		ty: ty,
	}
}

// VarUint is an Encodable for unsigned integers using the one or two byte variable-length encoding.
// Numbers larger than encio.MaxVarUint fail to encode.
type VarUint struct {
	ty reflect.Type
}

// Size implements Encodable.
func (e *VarUint) Size() int { return -1 }

// Type implements Encodable.
func (e *VarUint) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
func (e *VarUint) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)

	var n uint64
	switch e.ty.Kind() {
	case reflect.Uint8:
		n = uint64(*(*uint8)(ptr))
	case reflect.Uint16:
		n = uint64(*(*uint16)(ptr))
	case reflect.Uint32:
		n = uint64(*(*uint32)(ptr))
	case reflect.Uint64:
		n = *(*uint64)(ptr)
	default:
		n = uint64(*(*uint)(ptr))
	}

	return w.PutVarUint(n)
}

// Decode implements Encodable.
func (e *VarUint) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)

	start := r.Offset()
	n, err := r.VarUint()
	if err != nil {
		return err
	}

	switch e.ty.Kind() {
	case reflect.Uint8:
		if n > 0xFF {
			return encio.NewDataError(encio.ErrOutOfRange, start, fmt.Sprintf("%v does not fit in %v", n, e.ty))
		}
		*(*uint8)(ptr) = uint8(n)
	case reflect.Uint16:
		*(*uint16)(ptr) = n
	case reflect.Uint32:
		*(*uint32)(ptr) = uint32(n)
	case reflect.Uint64:
		*(*uint64)(ptr) = uint64(n)
	default:
		*(*uint)(ptr) = uint(n)
	}
	return nil
}
