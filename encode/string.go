package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// NewString returns a new string Encodable.
func NewString(ty reflect.Type) *String {
	if ty.Kind() != reflect.String {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not of string kind", ty.String()), 0))
	}

	return &String{
		ty: ty,
	}
}

// String is an Encodable for strings.
// Strings are a variable-length integer byte count followed by the UTF-8 bytes.
type String struct {
	ty reflect.Type
}

// Size implemenets Encodable.
func (e *String) Size() int { return -1 }

// Type implements Encodable.
func (e *String) Type() reflect.Type { return e.ty }

// Encode implemenets Encodable.
func (e *String) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)
	str := *(*string)(ptr)

	if err := w.PutVarUint(uint64(len(str))); err != nil {
		return err
	}

	w.PutBytes([]byte(str))
	return nil
}

// Decode implemenets Encodable.
// Bytes that aren't valid UTF-8 give a DataError wrapping encio.ErrInvalidUTF8, with the bytes in DataError.Raw.
func (e *String) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)

	l, err := r.VarUint()
	if err != nil {
		return err
	}

	str, err := r.String(int(l))
	if err != nil {
		return err
	}

	*(*string)(ptr) = str
	return nil
}
