package phisave

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
	"github.com/stewi1014/phisave/encode"
)

// Decode decodes the record at the start of data into v, which must be a non-nil pointer.
// It returns the number of bits consumed. Bits after the record are ignored.
//
// Decoding is all or nothing; if it fails, *v is set to its zero value.
func (c *Codec) Decode(data []byte, v interface{}) (int, error) {
	if v == nil {
		return 0, encio.NewError(encio.ErrNilPointer, "cannot decode into nil interface", 0)
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return 0, encio.NewError(encio.ErrBadType, fmt.Sprintf("decoded values must be passed by reference (pointer), got %v", val.Type()), 0)
	}
	if val.IsNil() {
		return 0, encio.NewError(encio.ErrNilPointer, "cannot decode into nil pointer", 0)
	}

	val = val.Elem()
	enc, err := c.Encodable(val.Type())
	if err != nil {
		return 0, err
	}

	decoded := reflect.New(val.Type())
	r := encio.NewBitReader(data)
	if err := enc.Decode(unsafe.Pointer(decoded.Pointer()), r, encode.NewSiblings()); err != nil {
		val.Set(reflect.Zero(val.Type()))
		return 0, err
	}

	val.Set(decoded.Elem())
	return r.Offset(), nil
}
