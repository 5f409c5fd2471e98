package phisave

import (
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// Encode encodes v, which may be a record or a pointer to one.
// The final byte is zero filled.
func (c *Codec) Encode(v interface{}) ([]byte, error) {
	buff, _, err := c.EncodeBits(v)
	return buff, err
}

// EncodeBits is Encode, also returning the exact number of bits written.
func (c *Codec) EncodeBits(v interface{}) ([]byte, int, error) {
	if v == nil {
		return nil, 0, encio.NewError(encio.ErrNilPointer, "cannot encode nil interface", 0)
	}

	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, 0, encio.NewError(encio.ErrNilPointer, "cannot encode nil pointer", 0)
		}
		val = val.Elem()
	}

	if !val.CanAddr() {
		addressable := reflect.New(val.Type()).Elem()
		addressable.Set(val)
		val = addressable
	}

	enc, err := c.Encodable(val.Type())
	if err != nil {
		return nil, 0, err
	}

	w := encio.GetBitWriter(enc.Size())
	defer encio.PutBitWriter(w)

	if err := enc.Encode(unsafe.Pointer(val.UnsafeAddr()), w); err != nil {
		return nil, 0, err
	}

	buff := make([]byte, len(w.Bytes()))
	copy(buff, w.Bytes())
	return buff, w.Len(), nil
}
