// Package phisave encodes and decodes bit-packed records; Go structs laid out bit for bit,
// least-significant bit first, as described by their `bits` struct tags.
//
// Records are encoded with Marshal and decoded with Unmarshal:
//
//	type Level struct {
//		Score uint32
//		Acc   float32
//	}
//
//	type Song struct {
//		Name   string
//		Unlock [5]bool  `bits:"bit,align=8"`
//		Levels []Level  `bits:"lenfunc=countUnlock"`
//	}
//
// Decoding is a single pass over the buffer. Each decoded field is visible to the fields after it,
// so that slices can take their length from an earlier field (len=Field),
// or from a function of earlier fields registered with RegisterLength (lenfunc=name).
// Encoding writes what the value holds; length fields are not checked against the slices they describe.
//
// phisave/encode provides the Encodables records are built from, and the means to compose them.
//
// phisave/encio provides the bit cursor and error types.
package phisave

import (
	"github.com/stewi1014/phisave/encode"
)

// DefaultCodec is the Codec used by Marshal, MarshalBits and Unmarshal.
var DefaultCodec = NewCodec(nil)

// Unmarshal decodes the record at the start of data into v, which must be a non-nil pointer.
// It returns the number of bits consumed.
// If decoding fails, *v is set to its zero value.
func Unmarshal(data []byte, v interface{}) (int, error) {
	return DefaultCodec.Decode(data, v)
}

// Marshal encodes v, which may be a record or a pointer to one.
// The final byte is zero filled.
func Marshal(v interface{}) ([]byte, error) {
	return DefaultCodec.Encode(v)
}

// MarshalBits is Marshal, also returning the exact number of bits written.
func MarshalBits(v interface{}) ([]byte, int, error) {
	return DefaultCodec.EncodeBits(v)
}

// RegisterLength registers fn as a length function usable with the `lenfunc=name` struct tag option.
// It is a shortcut for encode.RegisterLength.
func RegisterLength(name string, fn encode.LengthFunc) error {
	return encode.RegisterLength(name, fn)
}
