// Package encode provides Encodables for bit-packed records; field-level codecs and the means to compose them.
//
// An Encodable encodes and decodes one Go type. Leaf Encodables cover fixed width unsigned integers, float32,
// 8 bit and 1 bit booleans, the variable-length integer and the length-prefixed string.
// Array, Slice and Struct build on an Encodable for their elements, obtained from a Source.
//
// Struct composes its fields in declaration order. While decoding, each decoded field is written
// to a Siblings table shared with every nested record of the same decode,
// so later Slice fields can size themselves from earlier fields through a Length.
// Encoding never consults the table; the in-memory value already knows its lengths.
//
// Fields are configured with the `bits` struct tag. See ParseTag.
package encode

import (
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// Encodable is an Encoder and Decoder for a specific type.
//
// Encodables hold no state that changes while encoding or decoding, and so are safe for concurrent use
// once created. All per-call state lives in the BitWriter, BitReader and Siblings given to them.
//
// Encodables return two kinds of error.
// encio.DataError for malformed input, and encio.Error for values or schemas that can't be used as given.
// See phisave/encio/error.go
//
// The pointers passed to Encode and Decode must be pointers to an allocated instance of the Encodable's type, accessible by Type().
// See https://golang.org/pkg/unsafe/#Pointer; "Note that the pointer must point into an allocated object, so it may not be nil".
type Encodable interface {
	// Type returns the type that the Encodable encodes.
	Type() reflect.Type

	// Size returns the encoded size in bits.
	// If Size returns <0, the size depends on the value or the offset it is written at.
	Size() int

	// Encode appends the object at ptr to w.
	// It panics if ptr is nil.
	Encode(ptr unsafe.Pointer, w *encio.BitWriter) error

	// Decode decodes from r into the object at ptr, reading only what Encode wrote.
	// s holds the already decoded fields of the records being decoded.
	// It panics if ptr is nil.
	Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error
}

// checkPtr panics if ptr is nil.
func checkPtr(ptr unsafe.Pointer) {
	if ptr == nil {
		panic(encio.NewError(encio.ErrNilPointer, "unsafe.Pointer types are never allowed to be nil as per https://golang.org/pkg/unsafe/", 1))
	}
}

// sumSizes adds fixed sizes, returning -1 if any of them is variable.
func sumSizes(sizes ...int) (size int) {
	for _, s := range sizes {
		if s < 0 {
			return -1
		}
		size += s
	}
	return size
}
