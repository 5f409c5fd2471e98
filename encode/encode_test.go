package encode_test

import (
	"errors"
	"reflect"
	"testing"
	"unsafe"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/phisave/encio"
	"github.com/stewi1014/phisave/encode"
)

func unsafePointer(v interface{}) unsafe.Pointer {
	return unsafe.Pointer(reflect.ValueOf(v).Pointer())
}

// newEncodable returns the Encodable for the type v points to.
func newEncodable(v interface{}) encode.Encodable {
	return encode.NewCachingSource(encode.DefaultSource).NewEncodable(reflect.TypeOf(v).Elem(), encode.Options{}, nil)
}

// buildErr returns the error newEncodable panics with for the type v points to.
func buildErr(v interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	newEncodable(v)
	return nil
}

func encodeValue(t testing.TB, enc encode.Encodable, v interface{}) ([]byte, int) {
	t.Helper()
	w := encio.NewBitWriter(0)
	err := enc.Encode(unsafePointer(v), w)
	if err != nil {
		t.Fatalf("encoding %T: %v", v, err)
	}
	return w.Bytes(), w.Len()
}

func decodeValue(enc encode.Encodable, buff []byte, v interface{}) (int, error) {
	r := encio.NewBitReader(buff)
	err := enc.Decode(unsafePointer(v), r, nil)
	return r.Offset(), err
}

// testEqual encodes v, checks the encoded bytes and length if given, and checks v decodes from them.
func testEqual(t *testing.T, v interface{}, wantBytes []byte, wantBits int) {
	t.Helper()
	enc := newEncodable(v)

	buff, n := encodeValue(t, enc, v)
	if wantBytes != nil {
		td.Cmp(t, buff, wantBytes, "encoded bytes")
	}
	if wantBits >= 0 {
		td.Cmp(t, n, wantBits, "encoded bits")
	}
	if size := enc.Size(); size >= 0 {
		td.Cmp(t, size, n, "Size()")
	}

	got := reflect.New(reflect.TypeOf(v).Elem()).Interface()
	off, err := decodeValue(enc, buff, got)
	td.CmpNoError(t, err)
	td.Cmp(t, off, n, "decoded bits")
	td.Cmp(t, got, v)
}

// testTruncated checks every shorter prefix of v's encoding fails with ErrInsufficientBits.
func testTruncated(t *testing.T, v interface{}) {
	t.Helper()
	enc := newEncodable(v)
	buff, _ := encodeValue(t, enc, v)

	for l := 0; l < len(buff); l++ {
		got := reflect.New(reflect.TypeOf(v).Elem()).Interface()
		var err error
		td.CmpNotPanic(t, func() {
			_, err = decodeValue(enc, buff[:l], got)
		}, "%v of %v bytes", l, len(buff))
		if !errors.Is(err, encio.ErrInsufficientBits) {
			t.Errorf("%v of %v bytes: wanted ErrInsufficientBits, got %v", l, len(buff), err)
		}
	}
}
