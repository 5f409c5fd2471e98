package encode_test

import (
	"errors"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/phisave/encio"
	"github.com/stewi1014/phisave/encode"
)

func init() {
	if err := encode.RegisterLength("encode_test.unlocked", func(field string, s *encode.Siblings) (int, error) {
		return s.CountTrue("Unlock")
	}); err != nil {
		panic(err)
	}

	if err := encode.RegisterLength("encode_test.minusOne", func(field string, s *encode.Siblings) (int, error) {
		n, err := s.Uint("Length")
		if err != nil || n == 0 {
			return 0, err
		}
		return int(n) - 1, nil
	}); err != nil {
		panic(err)
	}
}

type counted struct {
	Count  uint8
	Values []uint16 `bits:"len=Count"`
}

type countedTail struct {
	Count  uint8    `bits:"varint"`
	Values []string `bits:"len=Count"`
	Tail   uint8
}

type unlocked struct {
	Unlock [4]bool  `bits:"bit,align=8"`
	Levels []uint32 `bits:"lenfunc=encode_test.unlocked"`
}

type minusOne struct {
	Length uint8
	Flags  []bool `bits:"lenfunc=encode_test.minusOne"`
}

type alignedSlice struct {
	Count uint8
	Bits  []bool `bits:"len=Count,bit,align=8,subalign=3"`
	Next  uint8
}

func TestSlice(t *testing.T) {
	testCases := []struct {
		desc  string
		v     interface{}
		bytes []byte
		bits  int
	}{
		{
			desc:  "numbers",
			v:     &counted{Count: 3, Values: []uint16{1, 2, 3}},
			bytes: []byte{3, 1, 0, 2, 0, 3, 0},
			bits:  8 + 3*16,
		},
		{
			desc:  "empty",
			v:     &counted{},
			bytes: []byte{0},
			bits:  8,
		},
		{
			desc:  "strings",
			v:     &countedTail{Count: 2, Values: []string{"a", "bc"}, Tail: 0xEE},
			bytes: []byte{2, 1, 'a', 2, 'b', 'c', 0xEE},
			bits:  56,
		},
		{
			desc:  "count of true",
			v:     &unlocked{Unlock: [4]bool{true, false, true, false}, Levels: []uint32{10, 20}},
			bytes: []byte{0x05, 10, 0, 0, 0, 20, 0, 0, 0},
			bits:  72,
		},
		{
			desc:  "length minus one",
			v:     &minusOne{Length: 3, Flags: []bool{true, false}},
			bytes: []byte{3, 1, 0},
			bits:  24,
		},
		{
			desc:  "length minus one from zero",
			v:     &minusOne{},
			bytes: []byte{0},
			bits:  8,
		},
		{
			desc:  "aligned groups",
			v:     &alignedSlice{Count: 4, Bits: []bool{true, true, true, true}, Next: 1},
			bytes: []byte{4, 0x07, 0x01, 0x01},
			bits:  32,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			testEqual(t, tC.v, tC.bytes, tC.bits)
			testTruncated(t, tC.v)
		})
	}
}

func TestSliceZeroLengthIsNil(t *testing.T) {
	enc := newEncodable(&counted{})

	got := counted{Values: []uint16{1, 2}}
	_, err := decodeValue(enc, []byte{0}, &got)
	td.CmpNoError(t, err)
	td.CmpNil(t, got.Values)
}

func TestSliceDynamicLength(t *testing.T) {
	enc := newEncodable(&counted{})

	var got counted
	n, err := decodeValue(enc, []byte{3, 1, 0, 2, 0, 3, 0, 0xFF}, &got)
	td.CmpNoError(t, err)
	td.Cmp(t, n, 8+3*16)
	td.Cmp(t, got.Values, []uint16{1, 2, 3})

	got = counted{}
	_, err = decodeValue(enc, []byte{3, 1, 0, 2, 0}, &got)
	td.CmpTrue(t, errors.Is(err, encio.ErrInsufficientBits))

	var dataErr encio.DataError
	td.CmpTrue(t, errors.As(err, &dataErr))
	td.Cmp(t, dataErr.Offset, 8)
}

func TestSliceEncodeIgnoresLength(t *testing.T) {
	enc := newEncodable(&counted{})

	// A stale count is written as it is, and the slice as it is.
	buff, n := encodeValue(t, enc, &counted{Count: 1, Values: []uint16{1, 2}})
	td.Cmp(t, buff, []byte{1, 1, 0, 2, 0})
	td.Cmp(t, n, 40)

	var got counted
	_, err := decodeValue(enc, buff, &got)
	td.CmpNoError(t, err)
	td.Cmp(t, got.Values, []uint16{1})
}

type countedStrings struct {
	Count uint32
	Items []string `bits:"len=Count"`
}

func TestSliceHugeLength(t *testing.T) {
	enc := newEncodable(&countedStrings{})

	testCases := []struct {
		desc   string
		buff   []byte
		err    error
		offset int
	}{
		{
			desc:   "more memory than TooBig",
			buff:   []byte{0xFF, 0xFF, 0xFF, 0x3F, 0x00},
			err:    encio.ErrOutOfRange,
			offset: 32,
		},
		{
			desc:   "more elements than input",
			buff:   []byte{0x00, 0x00, 0x10, 0x00, 0x00},
			err:    encio.ErrInsufficientBits,
			offset: 40,
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var got countedStrings
			_, err := decodeValue(enc, tC.buff, &got)
			td.CmpTrue(t, errors.Is(err, tC.err))

			var dataErr encio.DataError
			td.Require(t).True(errors.As(err, &dataErr))
			td.Cmp(t, dataErr.Offset, tC.offset)
		})
	}

	var got countedStrings
	n, err := decodeValue(enc, []byte{0x02, 0x00, 0x00, 0x00, 0x01, 'a', 0x02, 'b', 'c'}, &got)
	td.CmpNoError(t, err)
	td.Cmp(t, n, 72)
	td.Cmp(t, got.Items, []string{"a", "bc"})
}

type missingSibling struct {
	Values []uint8 `bits:"len=Count"`
	Count  uint8
}

type wrongSibling struct {
	Count  string
	Values []uint8 `bits:"len=Count"`
}

type noLength struct {
	Values []uint8
}

type unknownLength struct {
	Values []uint8 `bits:"lenfunc=encode_test.unknown"`
}

func TestSliceLengthErrors(t *testing.T) {
	t.Run("missing sibling", func(t *testing.T) {
		var got missingSibling
		_, err := decodeValue(newEncodable(&got), []byte{1, 2}, &got)
		td.CmpTrue(t, errors.Is(err, encio.ErrMissingLength))
	})

	t.Run("wrong kind", func(t *testing.T) {
		var got wrongSibling
		_, err := decodeValue(newEncodable(&got), []byte{1, '1', 2}, &got)
		td.CmpTrue(t, errors.Is(err, encio.ErrBadType))
	})

	t.Run("no length", func(t *testing.T) {
		err := buildErr(&noLength{})
		td.CmpTrue(t, errors.Is(err, encio.ErrMissingLength))
	})

	t.Run("unknown length function", func(t *testing.T) {
		err := buildErr(&unknownLength{})
		td.CmpTrue(t, errors.Is(err, encio.ErrMissingLength))
	})
}

func TestRegisterLength(t *testing.T) {
	td.CmpError(t, encode.RegisterLength("encode_test.unlocked", func(string, *encode.Siblings) (int, error) { return 0, nil }))
	td.CmpError(t, encode.RegisterLength("", func(string, *encode.Siblings) (int, error) { return 0, nil }))
	td.CmpError(t, encode.RegisterLength("encode_test.nil", nil))

	fn, ok := encode.LookupLength("encode_test.unlocked")
	td.CmpTrue(t, ok)
	td.CmpNotNil(t, fn)

	_, ok = encode.LookupLength("encode_test.nil")
	td.CmpFalse(t, ok)
}
