package encode_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/phisave/encio"
	"github.com/stewi1014/phisave/encode"
)

func TestValueOf(t *testing.T) {
	testCases := []struct {
		desc string
		v    interface{}
		kind encode.Kind
		str  string
	}{
		{desc: "uint8", v: uint8(7), kind: encode.KindUint, str: "7"},
		{desc: "uint64", v: uint64(1 << 40), kind: encode.KindUint, str: "1099511627776"},
		{desc: "float", v: float32(1.5), kind: encode.KindFloat, str: "1.5"},
		{desc: "bool", v: true, kind: encode.KindBool, str: "true"},
		{desc: "string", v: "hi", kind: encode.KindString, str: `"hi"`},
		{desc: "bits", v: [3]bool{true, false, true}, kind: encode.KindList, str: "[true false true]"},
		{desc: "empty slice", v: []uint8(nil), kind: encode.KindList, str: "[]"},
		{desc: "record", v: header{}, kind: encode.KindRecord, str: "<record>"},
		{desc: "unsupported", v: int8(1), kind: encode.KindInvalid, str: "<invalid>"},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			v := encode.ValueOf(reflect.ValueOf(tC.v))
			td.Cmp(t, v.Kind(), tC.kind)
			td.Cmp(t, v.String(), tC.str)
		})
	}
}

func TestValueAccessors(t *testing.T) {
	n, ok := encode.UintValue(3).Uint()
	td.Cmp(t, n, uint64(3))
	td.CmpTrue(t, ok)

	_, ok = encode.StringValue("3").Uint()
	td.CmpFalse(t, ok)

	f, ok := encode.FloatValue(0.5).Float()
	td.Cmp(t, f, 0.5)
	td.CmpTrue(t, ok)

	b, ok := encode.BoolValue(true).Bool()
	td.CmpTrue(t, b)
	td.CmpTrue(t, ok)

	s, ok := encode.StringValue("x").Text()
	td.Cmp(t, s, "x")
	td.CmpTrue(t, ok)

	list, ok := encode.ListValue(encode.UintValue(1)).List()
	td.Cmp(t, list, []encode.Value{encode.UintValue(1)})
	td.CmpTrue(t, ok)

	td.Cmp(t, encode.Kind(42).String(), "Kind(42)")
}

func TestSiblings(t *testing.T) {
	s := encode.NewSiblings()
	s.Set("Count", encode.UintValue(4))
	s.Set("Name", encode.StringValue("Key"))
	s.Set("Unlock", encode.ListValue(encode.BoolValue(true), encode.BoolValue(false), encode.BoolValue(true)))
	s.Set("Mixed", encode.ListValue(encode.BoolValue(true), encode.UintValue(1)))

	td.Cmp(t, s.Len(), 4)

	n, err := s.Uint("Count")
	td.CmpNoError(t, err)
	td.Cmp(t, n, uint64(4))

	count, err := s.CountTrue("Unlock")
	td.CmpNoError(t, err)
	td.Cmp(t, count, 2)

	bools, err := s.Bools("Unlock")
	td.CmpNoError(t, err)
	td.Cmp(t, bools, []bool{true, false, true})

	_, err = s.Uint("Name")
	td.CmpTrue(t, errors.Is(err, encio.ErrBadType))

	_, err = s.Bools("Mixed")
	td.CmpTrue(t, errors.Is(err, encio.ErrBadType))

	_, err = s.Uint("Missing")
	td.CmpTrue(t, errors.Is(err, encio.ErrMissingLength))

	s.Set("Count", encode.UintValue(5))
	n, _ = s.Uint("Count")
	td.Cmp(t, n, uint64(5))
}

func TestNilSiblings(t *testing.T) {
	var s *encode.Siblings
	td.Cmp(t, s.Len(), 0)

	_, ok := s.Get("Count")
	td.CmpFalse(t, ok)

	_, err := s.Uint("Count")
	td.CmpTrue(t, errors.Is(err, encio.ErrMissingLength))
}

func TestSiblingLength(t *testing.T) {
	s := encode.NewSiblings()
	s.Set("Sum", encode.UintValue(3))

	n, err := encode.SiblingLength("Sum").Len("Songs", s)
	td.CmpNoError(t, err)
	td.Cmp(t, n, 3)
	td.Cmp(t, encode.SiblingLength("Sum").String(), "len=Sum")

	n, err = encode.LengthFunc(func(field string, s *encode.Siblings) (int, error) {
		return len(field), nil
	}).Len("Songs", s)
	td.CmpNoError(t, err)
	td.Cmp(t, n, 5)
}
