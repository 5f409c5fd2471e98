package encode_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/phisave/encio"
	"github.com/stewi1014/phisave/encode"
)

type declared struct {
	B uint8
	A uint8
	C uint16
}

type skipped struct {
	Kept    uint8
	Skipped uint8 `bits:"-"`
	hidden  uint8
	Last    uint8
}

type header struct {
	Count uint8
}

type nestedCount struct {
	Head  header
	Items []uint8 `bits:"len=Count"`
}

type shadowed struct {
	Count uint8
	Inner header
	Items []uint8 `bits:"len=Count"`
}

type renamed struct {
	Size  uint8   `bits:"name=Count"`
	Items []uint8 `bits:"len=Count"`
}

type level struct {
	Score uint32
	Acc   float32
}

type song struct {
	Name   string
	Length uint8   `bits:"varint"`
	Unlock [5]bool `bits:"bit,align=8"`
	FC     [5]bool `bits:"bit,align=8"`
	Levels []level `bits:"lenfunc=encode_test.unlocked"`
}

type songs struct {
	Sum   uint16 `bits:"varint"`
	Songs []song `bits:"len=Sum"`
	Done  bool
}

func TestStruct(t *testing.T) {
	testCases := []struct {
		desc  string
		v     interface{}
		bytes []byte
		bits  int
	}{
		{
			desc:  "declaration order",
			v:     &declared{B: 1, A: 2, C: 0x0403},
			bytes: []byte{1, 2, 3, 4},
			bits:  32,
		},
		{
			desc:  "skipped fields",
			v:     &skipped{Kept: 1, Last: 2},
			bytes: []byte{1, 2},
			bits:  16,
		},
		{
			desc:  "count in nested record",
			v:     &nestedCount{Head: header{Count: 2}, Items: []uint8{7, 8}},
			bytes: []byte{2, 7, 8},
			bits:  24,
		},
		{
			desc:  "renamed sibling",
			v:     &renamed{Size: 1, Items: []uint8{9}},
			bytes: []byte{1, 9},
			bits:  16,
		},
		{
			desc: "nested records",
			v: &songs{
				Sum: 2,
				Songs: []song{
					{
						Name:   "Glaciaxion",
						Length: 18,
						Unlock: [5]bool{true, true},
						FC:     [5]bool{true},
						Levels: []level{{Score: 1000000, Acc: 100}, {Score: 987654, Acc: 99.5}},
					},
					{
						Name:   "Rrhar'il",
						Length: 2,
						Unlock: [5]bool{},
					},
				},
				Done: true,
			},
			bytes: nil,
			bits:  8 + (8 + 80 + 8 + 8 + 8 + 2*64) + (8 + 64 + 8 + 8 + 8) + 8,
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			testEqual(t, tC.v, tC.bytes, tC.bits)
			testTruncated(t, tC.v)
		})
	}
}

func TestStructSkippedLeftAlone(t *testing.T) {
	enc := newEncodable(&skipped{})

	got := skipped{Skipped: 5, hidden: 6}
	_, err := decodeValue(enc, []byte{1, 2}, &got)
	td.CmpNoError(t, err)
	td.Cmp(t, got, skipped{Kept: 1, Skipped: 5, hidden: 6, Last: 2})
}

func TestStructSiblingsShared(t *testing.T) {
	enc := newEncodable(&shadowed{})

	// The nested Count is decoded later, and replaces the outer one.
	var got shadowed
	n, err := decodeValue(enc, []byte{1, 2, 7, 8}, &got)
	td.CmpNoError(t, err)
	td.Cmp(t, n, 32)
	td.Cmp(t, got, shadowed{Count: 1, Inner: header{Count: 2}, Items: []uint8{7, 8}})
}

func TestStructSiblingsTable(t *testing.T) {
	enc := newEncodable(&nestedCount{})
	s := encode.NewSiblings()

	var got nestedCount
	err := enc.Decode(unsafePointer(&got), encio.NewBitReader([]byte{2, 7, 8}), s)
	td.CmpNoError(t, err)

	count, err := s.Uint("Count")
	td.CmpNoError(t, err)
	td.Cmp(t, count, uint64(2))

	head, ok := s.Get("Head")
	td.CmpTrue(t, ok)
	td.Cmp(t, head.Kind(), encode.KindRecord)

	items, ok := s.Get("Items")
	td.CmpTrue(t, ok)
	td.Cmp(t, items.String(), "[7 8]")
}

type recursive struct {
	N        uint8
	Children []recursive `bits:"len=N"`
}

type badTag struct {
	A uint8 `bits:"align=x"`
}

type badOption struct {
	A uint8 `bits:"bit"`
}

type badKind struct {
	A int
}

type badVarint struct {
	A string `bits:"varint"`
}

type badLen struct {
	A [2]uint8 `bits:"len=B"`
}

type wideUint struct {
	A uint64
}

func TestStructBuildErrors(t *testing.T) {
	testCases := []struct {
		desc string
		v    interface{}
		err  error
	}{
		{desc: "recursive", v: &recursive{}, err: encio.ErrBadType},
		{desc: "bad tag", v: &badTag{}, err: encio.ErrBadConfig},
		{desc: "bit on uint8", v: &badOption{}, err: encio.ErrBadConfig},
		{desc: "signed integer", v: &badKind{}, err: encio.ErrBadType},
		{desc: "varint on string", v: &badVarint{}, err: encio.ErrBadConfig},
		{desc: "len on array", v: &badLen{}, err: encio.ErrBadConfig},
		{desc: "uint64 without varint", v: &wideUint{}, err: encio.ErrBadConfig},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			err := buildErr(tC.v)
			td.Cmp(t, err, td.Isa(encio.Error{}))
			if !errors.Is(err, tC.err) {
				t.Errorf("wanted %v, got %v", tC.err, err)
			}
		})
	}
}

func TestNewNilSource(t *testing.T) {
	for _, enc := range []encode.Encodable{
		encode.New(reflect.TypeOf(counted{}), encode.Options{}, nil),
		encode.DefaultSource.NewEncodable(reflect.TypeOf(counted{}), encode.Options{}, nil),
	} {
		buff, n := encodeValue(t, enc, &counted{Count: 2, Values: []uint16{5, 6}})
		td.Cmp(t, buff, []byte{2, 5, 0, 6, 0})
		td.Cmp(t, n, 40)

		var got counted
		_, err := decodeValue(enc, buff, &got)
		td.CmpNoError(t, err)
		td.Cmp(t, got, counted{Count: 2, Values: []uint16{5, 6}})
	}
}

func TestStructType(t *testing.T) {
	enc := newEncodable(&songs{})
	td.Cmp(t, enc.Type(), reflect.TypeOf(songs{}))
	td.Cmp(t, enc.Size(), -1)

	td.Cmp(t, newEncodable(&level{}).Size(), 64)
}

func BenchmarkStructEncode(b *testing.B) {
	v := benchSongs()
	enc := newEncodable(&v)
	w := encio.NewBitWriter(0)

	for i := 0; i < b.N; i++ {
		w.Reset()
		if err := enc.Encode(unsafePointer(&v), w); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStructDecode(b *testing.B) {
	v := benchSongs()
	enc := newEncodable(&v)
	buff, _ := encodeValue(b, enc, &v)

	var got songs
	for i := 0; i < b.N; i++ {
		if _, err := decodeValue(enc, buff, &got); err != nil {
			b.Fatal(err)
		}
	}
}

func benchSongs() songs {
	v := songs{Done: true}
	for i := 0; i < 100; i++ {
		v.Songs = append(v.Songs, song{
			Name:   "9b899bec35bc6bb8",
			Length: 34,
			Unlock: [5]bool{true, true, true, true},
			FC:     [5]bool{true, false, true},
			Levels: []level{{1000000, 100}, {999999, 99.9}, {880000, 97.5}, {123, 1.5}},
		})
	}
	v.Sum = uint16(len(v.Songs))
	return v
}
