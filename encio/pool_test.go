package encio_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/phisave/encio"
)

func TestBitWriterPool(t *testing.T) {
	testCases := []struct {
		desc     string
		sizeHint int
	}{
		{desc: "negative", sizeHint: -1},
		{desc: "small", sizeHint: 3},
		{desc: "class boundary", sizeHint: 1024 * 8},
		{desc: "past class boundary", sizeHint: 1024*8 + 1},
		{desc: "too large to pool", sizeHint: 1 << 24},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			w := encio.GetBitWriter(tC.sizeHint)
			td.Cmp(t, w.Len(), 0)
			td.Cmp(t, len(w.Bytes()), 0)
			td.CmpGte(t, cap(w.Bytes())*8, tC.sizeHint)

			w.WriteBits(0x1FF, 9)
			encio.PutBitWriter(w)

			w = encio.GetBitWriter(tC.sizeHint)
			td.Cmp(t, w.Len(), 0, "pooled writers are reset")
			td.Cmp(t, len(w.Bytes()), 0)
			td.CmpGte(t, cap(w.Bytes())*8, tC.sizeHint)
		})
	}
}
