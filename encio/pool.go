package encio

import (
	"math/bits"
	"sync"
)

const (
	// minPooled and maxPooled bound the buffer sizes in bytes kept by the BitWriter pool.
	minPooled = 1 << 6
	maxPooled = 1 << 20
)

// writers holds pooled BitWriters by size class; class i holds writers with a buffer cap of at least 1<<i bytes.
var writers [bits.UintSize]sync.Pool

// GetBitWriter returns an empty BitWriter from the pool, with room for at least sizeHint bits.
// If the pool has none, it allocates instead.
func GetBitWriter(sizeHint int) *BitWriter {
	n := (sizeHint + 7) / 8
	if n < minPooled {
		n = minPooled
	}
	if n > maxPooled {
		return NewBitWriter(sizeHint)
	}

	i := bits.Len(uint(n - 1))
	if w, ok := writers[i].Get().(*BitWriter); ok {
		w.Reset()
		return w
	}
	return &BitWriter{
		buff: make([]byte, 0, 1<<i),
	}
}

// PutBitWriter places w in the pool. w must not be used afterwards,
// nor the slice returned by its Bytes method.
// Writers with buffers too small or too large to be worth pooling are discarded.
func PutBitWriter(w *BitWriter) {
	c := cap(w.buff)
	if c < minPooled || c > maxPooled {
		return
	}
	writers[bits.Len(uint(c))-1].Put(w)
}
