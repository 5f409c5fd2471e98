// Package encio provides bit-level io methods relevant to encoding, as well as error types.
//
// Bits are addressed least-significant-bit first within each byte;
// bit i of a buffer is (buff[i/8] >> (i%8)) & 1.
// Multi-bit values are loaded and stored little-endian from the current bit offset,
// with no requirement that the offset is byte aligned.
package encio

import (
	"fmt"
	"unicode/utf8"
)

var (
	// TooBig is a bit count used for simple sanity checking before things like allocation and iteration with numbers decoded from buffers.
	// ErrOutOfRange is returned if a decoded element count is larger than TooBig,
	// or its elements would need more than this many bits of memory.
	//
	// By default it is 256Mbit (32MB) on 32bit machines, and 1Gbit (128MB) on 64bit machines.
	// Feel free to change it.
	TooBig = 1 << (28 + ((^uint(0) >> 32) & 2))
)

// NewBitReader returns a BitReader reading from buff.
// buff is borrowed; it must not be modified while the reader is in use.
func NewBitReader(buff []byte) *BitReader {
	return &BitReader{
		buff: buff,
		end:  len(buff) * 8,
	}
}

// BitReader is a cursor over a borrowed byte buffer.
// Reads that fail leave the cursor where it was.
type BitReader struct {
	buff []byte
	off  int
	end  int
}

// Offset returns the number of bits read so far.
func (r *BitReader) Offset() int { return r.off }

// Remaining returns the number of bits left to read.
func (r *BitReader) Remaining() int { return r.end - r.off }

func (r *BitReader) need(n int) error {
	if n > r.end-r.off {
		return NewDataError(
			ErrInsufficientBits,
			r.off,
			fmt.Sprintf("want %v bits but only %v remain", n, r.end-r.off),
		)
	}
	return nil
}

// load reads n <= 64 bits starting at off. Bounds must already be checked.
func (r *BitReader) load(off int, n uint) (v uint64) {
	var got uint
	for got < n {
		shift := uint(off & 7)
		take := 8 - shift
		if take > n-got {
			take = n - got
		}
		chunk := uint64(r.buff[off>>3]>>shift) & (uint64(1)<<take - 1)
		v |= chunk << got
		got += take
		off += int(take)
	}
	return v
}

// ReadBits reads n bits as a little-endian unsigned integer.
// It panics if n is larger than 64.
func (r *BitReader) ReadBits(n uint) (uint64, error) {
	if n > 64 {
		panic(NewError(ErrBadConfig, fmt.Sprintf("cannot read %v bits into a uint64", n), 1))
	}
	if err := r.need(int(n)); err != nil {
		return 0, err
	}
	v := r.load(r.off, n)
	r.off += int(n)
	return v, nil
}

// ReadBit reads a single bit.
func (r *BitReader) ReadBit() (bool, error) {
	if err := r.need(1); err != nil {
		return false, err
	}
	b := r.buff[r.off>>3]>>(uint(r.off)&7)&1 == 1
	r.off++
	return b, nil
}

// Bytes reads n whole bytes from the current offset, which need not be byte aligned.
// The returned slice is newly allocated.
func (r *BitReader) Bytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining()/8 {
		return nil, NewDataError(
			ErrInsufficientBits,
			r.off,
			fmt.Sprintf("want %v bytes but only %v bits remain", n, r.end-r.off),
		)
	}

	out := make([]byte, n)
	if r.off&7 == 0 {
		copy(out, r.buff[r.off>>3:])
		r.off += n * 8
		return out, nil
	}

	for i := range out {
		out[i] = byte(r.load(r.off, 8))
		r.off += 8
	}
	return out, nil
}

// String reads a string of n bytes, returning a DataError wrapping ErrInvalidUTF8 if it is not valid UTF-8.
func (r *BitReader) String(n int) (string, error) {
	start := r.off
	buff, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buff) {
		r.off = start
		return "", DataError{
			Err:     ErrInvalidUTF8,
			Offset:  start,
			Message: fmt.Sprintf("%v byte string", n),
			Raw:     buff,
		}
	}
	return string(buff), nil
}

// Skip advances the cursor by n bits.
func (r *BitReader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.off += n
	return nil
}

// Align skips padding bits up to the next multiple of width, returning the number of bits skipped.
// The content of padding bits is ignored.
func (r *BitReader) Align(width int) (int, error) {
	pad := Padding(r.off, width)
	if pad == 0 {
		return 0, nil
	}
	return pad, r.Skip(pad)
}

// Padding returns the number of bits needed to bring offset up to a multiple of width.
// Widths less than 2 never need padding.
func Padding(offset, width int) int {
	if width < 2 {
		return 0
	}
	return (width - offset%width) % width
}

// NewBitWriter returns a new BitWriter with room for sizeHint bits before it needs to grow.
func NewBitWriter(sizeHint int) *BitWriter {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &BitWriter{
		buff: make([]byte, 0, (sizeHint+7)/8),
	}
}

// BitWriter appends bits to a growing buffer it owns.
type BitWriter struct {
	buff []byte
	n    int
}

// Len returns the number of bits written.
func (w *BitWriter) Len() int { return w.n }

// Bytes returns the written bits. A trailing partial byte is zero filled.
// The returned slice aliases the writer's buffer until the next write.
func (w *BitWriter) Bytes() []byte { return w.buff }

// Reset empties the writer, keeping its buffer.
func (w *BitWriter) Reset() {
	w.buff = w.buff[:0]
	w.n = 0
}

// WriteBits writes the low n bits of v, little-endian.
// It panics if n is larger than 64.
func (w *BitWriter) WriteBits(v uint64, n uint) {
	if n > 64 {
		panic(NewError(ErrBadConfig, fmt.Sprintf("cannot write %v bits from a uint64", n), 1))
	}

	for n > 0 {
		if w.n&7 == 0 {
			w.buff = append(w.buff, 0)
		}
		shift := uint(w.n & 7)
		take := 8 - shift
		if take > n {
			take = n
		}
		w.buff[len(w.buff)-1] |= byte(v&(uint64(1)<<take-1)) << shift
		v >>= take
		n -= take
		w.n += int(take)
	}
}

// WriteBit writes a single bit.
func (w *BitWriter) WriteBit(b bool) {
	if b {
		w.WriteBits(1, 1)
		return
	}
	w.WriteBits(0, 1)
}

// PutBytes writes whole bytes from the current offset, which need not be byte aligned.
func (w *BitWriter) PutBytes(p []byte) {
	if w.n&7 == 0 {
		w.buff = append(w.buff, p...)
		w.n += len(p) * 8
		return
	}
	for _, b := range p {
		w.WriteBits(uint64(b), 8)
	}
}

// Pad writes zero bits up to the next multiple of width, returning the number of bits written.
func (w *BitWriter) Pad(width int) int {
	pad := Padding(w.n, width)
	for i := pad; i > 0; i -= 64 {
		if i > 64 {
			w.WriteBits(0, 64)
		} else {
			w.WriteBits(0, uint(i))
		}
	}
	return pad
}
