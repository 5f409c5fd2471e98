package encio

import "math"

// Fixed width primitives.
// All are little-endian and need not be byte aligned.

// Uint8 reads an 8 bit unsigned integer.
func (r *BitReader) Uint8() (uint8, error) {
	n, err := r.ReadBits(8)
	return uint8(n), err
}

// Uint16 reads a 16 bit unsigned integer.
func (r *BitReader) Uint16() (uint16, error) {
	n, err := r.ReadBits(16)
	return uint16(n), err
}

// Uint32 reads a 32 bit unsigned integer.
func (r *BitReader) Uint32() (uint32, error) {
	n, err := r.ReadBits(32)
	return uint32(n), err
}

// Float32 reads the 32 bits of an IEEE-754 single-precision float.
func (r *BitReader) Float32() (float32, error) {
	n, err := r.ReadBits(32)
	return math.Float32frombits(uint32(n)), err
}

// ByteBool reads an 8 bit boolean. Only the first bit is significant; the other 7 are ignored.
func (r *BitReader) ByteBool() (bool, error) {
	n, err := r.ReadBits(8)
	return n&1 == 1, err
}

// PutUint8 writes an 8 bit unsigned integer.
func (w *BitWriter) PutUint8(n uint8) { w.WriteBits(uint64(n), 8) }

// PutUint16 writes a 16 bit unsigned integer.
func (w *BitWriter) PutUint16(n uint16) { w.WriteBits(uint64(n), 16) }

// PutUint32 writes a 32 bit unsigned integer.
func (w *BitWriter) PutUint32(n uint32) { w.WriteBits(uint64(n), 32) }

// PutFloat32 writes the 32 bits of an IEEE-754 single-precision float.
func (w *BitWriter) PutFloat32(f float32) { w.WriteBits(uint64(math.Float32bits(f)), 32) }

// PutByteBool writes an 8 bit boolean; the value in the first bit and 7 zero bits.
func (w *BitWriter) PutByteBool(b bool) {
	if b {
		w.WriteBits(1, 8)
		return
	}
	w.WriteBits(0, 8)
}
