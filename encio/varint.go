package encio

import "fmt"

const (
	// MaxVarUint is the largest number VarUint can encode.
	MaxVarUint = 1<<14 - 1

	maxSingleVarUint = 0x7F
	varUintMore      = 0x80
)

// The variable-length integer is one byte for numbers up to 127,
// and two bytes otherwise; the first holding the low 7 bits with the high bit set, the second the remaining bits.
// There is never more than one continuation byte.

// VarUint reads a variable-length integer.
//
// A second byte larger than 127 would decode to a number PutVarUint can't write,
// i.e. 80 80 would be 16384, and is reported as a DataError wrapping ErrOutOfRange.
// Every number VarUint returns is written back as the bytes it was read from.
func (r *BitReader) VarUint() (uint16, error) {
	start := r.off
	first, err := r.Uint8()
	if err != nil {
		return 0, err
	}
	if first <= maxSingleVarUint {
		return uint16(first), nil
	}

	second, err := r.Uint8()
	if err != nil {
		r.off = start
		return 0, err
	}
	if second > maxSingleVarUint {
		r.off = start
		return 0, NewDataError(
			ErrOutOfRange,
			start,
			fmt.Sprintf("variable-length integer continuation byte %#x is larger than %#x", second, maxSingleVarUint),
		)
	}

	return uint16(first&maxSingleVarUint) | uint16(second)<<7, nil
}

// PutVarUint writes a variable-length integer.
// It returns an Error wrapping ErrOutOfRange if n is larger than MaxVarUint, writing nothing.
func (w *BitWriter) PutVarUint(n uint64) error {
	if n > MaxVarUint {
		return NewError(ErrOutOfRange, fmt.Sprintf("%v is larger than the largest variable-length integer %v", n, MaxVarUint), 1)
	}
	if n <= maxSingleVarUint {
		w.PutUint8(uint8(n))
		return nil
	}
	w.PutUint8(uint8(n&maxSingleVarUint) | varUintMore)
	w.PutUint8(uint8(n >> 7))
	return nil
}
