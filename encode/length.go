package encode

import (
	"errors"
	"fmt"
	"sync"

	"github.com/stewi1014/phisave/encio"
)

// Length gives the number of elements of a variable-length field while decoding.
// It is never used for encoding.
type Length interface {
	// Len returns the element count for field, given the fields decoded before it.
	Len(field string, s *Siblings) (int, error)
}

// SiblingLength is a Length that takes the element count from the named, already decoded, numeric field.
type SiblingLength string

// Len implements Length.
func (l SiblingLength) Len(field string, s *Siblings) (int, error) {
	n, err := s.Uint(string(l))
	if err != nil {
		return 0, err
	}
	if n > uint64(encio.TooBig) {
		return 0, encio.NewError(encio.ErrOutOfRange, fmt.Sprintf("%v elements for %v is too many", n, field), 0)
	}
	return int(n), nil
}

// String implements fmt.Stringer.
func (l SiblingLength) String() string { return "len=" + string(l) }

// LengthFunc is a Length computed by an arbitrary function.
// It must only read from s.
type LengthFunc func(field string, s *Siblings) (int, error)

// Len implements Length.
func (f LengthFunc) Len(field string, s *Siblings) (int, error) { return f(field, s) }

var lengths = struct {
	sync.RWMutex
	funcs map[string]LengthFunc
}{
	funcs: make(map[string]LengthFunc),
}

// RegisterLength registers fn under name, for use with the `lenfunc=name` struct tag option.
// Functions must be registered before the first Encodable using them is created.
func RegisterLength(name string, fn LengthFunc) error {
	if name == "" || fn == nil {
		return encio.NewError(encio.ErrBadConfig, "length functions need a name and a function", 0)
	}

	lengths.Lock()
	defer lengths.Unlock()

	if _, ok := lengths.funcs[name]; ok {
		return encio.NewError(errors.New("duplicate registration"), fmt.Sprintf("length function %v is already registered", name), 0)
	}
	lengths.funcs[name] = fn
	return nil
}

// LookupLength returns the length function registered under name.
func LookupLength(name string) (LengthFunc, bool) {
	lengths.RLock()
	defer lengths.RUnlock()

	fn, ok := lengths.funcs[name]
	return fn, ok
}
