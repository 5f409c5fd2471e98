package encio

import (
	"errors"
	"fmt"
	"runtime"
)

// Error handling in phisave is designed to make it easy to tell bad input apart from a bad schema or bad value,
// and to reuse a small set of common error kinds for as many errors as possible, with extra information wrapped as applicable.
// Panics are only used when there is a clear misuse of the library; programmer error.
// To this end, all error cases are grouped into two error wrappers; DataError and Error, the idea being that
// DataError errors indicate the buffer being decoded is malformed, and the caller should give up on it, and
// Error errors indicate the schema or the value being encoded cannot be used as given.
//
// In this way, errors can be checked with
//
//	var encErr encio.Error
//	var dataErr encio.DataError
//	if errors.As(err, &dataErr) {
//		//handle bad input
//	} else if errors.As(err, &encErr) {
//		//handle schema or value error
//	}
//
// or by kind with errors.Is(err, encio.ErrInsufficientBits).
//
// These errors will be wrapped by DataError or Error.
var (
	// ErrInsufficientBits is returned when fewer bits remain than a field requires.
	ErrInsufficientBits = errors.New("insufficient bits")

	// ErrInvalidUTF8 is returned when string bytes are not valid UTF-8.
	// The offending bytes are available in DataError.Raw.
	ErrInvalidUTF8 = errors.New("invalid utf-8")

	// ErrMissingLength is returned when a variable-length field has no resolvable element count.
	ErrMissingLength = errors.New("missing length")

	// ErrOutOfRange is returned when a value cannot be represented by its encoding.
	ErrOutOfRange = errors.New("out of range")

	// ErrBadType is returned when a type is wrong, unsupported or inappropriate;
	// either a schema field of an unsupported type, or a sibling value of the wrong kind.
	ErrBadType = errors.New("bad type")

	// ErrNilPointer is returned if a pointer that should not be nil is nil.
	ErrNilPointer = errors.New("nil pointer")

	// ErrBadConfig is returned when field options cannot be applied to the field they're given for.
	// i.e. a len= option on a fixed size array.
	ErrBadConfig = errors.New("bad config")
)

// NewDataError returns a DataError wrapping err with the given message.
// offset is the bit offset the failing read started at.
// message has extra information about the error; if empty, it is filled with the calling function's name.
func NewDataError(err error, offset int, message string) error {
	if err == nil {
		return NewError(errors.New("unknown error"), "trying to create new DataError", 1)
	}
	if message == "" {
		message = "in " + GetCaller(1)
	}

	return DataError{
		Err:     err,
		Offset:  offset,
		Message: message,
	}
}

// DataError is returned when the data being decoded is malformed.
type DataError struct {
	Err     error
	Offset  int
	Message string

	// Raw holds the offending bytes where that's useful, i.e. for ErrInvalidUTF8.
	Raw []byte
}

// Error implements error.
func (e DataError) Error() string {
	str := fmt.Sprintf("bit %v: ", e.Offset)
	if e.Message != "" {
		str += e.Message + ": "
	}
	str += e.Err.Error()
	if e.Raw != nil {
		str += fmt.Sprintf(", raw: % X", e.Raw)
	}
	return str
}

// Unwrap implements errors's Unwrap().
func (e DataError) Unwrap() error {
	return e.Err
}

// NewError returns an Error wrapping err with message and the name of the calling function,
// skipping skip functions. See GetCaller.
func NewError(err error, message string, skip int) error {
	return Error{
		Err:     err,
		Message: message,
		Caller:  GetCaller(skip + 1),
	}
}

// Error is returned when a schema or a value can't be encoded or decoded as asked.
type Error struct {
	Err     error
	Message string
	Caller  string
}

// Error implements error.
func (e Error) Error() (str string) {
	if e.Caller != "" {
		str = e.Caller + ": "
	}

	str += e.Err.Error()

	if e.Message != "" {
		str += " (" + e.Message + ")"
	}

	return str
}

// Unwrap implements errors's Unwrap().
func (e Error) Unwrap() error {
	return e.Err
}

// GetCaller returns the name of the calling function, skipping skip functions.
// i.e. 0 writes the calling function, 1 the function calling that etc...
func GetCaller(skip int) string {
	pcs := make([]uintptr, 1)
	n := runtime.Callers(2+skip, pcs)
	if n != 1 {
		return "Unknown Function"
	}

	frames := runtime.CallersFrames(pcs)
	frame, _ := frames.Next()
	return frame.Function
}
