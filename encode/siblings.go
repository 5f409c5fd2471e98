package encode

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/stewi1014/phisave/encio"
)

// Kind is the kind of a Value.
type Kind uint8

// Kinds of Value.
const (
	KindInvalid Kind = iota
	KindUint
	KindFloat
	KindBool
	KindString
	KindList
	KindRecord
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindUint:    "uint",
	KindFloat:   "float",
	KindBool:    "bool",
	KindString:  "string",
	KindList:    "list",
	KindRecord:  "record",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a decoded field as seen by the fields after it.
// The zero Value is KindInvalid.
type Value struct {
	kind Kind
	n    uint64
	f    float64
	s    string
	list []Value
}

// UintValue returns a Uint Value.
func UintValue(n uint64) Value { return Value{kind: KindUint, n: n} }

// FloatValue returns a Float Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// BoolValue returns a Bool Value.
func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.n = 1
	}
	return v
}

// StringValue returns a String Value.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// ListValue returns a List Value holding elems.
func ListValue(elems ...Value) Value { return Value{kind: KindList, list: elems} }

// RecordValue returns a Record Value. Records carry nothing;
// their fields are in the table under their own names.
func RecordValue() Value { return Value{kind: KindRecord} }

// ValueOf returns the Value for v.
// Kinds that are never part of a schema give a KindInvalid Value.
func ValueOf(v reflect.Value) Value {
	switch v.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return UintValue(v.Uint())
	case reflect.Float32, reflect.Float64:
		return FloatValue(v.Float())
	case reflect.Bool:
		return BoolValue(v.Bool())
	case reflect.String:
		return StringValue(v.String())
	case reflect.Array, reflect.Slice:
		if v.Len() == 0 {
			return ListValue()
		}
		elems := make([]Value, v.Len())
		for i := range elems {
			elems[i] = ValueOf(v.Index(i))
		}
		return ListValue(elems...)
	case reflect.Struct:
		return RecordValue()
	default:
		return Value{}
	}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Uint returns the number held by a Uint Value.
func (v Value) Uint() (uint64, bool) { return v.n, v.kind == KindUint }

// Float returns the number held by a Float Value.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Bool returns the boolean held by a Bool Value.
func (v Value) Bool() (bool, bool) { return v.n == 1, v.kind == KindBool }

// Text returns the string held by a String Value.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindString }

// List returns the elements held by a List Value.
func (v Value) List() ([]Value, bool) { return v.list, v.kind == KindList }

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case KindUint:
		return strconv.FormatUint(v.n, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.n == 1)
	case KindString:
		return strconv.Quote(v.s)
	case KindList:
		return fmt.Sprint(v.list)
	default:
		return "<" + v.kind.String() + ">"
	}
}

// NewSiblings returns an empty Siblings table.
func NewSiblings() *Siblings {
	return &Siblings{
		values: make(map[string]Value),
	}
}

// Siblings holds the fields decoded so far by a single decode, by name.
//
// The namespace is flat; nested records write their fields into the same table as their parent,
// and a field replaces any earlier field of the same name.
// A nil *Siblings is an empty table.
type Siblings struct {
	values map[string]Value
}

// Set records the value of the named field.
func (s *Siblings) Set(name string, v Value) {
	s.values[name] = v
}

// Get returns the value of the named field.
func (s *Siblings) Get(name string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Len returns the number of names in the table.
func (s *Siblings) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

func (s *Siblings) lookup(name string, kind Kind) (Value, error) {
	v, ok := s.Get(name)
	if !ok {
		return v, encio.NewError(encio.ErrMissingLength, fmt.Sprintf("no field named %v has been decoded", name), 2)
	}
	if v.kind != kind {
		return v, encio.NewError(encio.ErrBadType, fmt.Sprintf("field %v is %v, not %v", name, v.kind, kind), 2)
	}
	return v, nil
}

// Uint returns the number held by the named field.
// It returns an error wrapping encio.ErrMissingLength if there is no such field,
// and encio.ErrBadType if the field isn't a number.
func (s *Siblings) Uint(name string) (uint64, error) {
	v, err := s.lookup(name, KindUint)
	return v.n, err
}

// Bools returns the booleans held by the named list field.
// It returns an error wrapping encio.ErrMissingLength if there is no such field,
// and encio.ErrBadType if the field isn't a list of booleans.
func (s *Siblings) Bools(name string) ([]bool, error) {
	v, err := s.lookup(name, KindList)
	if err != nil {
		return nil, err
	}

	bools := make([]bool, len(v.list))
	for i, elem := range v.list {
		b, ok := elem.Bool()
		if !ok {
			return nil, encio.NewError(encio.ErrBadType, fmt.Sprintf("field %v holds %v, not bool", name, elem.kind), 1)
		}
		bools[i] = b
	}
	return bools, nil
}

// CountTrue returns the number of true values in the named list of booleans.
func (s *Siblings) CountTrue(name string) (int, error) {
	bools, err := s.Bools(name)
	if err != nil {
		return 0, err
	}

	var n int
	for _, b := range bools {
		if b {
			n++
		}
	}
	return n, nil
}
