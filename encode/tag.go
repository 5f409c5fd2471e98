package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stewi1014/phisave/encio"
)

const (
	// StructTag is the struct tag configuring how a field is encoded.
	// Its value is a comma separated list of options:
	//
	//	-             skip the field
	//	bit           encode booleans as a single bit instead of a byte
	//	varint        encode an unsigned integer as a variable-length integer
	//	align=W       pad to the next multiple of W bits after the field, or after repeated elements
	//	subalign=N    with align, pad after every N elements of an array or slice
	//	len=F         slice length is the value of the earlier numeric field F
	//	lenfunc=NAME  slice length is computed by the function registered as NAME
	//	name=KEY      the key the field's value is recorded under for later fields; defaults to the field name
	//
	// bit and varint apply to the elements of arrays and slices.
	StructTag = "bits"
)

// Options are per-field encoding options.
type Options struct {
	// Bit encodes booleans in 1 bit rather than 8.
	Bit bool

	// VarInt encodes unsigned integers as variable-length integers.
	VarInt bool

	// Align pads the field, or elements of the field, to a bit boundary.
	Align Alignment

	// Length resolves the element count of a slice while decoding.
	Length Length

	// Name is the key the field is recorded under in Siblings, and the name given to Length.
	Name string
}

// elem returns the options that apply to the elements of a repeated field.
func (o Options) elem() Options {
	return Options{
		Bit:    o.Bit,
		VarInt: o.VarInt,
		Name:   o.Name,
	}
}

// String implements fmt.Stringer.
func (o Options) String() string {
	var opts []string
	if o.Bit {
		opts = append(opts, "bit")
	}
	if o.VarInt {
		opts = append(opts, "varint")
	}
	if o.Align.Width > 0 {
		opts = append(opts, "align="+strconv.Itoa(o.Align.Width))
	}
	if o.Align.Every > 0 {
		opts = append(opts, "subalign="+strconv.Itoa(o.Align.Every))
	}
	if o.Length != nil {
		opts = append(opts, fmt.Sprint(o.Length))
	}
	if o.Name != "" {
		opts = append(opts, "name="+o.Name)
	}
	return strings.Join(opts, ",")
}

// ParseTag parses the value of a StructTag.
// skip is true if the field should not be encoded.
func ParseTag(tag string) (opts Options, skip bool, err error) {
	tag = strings.TrimSpace(tag)
	if tag == "-" {
		return opts, true, nil
	}
	if tag == "" {
		return opts, false, nil
	}

	for _, opt := range strings.Split(tag, ",") {
		key, val, hasVal := strings.Cut(strings.TrimSpace(opt), "=")

		switch key {
		case "bit":
			opts.Bit = true
		case "varint":
			opts.VarInt = true
		case "align", "subalign":
			n, err := strconv.Atoi(val)
			if !hasVal || err != nil || n < 1 {
				return opts, false, encio.NewError(encio.ErrBadConfig, fmt.Sprintf("%v needs a positive number, got %q", key, val), 0)
			}
			if key == "align" {
				opts.Align.Width = n
			} else {
				opts.Align.Every = n
			}
		case "len":
			if !hasVal || val == "" {
				return opts, false, encio.NewError(encio.ErrBadConfig, "len needs a field name", 0)
			}
			opts.Length = SiblingLength(val)
		case "lenfunc":
			fn, ok := LookupLength(val)
			if !ok {
				return opts, false, encio.NewError(encio.ErrMissingLength, fmt.Sprintf("no length function registered as %q", val), 0)
			}
			opts.Length = namedLength{name: val, fn: fn}
		case "name":
			if !hasVal || val == "" {
				return opts, false, encio.NewError(encio.ErrBadConfig, "name needs a value", 0)
			}
			opts.Name = val
		default:
			return opts, false, encio.NewError(encio.ErrBadConfig, fmt.Sprintf("unknown option %q in %v tag %q", key, StructTag, tag), 0)
		}
	}

	if opts.Align.Every > 0 && opts.Align.Width == 0 {
		return opts, false, encio.NewError(encio.ErrBadConfig, "subalign without align", 0)
	}

	return opts, false, nil
}

// namedLength is a registered LengthFunc that remembers its name for printing.
type namedLength struct {
	name string
	fn   LengthFunc
}

func (l namedLength) Len(field string, s *Siblings) (int, error) { return l.fn(field, s) }

func (l namedLength) String() string { return "lenfunc=" + l.name }
