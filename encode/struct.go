package encode

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/stewi1014/phisave/encio"
)

// structField is a field of a struct that is encoded, with its options resolved.
type structField struct {
	reflect.StructField
	opts Options
}

// structFields returns the encoded fields of ty in declaration order.
// Unexported fields and fields tagged `bits:"-"` are skipped.
// It panics with an Error if a tag can't be parsed.
func structFields(ty reflect.Type) []structField {
	fields := make([]structField, 0, ty.NumField())
	for i := 0; i < ty.NumField(); i++ {
		field := ty.Field(i)
		if field.PkgPath != "" {
			// Not exported
			continue
		}

		opts, skip, err := ParseTag(field.Tag.Get(StructTag))
		if err != nil {
			panic(encio.NewError(err, fmt.Sprintf("decoding struct tag of %v.%v", ty, field.Name), 0))
		}
		if skip {
			continue
		}
		if opts.Name == "" {
			opts.Name = field.Name
		}

		fields = append(fields, structField{
			StructField: field,
			opts:        opts,
		})
	}

	return fields
}

// NewStruct returns a new struct Encodable.
func NewStruct(ty reflect.Type, src Source) *Struct {
	if ty.Kind() != reflect.Struct {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v is not a struct", ty), 0))
	}

	fields := structFields(ty)
	s := &Struct{
		ty:     ty,
		fields: make([]field, len(fields)),
	}

	for i, f := range fields {
		s.fields[i] = field{
			name:   f.opts.Name,
			ty:     f.Type,
			offset: f.Offset,
			enc:    src.NewEncodable(f.Type, f.opts, src),
		}
	}

	return s
}

// Struct is an Encodable for structs, composing the Encodables of its fields.
//
// Fields are encoded one after another in declaration order, with no names, lengths or ids between them.
// While decoding, each field's value is recorded in the Siblings table under its name once it is decoded,
// for use by later fields and fields of later nested structs.
// See StructTag for field options.
type Struct struct {
	ty     reflect.Type
	fields []field
}

type field struct {
	name   string
	ty     reflect.Type
	offset uintptr
	enc    Encodable
}

// Size implements Encodable.
func (e *Struct) Size() (size int) {
	sizes := make([]int, len(e.fields))
	for i, f := range e.fields {
		sizes[i] = f.enc.Size()
	}
	return sumSizes(sizes...)
}

// Type implements Encodable.
func (e *Struct) Type() reflect.Type { return e.ty }

// Encode implements Encodable.
// Siblings aren't needed; the value being encoded already holds every length.
func (e *Struct) Encode(ptr unsafe.Pointer, w *encio.BitWriter) error {
	checkPtr(ptr)
	for _, f := range e.fields {
		if err := f.enc.Encode(unsafe.Pointer(uintptr(ptr)+f.offset), w); err != nil {
			return err
		}
	}
	return nil
}

// Decode implements Encodable.
// If s is nil, a new table is used.
// Decoding stops at the first field that fails, leaving the fields after it untouched.
func (e *Struct) Decode(ptr unsafe.Pointer, r *encio.BitReader, s *Siblings) error {
	checkPtr(ptr)
	if s == nil {
		s = NewSiblings()
	}

	for _, f := range e.fields {
		fptr := unsafe.Pointer(uintptr(ptr) + f.offset)
		if err := f.enc.Decode(fptr, r, s); err != nil {
			return err
		}
		s.Set(f.name, ValueOf(reflect.NewAt(f.ty, fptr).Elem()))
	}
	return nil
}
