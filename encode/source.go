package encode

import (
	"fmt"
	"reflect"

	"github.com/stewi1014/phisave/encio"
)

// Source is a generator of Encodables. Compound type Encodables take Source as an argument upon creation,
// and use it for the generation of their element and field types.
//
// There are a few implementations of Source in this package, and wrapping Sources that provide different features is helpful.
// CachingSource for example has no idea what Encodables should be used to encode a given type; rather, it wraps a Source which does,
// and adds caching and recursive type detection.
type Source interface {
	// NewEncodable returns a new Encodable to be used to serialise the given type, configured by opts.
	//
	// The Source passed to NewEncodable must be passed to the Encodable that it creates. It is used by wrapping Sources to pass themselves to new Encodables,
	// so they don't loose control of element Encodable generation.
	//
	// It panics with an encio.Error if the type or options can't be encoded.
	NewEncodable(ty reflect.Type, opts Options, src Source) Encodable
}

// SourceFromFunc creates a source from a function.
// It will substitute itself if NewEncodable() is called with a nil-source.
//
// It will panic if nil is returned.
func SourceFromFunc(source func(reflect.Type, Options, Source) Encodable) Source {
	return funcSource{newEncodable: source}
}

type funcSource struct {
	newEncodable func(reflect.Type, Options, Source) Encodable
}

func (s funcSource) NewEncodable(ty reflect.Type, opts Options, source Source) Encodable {
	if source == nil {
		source = s
	}
	enc := s.newEncodable(ty, opts, source)
	if enc == nil {
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("no Encodable for %v", ty), 0))
	}
	return enc
}

// DefaultSource creates Encodables with New.
var DefaultSource = SourceFromFunc(New)

// New returns the Encodable for ty given opts, creating element and field Encodables from src.
//
//	uint8, uint16, uint32  fixed width, or variable-length with varint
//	uint64, uint           variable-length; varint is required
//	float32                IEEE-754 single precision
//	bool                   8 bits, or 1 bit with bit
//	string                 length-prefixed UTF-8
//	array                  fixed element count
//	slice                  element count from len or lenfunc
//	struct                 fields in declaration order
//
// Scalars and structs with an alignment are padded after the value.
// It panics with an encio.Error for other types, or options that don't apply to ty.
func New(ty reflect.Type, opts Options, src Source) Encodable {
	if src == nil {
		src = SourceFromFunc(New)
	}

	switch ty.Kind() {
	case reflect.Array:
		return NewArray(ty, opts, src)
	case reflect.Slice:
		return NewSlice(ty, opts, src)
	}

	if opts.Length != nil {
		panic(encio.NewError(encio.ErrBadConfig, fmt.Sprintf("%v (%v) is not a slice and can't take %v", opts.Name, ty, opts.Length), 0))
	}
	if opts.Align.Every > 0 {
		panic(encio.NewError(encio.ErrBadConfig, fmt.Sprintf("%v (%v) is not repeated and can't take subalign", opts.Name, ty), 0))
	}
	if opts.Bit && ty.Kind() != reflect.Bool {
		panic(encio.NewError(encio.ErrBadConfig, fmt.Sprintf("%v (%v) is not a bool and can't take bit", opts.Name, ty), 0))
	}

	var enc Encodable
	switch ty.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		enc = newUint(ty, opts)
	case reflect.Float32:
		enc = NewFloat32(ty)
	case reflect.Bool:
		if opts.Bit {
			enc = NewBit(ty)
		} else {
			enc = NewBool(ty)
		}
	case reflect.String:
		enc = NewString(ty)
	case reflect.Struct:
		enc = NewStruct(ty, src)
	default:
		panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v (%v) is not an encodable type", opts.Name, ty), 0))
	}

	if opts.VarInt {
		if _, ok := enc.(*VarUint); !ok {
			panic(encio.NewError(encio.ErrBadConfig, fmt.Sprintf("%v (%v) is not an unsigned integer and can't take varint", opts.Name, ty), 0))
		}
	}

	if opts.Align.Enabled() {
		return NewAligned(enc, opts.Align.Width)
	}
	return enc
}

func newUint(ty reflect.Type, opts Options) Encodable {
	if opts.VarInt {
		return NewVarUint(ty)
	}
	switch ty.Kind() {
	case reflect.Uint8:
		return NewUint8(ty)
	case reflect.Uint16:
		return NewUint16(ty)
	case reflect.Uint32:
		return NewUint32(ty)
	default:
		panic(encio.NewError(encio.ErrBadConfig, fmt.Sprintf("%v (%v) has no fixed width encoding; use varint", opts.Name, ty), 0))
	}
}

// NewCachingSource returns a new CachingSource, using source for cache misses.
func NewCachingSource(source Source) *CachingSource {
	return &CachingSource{
		cache:    make(map[cacheKey]Encodable),
		building: make(map[reflect.Type]bool),
		Source:   source,
	}
}

// CachingSource provides a cache of Encodables, keyed by type and options.
// It panics with an Error wrapping encio.ErrBadType if a struct type contains itself,
// which the encoded form has no way to terminate.
//
// It is not safe for concurrent use.
type CachingSource struct {
	cache    map[cacheKey]Encodable
	building map[reflect.Type]bool
	Source
}

type cacheKey struct {
	ty   reflect.Type
	opts string
}

// NewEncodable implements Source.
func (src *CachingSource) NewEncodable(ty reflect.Type, opts Options, parent Source) Encodable {
	key := cacheKey{ty: ty, opts: opts.String()}
	if enc, ok := src.cache[key]; ok {
		return enc
	}

	if ty.Kind() == reflect.Struct {
		if src.building[ty] {
			panic(encio.NewError(encio.ErrBadType, fmt.Sprintf("%v contains itself", ty), 0))
		}
		src.building[ty] = true
		defer delete(src.building, ty)
	}

	if parent == nil {
		parent = src
	}
	enc := src.Source.NewEncodable(ty, opts, parent)
	src.cache[key] = enc
	return enc
}
