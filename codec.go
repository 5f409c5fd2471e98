package phisave

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/stewi1014/phisave/encio"
	"github.com/stewi1014/phisave/encode"
)

// NewCodec returns a new Codec. config may be nil.
func NewCodec(config *Config) *Codec {
	config = config.copyAndFill()
	return &Codec{
		source: encode.NewCachingSource(config.Source),
		cache:  make(map[reflect.Type]encode.Encodable),
	}
}

// Codec encodes and decodes records, creating the Encodable for each record type the first time it's seen.
// It is safe for concurrent use.
type Codec struct {
	mutex  sync.RWMutex
	source *encode.CachingSource
	cache  map[reflect.Type]encode.Encodable
}

// Encodable returns the Encodable for ty.
// It returns an encio.Error if ty can't be encoded, i.e. it has a field of an unsupported type,
// a bad struct tag, or a slice with no length.
func (c *Codec) Encodable(ty reflect.Type) (encode.Encodable, error) {
	c.mutex.RLock()
	enc, ok := c.cache[ty]
	c.mutex.RUnlock()
	if ok {
		return enc, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if enc, ok := c.cache[ty]; ok {
		return enc, nil
	}

	enc, err := c.build(ty)
	if err != nil {
		return nil, err
	}

	c.cache[ty] = enc
	return enc, nil
}

// build creates a new Encodable, returning the panics of Encodable constructors as errors.
func (c *Codec) build(ty reflect.Type) (enc encode.Encodable, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = encio.NewError(rerr, fmt.Sprintf("creating Encodable for %v", ty), 0)
		}
	}()

	return c.source.NewEncodable(ty, encode.Options{}, nil), nil
}
