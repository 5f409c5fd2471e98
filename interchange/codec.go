// Package interchange converts save records to and from documents for hosts that don't speak the bit-packed formats;
// JSON or MessagePack maps with snake_case keys.
package interchange

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes and decodes documents.
type Codec interface {
	// Marshal serializes v into bytes.
	Marshal(v interface{}) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v interface{}) error
	// Name returns the codec identifier used for flags and diagnostics.
	Name() string
}

// JSON is a codec using encoding/json.
type JSON struct {
	// Indent, if set, pretty-prints documents.
	Indent string
}

// Marshal serializes v to JSON bytes.
func (c JSON) Marshal(v interface{}) ([]byte, error) {
	if c.Indent != "" {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Unmarshal deserializes JSON bytes into v.
func (JSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Name returns "json".
func (JSON) Name() string { return "json" }

// MsgPack is a codec using MessagePack encoding.
// Documents are maps keyed by field name.
type MsgPack struct{}

// Marshal serializes v to MessagePack bytes.
func (MsgPack) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal deserializes MessagePack bytes into v.
func (MsgPack) Unmarshal(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

// Name returns "msgpack".
func (MsgPack) Name() string { return "msgpack" }

// CodecByName returns the codec called name; "json" or "msgpack".
// pretty indents JSON documents.
func CodecByName(name string, pretty bool) (Codec, error) {
	switch name {
	case "json":
		if pretty {
			return JSON{Indent: "  "}, nil
		}
		return JSON{}, nil
	case "msgpack":
		return MsgPack{}, nil
	default:
		return nil, fmt.Errorf("unknown document format %q, want json or msgpack", name)
	}
}
