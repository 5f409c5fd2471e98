// Package api is the boundary for hosts that only pass bytes across; each call converts one record
// between its bit-packed form and a MessagePack document.
//
// Every failure gives a nil result. Hosts that need the reason should use phisave/interchange directly.
package api

import (
	"github.com/stewi1014/phisave/interchange"
)

// Parse decodes the bit-packed record of the named kind in data, returning its MessagePack document.
// It returns nil if kind is unknown, data is empty, or data can't be decoded.
func Parse(kind string, data []byte) []byte {
	return ParseWith(interchange.MsgPack{}, kind, data)
}

// Build encodes the MessagePack document of the named kind in doc, returning the bit-packed record.
// It returns nil if kind is unknown, doc is empty, or doc doesn't describe an encodable record.
func Build(kind string, doc []byte) []byte {
	return BuildWith(interchange.MsgPack{}, kind, doc)
}

// ParseWith is Parse with documents written by c.
func ParseWith(c interchange.Codec, kind string, data []byte) []byte {
	k, err := interchange.Lookup(kind)
	if err != nil || len(data) == 0 {
		return nil
	}

	out, err := k.Decode(data, c)
	if err != nil {
		return nil
	}
	return out
}

// BuildWith is Build with documents read by c.
func BuildWith(c interchange.Codec, kind string, doc []byte) []byte {
	k, err := interchange.Lookup(kind)
	if err != nil || len(doc) == 0 {
		return nil
	}

	out, err := k.Encode(doc, c)
	if err != nil {
		return nil
	}
	return out
}
