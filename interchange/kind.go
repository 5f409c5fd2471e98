package interchange

import (
	"errors"
	"fmt"
	"sort"

	"github.com/stewi1014/phisave"
	"github.com/stewi1014/phisave/schema"
)

// ErrUnknownKind is returned for record kinds that aren't in Kinds.
var ErrUnknownKind = errors.New("unknown record kind")

// Kind converts one record type between its bit-packed form and its Document.
type Kind struct {
	Name string

	newRecord func() interface{}
	newDoc    func() Document
	document  func(record interface{}) Document
}

// Kinds are the supported record kinds by name.
var Kinds = map[string]Kind{
	"user": {
		Name:      "user",
		newRecord: func() interface{} { return new(schema.User) },
		newDoc:    func() Document { return new(User) },
		document:  func(r interface{}) Document { return NewUser(r.(*schema.User)) },
	},
	"summary": {
		Name:      "summary",
		newRecord: func() interface{} { return new(schema.Summary) },
		newDoc:    func() Document { return new(Summary) },
		document:  func(r interface{}) Document { return NewSummary(r.(*schema.Summary)) },
	},
	"game_key": {
		Name:      "game_key",
		newRecord: func() interface{} { return new(schema.GameKey) },
		newDoc:    func() Document { return new(GameKey) },
		document:  func(r interface{}) Document { return NewGameKey(r.(*schema.GameKey)) },
	},
	"game_progress": {
		Name:      "game_progress",
		newRecord: func() interface{} { return new(schema.GameProgress) },
		newDoc:    func() Document { return new(GameProgress) },
		document:  func(r interface{}) Document { return NewGameProgress(r.(*schema.GameProgress)) },
	},
	"game_record": {
		Name:      "game_record",
		newRecord: func() interface{} { return new(schema.GameRecord) },
		newDoc:    func() Document { return new(GameRecord) },
		document:  func(r interface{}) Document { return NewGameRecord(r.(*schema.GameRecord)) },
	},
}

// KindNames returns the names of Kinds, sorted.
func KindNames() []string {
	names := make([]string, 0, len(Kinds))
	for name := range Kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the Kind called name.
func Lookup(name string) (Kind, error) {
	k, ok := Kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Parse decodes a bit-packed record into its Document.
// Bits after the record are ignored.
func (k Kind) Parse(data []byte) (Document, error) {
	record := k.newRecord()
	if _, err := phisave.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", k.Name, err)
	}
	return k.document(record), nil
}

// Build encodes the record doc describes, recomputing its length fields.
func (k Kind) Build(doc Document) ([]byte, error) {
	record, err := doc.Record()
	if err != nil {
		return nil, fmt.Errorf("building %v: %w", k.Name, err)
	}

	data, err := phisave.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("building %v: %w", k.Name, err)
	}
	return data, nil
}

// Decode parses a bit-packed record and serializes its Document with c.
func (k Kind) Decode(data []byte, c Codec) ([]byte, error) {
	doc, err := k.Parse(data)
	if err != nil {
		return nil, err
	}

	out, err := c.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("writing %v %v document: %w", k.Name, c.Name(), err)
	}
	return out, nil
}

// Encode deserializes a Document with c and builds its bit-packed record.
func (k Kind) Encode(data []byte, c Codec) ([]byte, error) {
	doc := k.newDoc()
	if err := c.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("reading %v %v document: %w", k.Name, c.Name(), err)
	}
	return k.Build(doc)
}
