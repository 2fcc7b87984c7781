package domain

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Record is an opaque item from the host collection. The document itself is
// never interpreted beyond field lookups; identity and display are resolved
// through gjson paths chosen by configuration, so the same list can carry
// any JSON shape.
type Record struct {
	doc      gjson.Result
	Selected bool // selection projection, kept in sync by the controller
}

// NewRecord wraps a parsed JSON value
func NewRecord(doc gjson.Result) *Record {
	return &Record{doc: doc}
}

// Field returns the string form of the value at a gjson path, "" if absent
func (r *Record) Field(path string) string {
	return r.doc.Get(path).String()
}

// Raw returns the record's original JSON text
func (r *Record) Raw() string {
	return r.doc.Raw
}

// ParseRecords parses a JSON array of objects into records
func ParseRecords(data []byte) ([]*Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON document")
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a top-level JSON array of items")
	}
	var records []*Record
	for _, doc := range parsed.Array() {
		records = append(records, NewRecord(doc))
	}
	return records, nil
}

// LoadRecords reads and parses a data file
func LoadRecords(path string) ([]*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	records, err := ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	return records, nil
}
