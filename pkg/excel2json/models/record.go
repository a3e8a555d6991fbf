package models

import (
	"bytes"
	"encoding/json"
)

// Field is a single key/value pair of a Record.
type Field struct {
	// Key is the normalized column key.
	Key string
	// Value is the typed cell value: float64, string, bool, or nil.
	Value any
}

// Record is one output object per data row. Fields keep the
// resolved-column order, which encoding/json maps would not.
type Record struct {
	Fields []Field
}

// MarshalJSON writes the record as a JSON object with fields in order.
// A key repeated by the column selection is emitted repeatedly.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
