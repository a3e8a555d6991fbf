package models

import (
	"encoding/json"
	"testing"
)

func TestRecordMarshalJSON(t *testing.T) {
	rec := Record{Fields: []Field{
		{Key: "name", Value: "John"},
		{Key: "age", Value: 25.0},
		{Key: "active", Value: true},
		{Key: "note", Value: nil},
	}}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"name":"John","age":25,"active":true,"note":null}`
	if string(data) != expected {
		t.Errorf("got %s, expected %s", data, expected)
	}
}

func TestRecordMarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(Record{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("got %s, expected {}", data)
	}
}

func TestRecordMarshalJSONDuplicateKeys(t *testing.T) {
	rec := Record{Fields: []Field{
		{Key: "c", Value: "z"},
		{Key: "a", Value: "x"},
		{Key: "c", Value: "z"},
	}}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"c":"z","a":"x","c":"z"}`
	if string(data) != expected {
		t.Errorf("got %s, expected %s", data, expected)
	}
}
