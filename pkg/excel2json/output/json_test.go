package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"excel2json/pkg/excel2json/models"
)

func TestToJSON(t *testing.T) {
	records := []models.Record{
		{Fields: []models.Field{{Key: "name", Value: "John"}, {Key: "age", Value: 25.0}}},
		{Fields: []models.Field{{Key: "name", Value: "Jane"}, {Key: "age", Value: nil}}},
	}

	data, err := ToJSON(records, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	expected := `[{"name":"John","age":25},{"name":"Jane","age":null}]`
	if string(data) != expected {
		t.Errorf("got %s, expected %s", data, expected)
	}
}

func TestToJSONEmpty(t *testing.T) {
	data, err := ToJSON([]models.Record{}, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("got %s, expected []", data)
	}
}

func TestToJSONPretty(t *testing.T) {
	records := []models.Record{
		{Fields: []models.Field{{Key: "name", Value: "John"}}},
	}

	data, err := ToJSON(records, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	expected := "[\n  {\n    \"name\": \"John\"\n  }\n]"
	if string(data) != expected {
		t.Errorf("got %q, expected %q", data, expected)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteFile(path, []byte(`[]`)); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("got %s, expected []", data)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("listing dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.json")

	err := WriteFile(path, []byte(`[]`))
	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected WriteError, got %v", err)
	}
	if writeErr.Path != path {
		t.Errorf("error path = %q, expected %q", writeErr.Path, path)
	}
}
