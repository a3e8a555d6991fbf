// Package output serializes conversion results and writes them to disk.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"excel2json/pkg/excel2json/models"
)

// WriteError indicates the destination path could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing output %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ToJSON serializes records as a JSON array of objects. Object key
// order follows the records' field order.
func ToJSON(records []models.Record, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}

// WriteFile writes data to path through a temp file in the same
// directory, renamed into place on success, so a failed run never
// leaves a truncated output file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
