package parser

import "fmt"

// EmptyKeyError indicates a header that normalizes to the empty string
// and therefore cannot become a JSON key.
type EmptyKeyError struct {
	// Header is the original header text.
	Header string
	// Position is the 1-based absolute column position in the sheet.
	Position int
}

func (e *EmptyKeyError) Error() string {
	return fmt.Sprintf("header %q in column %d normalizes to an empty key", e.Header, e.Position)
}

// DuplicateKeyError indicates two distinct headers normalizing to the
// same key within one sheet.
type DuplicateKeyError struct {
	Key    string
	First  string
	Second string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("headers %q and %q both normalize to key %q", e.First, e.Second, e.Key)
}

// InvalidColumnError indicates a requested column ordinal outside the
// range of visible columns.
type InvalidColumnError struct {
	Requested int
	Max       int
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("column number %d exceeds visible column count (%d)", e.Requested, e.Max)
}
