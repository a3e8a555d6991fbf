// Package excel2json converts one sheet of an xlsx workbook into a
// sequence of JSON records, one per data row, keyed by normalized
// header names.
package excel2json

// Options configures a conversion.
type Options struct {
	// Columns holds requested 1-based visible-column ordinals, in the
	// order the caller listed them. Nil or empty selects all visible
	// columns in sheet order.
	Columns []int
}

// DefaultOptions returns options selecting all visible columns.
func DefaultOptions() Options {
	return Options{}
}
