package models

// Table is the result of converting one sheet: the resolved columns
// and one record per data row, in sheet order.
type Table struct {
	// Columns are the resolved columns in output order.
	Columns []Column `json:"columns"`
	// Records holds one Record per data row. Never nil: a sheet with
	// only a header row yields an empty slice.
	Records []Record `json:"records"`
}
