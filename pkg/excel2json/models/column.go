// Package models defines data structures for sheet-to-JSON conversion.
package models

// Column describes one visible column of the selected sheet.
type Column struct {
	// Ordinal is the 1-based position among visible columns only.
	Ordinal int `json:"ordinal"`
	// Index is the 0-based absolute column position in the sheet.
	Index int `json:"index"`
	// Header is the raw header text, trimmed.
	Header string `json:"header"`
	// Key is the normalized JSON key derived from Header.
	Key string `json:"key"`
}
