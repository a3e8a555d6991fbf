package parser

import (
	"fmt"
	"strconv"
	"strings"

	"excel2json/pkg/excel2json/models"
)

// SelectVisible walks the header row in absolute column order and
// returns the columns whose trimmed header is non-empty. Ordinals are
// assigned 1..N in that order; columns with an empty header never
// receive an ordinal and are invisible to column selection.
func SelectVisible(headerRow []string) []models.Column {
	var visible []models.Column
	for idx, raw := range headerRow {
		header := strings.TrimSpace(raw)
		if header == "" {
			continue
		}
		visible = append(visible, models.Column{
			Ordinal: len(visible) + 1,
			Index:   idx,
			Header:  header,
		})
	}
	return visible
}

// ResolveSelection maps requested 1-based ordinals onto visible
// columns. A nil or empty request returns all visible columns in sheet
// order. Requested order is preserved exactly, including repeats and
// reordering. An ordinal outside [1, len(visible)] yields an
// InvalidColumnError.
func ResolveSelection(visible []models.Column, requested []int) ([]models.Column, error) {
	if len(requested) == 0 {
		return visible, nil
	}
	resolved := make([]models.Column, 0, len(requested))
	for _, n := range requested {
		if n < 1 || n > len(visible) {
			return nil, &InvalidColumnError{Requested: n, Max: len(visible)}
		}
		resolved = append(resolved, visible[n-1])
	}
	return resolved, nil
}

// ParseColumnSpec parses a --columns value like "1,2,3" into ordinals.
// Entries must be positive integers; range checking against the sheet
// happens later in ResolveSelection.
func ParseColumnSpec(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	ordinals := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid column number %q", strings.TrimSpace(part))
		}
		if n < 1 {
			return nil, fmt.Errorf("column numbers must be greater than 0, got %d", n)
		}
		ordinals = append(ordinals, n)
	}
	return ordinals, nil
}
