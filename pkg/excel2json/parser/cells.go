package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid produces a typed mirror of the sheet's cell grid. rows is the
// formatted grid from f.GetRows and fixes the extent; each non-blank
// cell is re-read with its declared type so numbers stay numbers and
// booleans stay booleans. Blank cells are nil.
func Grid(f *excelize.File, sheetName string, rows [][]string) ([][]any, error) {
	grid := make([][]any, len(rows))
	for r, row := range rows {
		typed := make([]any, len(row))
		for c, formatted := range row {
			if formatted == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			v, err := cellValue(f, sheetName, cell)
			if err != nil {
				return nil, err
			}
			typed[c] = v
		}
		grid[r] = typed
	}
	return grid, nil
}

// cellValue maps one cell to float64, string, bool, or nil based on the
// cell type the workbook declares. No string-to-number sniffing happens
// for explicitly typed string cells.
func cellValue(f *excelize.File, sheetName, cell string) (any, error) {
	ctype, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetCellValue(sheetName, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	switch ctype {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true"), nil
	case excelize.CellTypeInlineString, excelize.CellTypeSharedString:
		return raw, nil
	case excelize.CellTypeDate:
		// explicit ISO date cells keep their formatted form
		return f.GetCellValue(sheetName, cell)
	case excelize.CellTypeError:
		return nil, nil
	case excelize.CellTypeFormula:
		// cached result of the last evaluation, if any
		return looseValue(raw), nil
	default:
		// number cells carry no explicit type attribute
		return looseValue(raw), nil
	}
}

// looseValue interprets a raw cell payload whose type the workbook does
// not pin down: numeric if it parses, nil if empty, text otherwise.
func looseValue(raw string) any {
	if raw == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}
