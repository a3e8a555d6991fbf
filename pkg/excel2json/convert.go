package excel2json

import (
	"fmt"
	"os"
	"slices"

	"excel2json/pkg/excel2json/models"
	"excel2json/pkg/excel2json/parser"

	"github.com/xuri/excelize/v2"
)

// Convert reads the named sheet of the workbook at path and builds one
// record per data row. The first row is the header row; columns whose
// header is empty are skipped and never counted by opts.Columns. Any
// failure is terminal, nothing is retried.
func Convert(path, sheetName string, opts Options) (*models.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, &SheetNotFoundError{Sheet: sheetName, Available: f.GetSheetList()}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, &EmptySheetError{Sheet: sheetName}
	}

	visible := parser.SelectVisible(rows[0])
	if err := parser.AssignKeys(visible); err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}
	columns, err := parser.ResolveSelection(visible, opts.Columns)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}

	grid, err := parser.Grid(f, sheetName, rows)
	if err != nil {
		return nil, fmt.Errorf("reading cells of sheet %q: %w", sheetName, err)
	}

	records := make([]models.Record, 0, len(grid)-1)
	for _, row := range grid[1:] {
		records = append(records, parser.BuildRecord(row, columns))
	}

	return &models.Table{Columns: columns, Records: records}, nil
}
