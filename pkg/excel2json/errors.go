package excel2json

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// SheetNotFoundError indicates the requested sheet name is absent from
// the workbook. Sheet name matching is exact and case-sensitive.
type SheetNotFoundError struct {
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found (available: %s)", e.Sheet, strings.Join(e.Available, ", "))
}

// EmptySheetError indicates the selected sheet has no header row.
type EmptySheetError struct {
	Sheet string
}

func (e *EmptySheetError) Error() string {
	return fmt.Sprintf("sheet %q is empty, no header row found", e.Sheet)
}
