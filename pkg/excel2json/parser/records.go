package parser

import "excel2json/pkg/excel2json/models"

// BuildRecord builds one output record from a typed row. Columns past
// the end of a short row read as nil; short rows are not an error.
func BuildRecord(row []any, cols []models.Column) models.Record {
	fields := make([]models.Field, 0, len(cols))
	for _, col := range cols {
		var v any
		if col.Index < len(row) {
			v = row[col.Index]
		}
		fields = append(fields, models.Field{Key: col.Key, Value: v})
	}
	return models.Record{Fields: fields}
}
