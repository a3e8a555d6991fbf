package parser

import (
	"strings"
	"unicode"

	"excel2json/pkg/excel2json/models"
)

// wholeSymbol maps a header that consists of exactly one special
// character to a word. Checked before any in-text substitution.
var wholeSymbol = map[string]string{
	"#": "number",
	"@": "at",
	"%": "percent",
	"$": "usd",
	"/": "slash",
	"&": "and",
}

// NormalizeHeader derives a JSON key from a raw header. The result is
// lowercase, contains only letters, digits and underscores, and has no
// leading, trailing or doubled underscores. It may be empty when the
// header has no usable characters; callers must treat that as an error.
//
// Examples: "Sales/Revenue" → "sales_revenue", "Profit & Loss" →
// "profit_and_loss", "Price ($)" → "price_usd", "#" → "number".
func NormalizeHeader(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if word, ok := wholeSymbol[trimmed]; ok {
		return word
	}

	// Single left-to-right scan so co-occurring special characters
	// resolve deterministically.
	var b strings.Builder
	for _, r := range trimmed {
		switch {
		case r == '(' || r == ')':
			// parenthesis characters are dropped, their contents kept
		case r == '/' || r == '#':
			b.WriteByte('_')
		case r == '&':
			b.WriteString("_and_")
		case r == '@':
			b.WriteString("_at_")
		case r == '%':
			b.WriteString("_percent_")
		case r == '$':
			b.WriteString("_usd_")
		case unicode.IsSpace(r):
			b.WriteByte('_')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte('_')
		}
	}

	// Collapse underscore runs and strip the ends.
	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '_' })
	return strings.Join(parts, "_")
}

// AssignKeys normalizes the header of every visible column in place.
// A header that normalizes to the empty string yields an EmptyKeyError;
// two distinct headers normalizing to the same key yield a
// DuplicateKeyError. Runs over all visible columns so collisions do not
// depend on which columns were selected.
func AssignKeys(cols []models.Column) error {
	seen := make(map[string]string, len(cols))
	for i := range cols {
		key := NormalizeHeader(cols[i].Header)
		if key == "" {
			return &EmptyKeyError{Header: cols[i].Header, Position: cols[i].Index + 1}
		}
		if first, ok := seen[key]; ok {
			return &DuplicateKeyError{Key: key, First: first, Second: cols[i].Header}
		}
		seen[key] = cols[i].Header
		cols[i].Key = key
	}
	return nil
}
