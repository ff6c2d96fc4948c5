// Package normalize provides the pure field normalizers applied to raw CSV
// values before formatting. Every function is total: malformed input degrades
// to pass-through instead of failing, so one bad field never aborts a batch.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DisplayDateLayout is the day-month-year layout all dates are rendered in.
const DisplayDateLayout = "02-01-2006"

// SerialWidth is the zero-padded width of EXP serial numbers.
const SerialWidth = 6

// dateFormats are tried in order when parsing a date value. The display
// layout comes first so already-formatted values re-format to themselves.
var dateFormats = []string{
	DisplayDateLayout,     // DD-MM-YYYY
	"2006-01-02",          // ISO
	"02/01/2006",          // DD/MM/YYYY
	"2006/01/02",          // YYYY/MM/DD
	"02.01.2006",          // DD.MM.YYYY
	"2006-01-02 15:04:05", // ISO with time
	time.RFC3339,
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var spaceRe = regexp.MustCompile(`\s+`)

// cleanValue trims and collapses internal whitespace.
func cleanValue(s string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Serial parses s as a number, truncates toward zero and zero-pads the result
// to six digits. Unparsable input is returned unchanged.
func Serial(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%0*d", SerialWidth, d.IntPart())
}

// Date interprets s as a calendar date and renders it as DD-MM-YYYY. The empty
// string maps to the empty string; unparsable input is returned unchanged.
func Date(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	cleaned := cleanValue(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format(DisplayDateLayout)
		}
	}
	return s
}

// Number parses s as a decimal value and returns its canonical string
// representation: trailing zeros dropped, integers without a fractional part.
// The empty string maps to the empty string; unparsable input is returned
// unchanged.
func Number(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return s
	}
	return d.String()
}
