// Package schema validates the header row of an uploaded CSV against the
// fixed column schemas of each workflow. The PO and recycled-reference uploads
// demand an exact ordered match; the FCR upload only has to contain its
// required columns and may carry extra metadata columns.
package schema

import (
	"fmt"
	"strings"
)

// HeaderMismatchError reports a header that does not satisfy the expected
// schema. The message enumerates both the expected and the actual column
// lists, plus the missing columns for superset checks.
type HeaderMismatchError struct {
	Expected []string
	Got      []string
	Missing  []string
}

func (e *HeaderMismatchError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("header mismatch: missing columns [%s]; expected [%s], got [%s]",
			strings.Join(e.Missing, ", "),
			strings.Join(e.Expected, ", "),
			strings.Join(e.Got, ", "))
	}
	return fmt.Sprintf("header mismatch: expected [%s], got [%s]",
		strings.Join(e.Expected, ", "),
		strings.Join(e.Got, ", "))
}

// ValidateExact checks that header matches expected exactly: same columns, in
// the same order, compared after trimming each field. Any deviation fails.
func ValidateExact(header, expected []string) error {
	if len(header) != len(expected) {
		return &HeaderMismatchError{Expected: expected, Got: header}
	}
	for i, col := range header {
		if strings.TrimSpace(col) != expected[i] {
			return &HeaderMismatchError{Expected: expected, Got: header}
		}
	}
	return nil
}

// ValidateSuperset checks that header contains every required column. Order is
// irrelevant and extra columns are ignored; missing columns are named in the
// error.
func ValidateSuperset(header, required []string) error {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &HeaderMismatchError{Expected: required, Got: header, Missing: missing}
	}
	return nil
}
