// Package csvio turns raw uploaded CSV bytes into an ordered sequence of row
// mappings. The delimiter is auto-detected, structural anomalies are demoted
// to warnings on the diagnostics sink, and only a missing header or a file
// with zero data rows is fatal.
package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"mrahman/fcr-gen/internal/diag"
	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/models"
)

// Parse failure reasons.
const (
	ReasonEmptyFile = "empty-file"
	ReasonNoHeaders = "no-headers"
)

// ParseError is the fatal outcome of parsing an unreadable or empty file.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("csv parse failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("csv parse failed (%s)", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// delimiterCandidates are tried during auto-detection, in preference order.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// detectionSampleSize caps how much of the input delimiter detection looks at.
const detectionSampleSize = 8192

// DetectDelimiter samples the input and picks the candidate delimiter that
// yields the most consistent multi-column split across lines. Falls back to
// comma when nothing scores.
func DetectDelimiter(data []byte) rune {
	sample := data
	if len(sample) > detectionSampleSize {
		sample = sample[:detectionSampleSize]
		// Cut at the last full line so a truncated row does not skew scoring.
		if idx := bytes.LastIndexByte(sample, '\n'); idx > 0 {
			sample = sample[:idx]
		}
	}

	best := ','
	bestScore := 0
	for _, delim := range delimiterCandidates {
		reader := csv.NewReader(bytes.NewReader(sample))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) == 0 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		consistent := 0
		for _, row := range records {
			if len(row) == firstCols {
				consistent++
			}
		}

		// Consistency dominates; column count breaks ties.
		score := consistent*10 + firstCols
		if score > bestScore {
			bestScore = score
			best = delim
		}
	}
	return best
}

// Parse reads raw file bytes into a ParsedDataset. Ragged rows are padded or
// truncated to the header width with a warning; fully empty lines are skipped.
// Returns a ParseError when the input yields no header or no data rows.
func Parse(data []byte, logger logging.Logger, sink *diag.Sink) (*models.ParsedDataset, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	delimiter := DetectDelimiter(data)
	logger.Debug("Detected CSV delimiter", logging.Field{Key: "delimiter", Value: string(delimiter)})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var header []string
	var rows []models.Row
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			sink.Log(fmt.Sprintf("Skipped malformed CSV line %d: %v", line, err), diag.SeverityWarning)
			logger.WithError(err).Warn("Skipping malformed CSV line",
				logging.Field{Key: "line", Value: line})
			continue
		}
		if isEmptyRecord(record) {
			continue
		}

		if header == nil {
			header = trimFields(record)
			continue
		}

		if len(record) != len(header) {
			sink.Log(fmt.Sprintf("Line %d has %d fields, expected %d", line, len(record), len(header)),
				diag.SeverityWarning)
			logger.Warn("Ragged CSV row",
				logging.Field{Key: "line", Value: line},
				logging.Field{Key: "fields", Value: len(record)},
				logging.Field{Key: "expected", Value: len(header)})
		}

		row := make(models.Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	if len(header) == 0 {
		return nil, &ParseError{Reason: ReasonNoHeaders}
	}
	if len(rows) == 0 {
		return nil, &ParseError{Reason: ReasonEmptyFile}
	}

	logger.Info("Parsed CSV input",
		logging.Field{Key: "rows", Value: len(rows)},
		logging.Field{Key: "columns", Value: len(header)})

	return &models.ParsedDataset{
		Rows:              rows,
		HeaderFields:      header,
		DetectedDelimiter: string(delimiter),
	}, nil
}

func trimFields(record []string) []string {
	out := make([]string, len(record))
	for i, f := range record {
		out[i] = strings.TrimSpace(f)
	}
	return out
}

func isEmptyRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
