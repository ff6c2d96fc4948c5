package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerial(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain integer", "7", "000007"},
		{"Already padded", "000007", "000007"},
		{"Large value", "1234567", "1234567"},
		{"Decimal truncated toward zero", "7.9", "000007"},
		{"With whitespace", " 42 ", "000042"},
		{"Empty", "", ""},
		{"Non-numeric passes through", "ABC-1", "ABC-1"},
		{"Mixed junk passes through", "12x", "12x"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Serial(tc.input))
		})
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ISO", "2024-01-05", "05-01-2024"},
		{"Already display format", "05-01-2024", "05-01-2024"},
		{"Slash european", "05/01/2024", "05-01-2024"},
		{"Dotted", "05.01.2024", "05-01-2024"},
		{"ISO with time", "2024-01-05 10:30:00", "05-01-2024"},
		{"Month name", "5 Jan 2024", "05-01-2024"},
		{"Empty", "", ""},
		{"Whitespace only", "   ", ""},
		{"Garbage passes through", "not a date", "not a date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Date(tc.input))
		})
	}
}

// Reformatting an already-formatted date must be a no-op.
func TestDateIdempotent(t *testing.T) {
	inputs := []string{"2024-01-05", "31-12-2023", "1999/02/28"}
	for _, input := range inputs {
		once := Date(input)
		assert.Equal(t, once, Date(once), "Date should be idempotent for %q", input)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Integer", "5", "5"},
		{"Integer with trailing zero fraction", "2.0", "2"},
		{"Trailing zeros trimmed", "3.50", "3.5"},
		{"Negative", "-1.25", "-1.25"},
		{"Whitespace", " 10 ", "10"},
		{"Empty", "", ""},
		{"Non-numeric passes through", "n/a", "n/a"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Number(tc.input))
		})
	}
}
