package csvio

import (
	"testing"

	"mrahman/fcr-gen/internal/diag"
	"mrahman/fcr-gen/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected rune
	}{
		{"Comma", "a,b,c\n1,2,3\n4,5,6\n", ','},
		{"Semicolon", "a;b;c\n1;2;3\n4;5;6\n", ';'},
		{"Tab", "a\tb\tc\n1\t2\t3\n", '\t'},
		{"Pipe", "a|b|c\n1|2|3\n", '|'},
		{"Semicolon beats comma inside quotes", "a;b\n\"1,5\";2\n\"3,5\";4\n", ';'},
		{"Single column falls back to comma", "header\nvalue\n", ','},
		{"Empty input falls back to comma", "", ','},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectDelimiter([]byte(tc.input)))
		})
	}
}

func TestParse(t *testing.T) {
	logger := logging.NewMockLogger()
	sink := diag.NewSink()

	data := []byte("Invoice, PO ,Goods\nINV-1,P1,Plates\nINV-2,P2,Bowls\n")
	dataset, err := Parse(data, logger, sink)
	require.NoError(t, err)

	assert.Equal(t, []string{"Invoice", "PO", "Goods"}, dataset.HeaderFields)
	assert.Equal(t, ",", dataset.DetectedDelimiter)
	require.Len(t, dataset.Rows, 2)
	assert.Equal(t, "INV-1", dataset.Rows[0].Get("Invoice"))
	assert.Equal(t, "Bowls", dataset.Rows[1].Get("Goods"))
	assert.Zero(t, sink.Len())
}

func TestParseSemicolonDelimited(t *testing.T) {
	data := []byte("Invoice;PO;Goods\nINV-1;P1;Plates\n")
	dataset, err := Parse(data, logging.NewMockLogger(), diag.NewSink())
	require.NoError(t, err)

	assert.Equal(t, ";", dataset.DetectedDelimiter)
	assert.Equal(t, "P1", dataset.Rows[0].Get("PO"))
}

func TestParseSkipsEmptyLines(t *testing.T) {
	data := []byte("Invoice,PO,Goods\n\nINV-1,P1,Plates\n,,\nINV-2,P2,Bowls\n")
	dataset, err := Parse(data, logging.NewMockLogger(), diag.NewSink())
	require.NoError(t, err)
	assert.Len(t, dataset.Rows, 2)
}

func TestParseRaggedRows(t *testing.T) {
	sink := diag.NewSink()
	data := []byte("Invoice,PO,Goods\nINV-1,P1\nINV-2,P2,Bowls,extra\n")
	dataset, err := Parse(data, logging.NewMockLogger(), sink)
	require.NoError(t, err)
	require.Len(t, dataset.Rows, 2)

	// Short row padded with empties, long row truncated to the header width.
	assert.Equal(t, "", dataset.Rows[0].Get("Goods"))
	assert.Equal(t, "Bowls", dataset.Rows[1].Get("Goods"))
	assert.Len(t, dataset.Rows[1], 3)

	events := sink.Events()
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, diag.SeverityWarning, e.Severity)
	}
}

func TestParseFatalOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"Empty input", "", ReasonNoHeaders},
		{"Whitespace only", "\n\n  \n", ReasonNoHeaders},
		{"Header without data rows", "Invoice,PO,Goods\n", ReasonEmptyFile},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dataset, err := Parse([]byte(tc.input), logging.NewMockLogger(), diag.NewSink())
			assert.Nil(t, dataset)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.reason, parseErr.Reason)
		})
	}
}

func TestParseQuotedFields(t *testing.T) {
	data := []byte("Invoice,PO,Goods\nINV-1,P1,\"Plates, large\"\n")
	dataset, err := Parse(data, logging.NewMockLogger(), diag.NewSink())
	require.NoError(t, err)
	assert.Equal(t, "Plates, large", dataset.Rows[0].Get("Goods"))
}
