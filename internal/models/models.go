// Package models defines the shared data types flowing through the processing
// pipeline: parsed CSV datasets, invoice accumulators, FCR box records and the
// flat output records handed to storage and export.
package models

// Row maps a column name to its raw string value for one CSV line. Column
// order is irrelevant; row order is the file's original order and is preserved
// end to end.
type Row map[string]string

// Get returns the value for a column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// ParsedDataset is the result of parsing one CSV input.
type ParsedDataset struct {
	Rows              []Row
	HeaderFields      []string
	DetectedDelimiter string
}

// Material composition classifications for an invoice.
const (
	MaterialTypeMixed    = "MIXED"
	MaterialTypeRecycled = "RECYCLED"
	MaterialTypeNormal   = "NORMAL"
)

// InvoiceRecord accumulates the PO numbers and goods descriptions seen for one
// invoice while scanning rows in order. MaterialType is assigned only after
// the full scan, since classification depends on the complete PO list.
type InvoiceRecord struct {
	InvoiceNumber     string
	PONumbers         []string
	GoodsDescriptions []string
	MaterialType      string
}

// FCRBoxRecord is the per-row projection produced in FCR mode: a 1-based index
// plus the fixed-template text block.
type FCRBoxRecord struct {
	Index         int
	FormattedText string
}

// OutputRecord is the flat column-name → value mapping every processed record
// is exposed as, ready for tabular export or storage. Field names must survive
// the persistence boundary exactly.
type OutputRecord map[string]string

// Output record field names.
const (
	FieldIndex         = "Index"
	FieldFormattedText = "Formatted Text"
	FieldInvoiceNumber = "Invoice Number"
	FieldPONumbers     = "PO Numbers"
	FieldDescription   = "Description"
	FieldGoods         = "Goods"
)

// Input column names, exact spelling, case-sensitive.
var (
	// POColumns is the strict 3-column schema of the PO workflow.
	POColumns = []string{"Invoice", "PO", "Goods"}

	// RecycledColumns is the strict 1-column schema of the recycled PO
	// reference file.
	RecycledColumns = []string{"PO"}

	// FCRColumns is the 12-column list the FCR upload must contain; extra
	// columns are tolerated.
	FCRColumns = []string{
		"EXP Serial",
		"Invoice Date",
		"Entry Date",
		"Date of Contact",
		"Description",
		"PO Numbers",
		"Invoice No",
		"AD Code",
		"EXP Year",
		"Lc Contact",
		"Country short code",
		"Goods",
	}

	// POOutputColumns is the column order of the PO-mode output CSV.
	POOutputColumns = []string{FieldInvoiceNumber, FieldPONumbers, FieldDescription, FieldGoods}
)
