package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"mrahman/fcr-gen/internal/models"

	"github.com/gocarina/gocsv"
)

// poOutputRow maps a PO-mode output record onto the fixed output CSV schema.
type poOutputRow struct {
	InvoiceNumber string `csv:"Invoice Number"`
	PONumbers     string `csv:"PO Numbers"`
	Description   string `csv:"Description"`
	Goods         string `csv:"Goods"`
}

// WritePORecords renders PO-mode output records as CSV bytes with the given
// delimiter, columns in the fixed output order.
func WritePORecords(records []models.OutputRecord, delimiter rune) ([]byte, error) {
	if records == nil {
		return nil, fmt.Errorf("cannot write nil records to CSV")
	}

	rows := make([]poOutputRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, poOutputRow{
			InvoiceNumber: rec[models.FieldInvoiceNumber],
			PONumbers:     rec[models.FieldPONumbers],
			Description:   rec[models.FieldDescription],
			Goods:         rec[models.FieldGoods],
		})
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Comma = delimiter

	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}
	return buf.Bytes(), nil
}
