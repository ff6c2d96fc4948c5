package format

import (
	"strings"
	"testing"

	"mrahman/fcr-gen/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fcrRow() models.Row {
	return models.Row{
		"PO Numbers":         "4500012345",
		"Description":        "DINNER SET 24 PCS",
		"Goods":              "PORCELAIN PLATES",
		"Invoice No":         "123.40",
		"Invoice Date":       "2024-01-05",
		"AD Code":            "135",
		"EXP Serial":         "7",
		"EXP Year":           "2024",
		"Lc Contact":         "LC-889",
		"Date of Contact":    "2023-12-31",
		"Entry Date":         "06/01/2024",
		"Country short code": "DE",
	}
}

func TestFCRBoxPorcelainVariant(t *testing.T) {
	box := FCRBox(fcrRow(), VariantPorcelain)
	lines := strings.Split(box, "\n")
	require.Len(t, lines, 11)

	expected := []string{
		"100% PORCELAIN TABLEWARE",
		"ORDER NO. : 4500012345",
		"DESCRIPTION OF GOODS. : PORCELAIN PLATES",
		"INVOICE NO. : 123.4",
		"DATE: 05-01-2024",
		"EXP NO. : 135/000007/2024",
		"DATE: 06-01-2024",
		"CONTRACT NO. : LC-889",
		"DATE: 31-12-2023",
		"H. S. CODE: 6911.10.00",
		"COUNTRY: DE",
	}
	assert.Equal(t, expected, lines)
}

func TestFCRBoxDescriptionVariant(t *testing.T) {
	box := FCRBox(fcrRow(), VariantDescription)
	lines := strings.Split(box, "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "DINNER SET 24 PCS", lines[0])
	// The remaining lines match the porcelain variant.
	assert.Equal(t, strings.Split(FCRBox(fcrRow(), VariantPorcelain), "\n")[1:], lines[1:])
}

func TestFCRBoxPassThroughOnBadFields(t *testing.T) {
	row := fcrRow()
	row["Invoice Date"] = "not a date"
	row["EXP Serial"] = "A7"
	row["Invoice No"] = "INV/44"

	lines := strings.Split(FCRBox(row, VariantPorcelain), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "INVOICE NO. : INV/44", lines[3])
	assert.Equal(t, "DATE: not a date", lines[4])
	assert.Equal(t, "EXP NO. : 135/A7/2024", lines[5])
}

func TestFCRRecord(t *testing.T) {
	rec := FCRRecord(3, fcrRow(), VariantPorcelain)
	assert.Equal(t, "3", rec[models.FieldIndex])
	assert.Equal(t, FCRBox(fcrRow(), VariantPorcelain), rec[models.FieldFormattedText])
}

func TestPORecord(t *testing.T) {
	invoice := &models.InvoiceRecord{
		InvoiceNumber:     "INV-9",
		PONumbers:         []string{"P1", "", "P2"},
		GoodsDescriptions: []string{"Plates", "Bowls", ""},
		MaterialType:      models.MaterialTypeMixed,
	}

	rec := PORecord(invoice, StandardMaterialLabels)
	assert.Equal(t, "INV-9", rec[models.FieldInvoiceNumber])
	assert.Equal(t, "P1,P2", rec[models.FieldPONumbers])
	assert.Equal(t, "BOTH RECYCLED & NORMAL MATERIALS USED", rec[models.FieldDescription])
	assert.Equal(t, "Plates,Bowls", rec[models.FieldGoods])
}

func TestMaterialLabels(t *testing.T) {
	tests := []struct {
		name         string
		labels       MaterialLabels
		materialType string
		expected     string
	}{
		{"Standard mixed", StandardMaterialLabels, models.MaterialTypeMixed, "BOTH RECYCLED & NORMAL MATERIALS USED"},
		{"Standard recycled", StandardMaterialLabels, models.MaterialTypeRecycled, "100% RECYCLED MATERIALS USED"},
		{"Standard normal", StandardMaterialLabels, models.MaterialTypeNormal, "NORMAL MATERIALS USED"},
		{"Unclassified defaults to normal", StandardMaterialLabels, "", "NORMAL MATERIALS USED"},
		{"Short mixed", ShortMaterialLabels, models.MaterialTypeMixed, "MIXED"},
		{"Short recycled", ShortMaterialLabels, models.MaterialTypeRecycled, "RECYCLED"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.labels.ForType(tc.materialType))
		})
	}
}

func TestMaterialLabelsByName(t *testing.T) {
	assert.Equal(t, ShortMaterialLabels, MaterialLabelsByName("short"))
	assert.Equal(t, StandardMaterialLabels, MaterialLabelsByName("standard"))
	assert.Equal(t, StandardMaterialLabels, MaterialLabelsByName(""))
}
