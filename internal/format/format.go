// Package format renders normalized rows and aggregated invoices into the
// fixed output templates. The FCR box template is an exact-format requirement:
// line order and literal boilerplate must not drift.
package format

import (
	"strconv"
	"strings"

	"mrahman/fcr-gen/internal/models"
	"mrahman/fcr-gen/internal/normalize"
)

// Variant selects the first line of the FCR box template. The corpus carries
// both renditions, so the choice is explicit configuration rather than a
// silent pick.
type Variant string

const (
	// VariantPorcelain prefixes every box with the fixed tableware literal.
	VariantPorcelain Variant = "porcelain"
	// VariantDescription substitutes the row's free-text Description field.
	VariantDescription Variant = "description"
)

// PorcelainHeaderLine is the fixed first line of the porcelain variant.
const PorcelainHeaderLine = "100% PORCELAIN TABLEWARE"

// HSCodeLine is the fixed harmonized-system code line of every FCR box.
const HSCodeLine = "H. S. CODE: 6911.10.00"

// MaterialLabels maps each material classification to the Description string
// written into PO-mode output records.
type MaterialLabels struct {
	Mixed    string
	Recycled string
	Normal   string
}

// The two label sets present in the corpus; selected via configuration.
var (
	StandardMaterialLabels = MaterialLabels{
		Mixed:    "BOTH RECYCLED & NORMAL MATERIALS USED",
		Recycled: "100% RECYCLED MATERIALS USED",
		Normal:   "NORMAL MATERIALS USED",
	}
	ShortMaterialLabels = MaterialLabels{
		Mixed:    "MIXED",
		Recycled: "RECYCLED",
		Normal:   "NORMAL",
	}
)

// MaterialLabelsByName resolves a configured label set name. Unknown names
// fall back to the standard set.
func MaterialLabelsByName(name string) MaterialLabels {
	if name == "short" {
		return ShortMaterialLabels
	}
	return StandardMaterialLabels
}

// ForType returns the label for a material type, defaulting to the normal
// label when the invoice carries no classification.
func (m MaterialLabels) ForType(materialType string) string {
	switch materialType {
	case models.MaterialTypeMixed:
		return m.Mixed
	case models.MaterialTypeRecycled:
		return m.Recycled
	default:
		return m.Normal
	}
}

// FCRBox builds the 11-line FCR text block for one row.
func FCRBox(row models.Row, variant Variant) string {
	firstLine := PorcelainHeaderLine
	if variant == VariantDescription {
		firstLine = row.Get("Description")
	}

	lines := []string{
		firstLine,
		"ORDER NO. : " + row.Get("PO Numbers"),
		"DESCRIPTION OF GOODS. : " + row.Get("Goods"),
		"INVOICE NO. : " + normalize.Number(row.Get("Invoice No")),
		"DATE: " + normalize.Date(row.Get("Invoice Date")),
		"EXP NO. : " + row.Get("AD Code") + "/" + normalize.Serial(row.Get("EXP Serial")) + "/" + row.Get("EXP Year"),
		"DATE: " + normalize.Date(row.Get("Entry Date")),
		"CONTRACT NO. : " + row.Get("Lc Contact"),
		"DATE: " + normalize.Date(row.Get("Date of Contact")),
		HSCodeLine,
		"COUNTRY: " + row.Get("Country short code"),
	}
	return strings.Join(lines, "\n")
}

// FCRRecord projects one row into an output record with its 1-based index.
func FCRRecord(index int, row models.Row, variant Variant) models.OutputRecord {
	box := models.FCRBoxRecord{
		Index:         index,
		FormattedText: FCRBox(row, variant),
	}
	return models.OutputRecord{
		models.FieldIndex:         strconv.Itoa(box.Index),
		models.FieldFormattedText: box.FormattedText,
	}
}

// PORecord flattens one aggregated invoice into an output record. PO numbers
// and goods are comma-joined in first-seen order with empty values dropped.
func PORecord(invoice *models.InvoiceRecord, labels MaterialLabels) models.OutputRecord {
	return models.OutputRecord{
		models.FieldInvoiceNumber: invoice.InvoiceNumber,
		models.FieldPONumbers:     joinNonEmpty(invoice.PONumbers),
		models.FieldDescription:   labels.ForType(invoice.MaterialType),
		models.FieldGoods:         joinNonEmpty(invoice.GoodsDescriptions),
	}
}

// joinNonEmpty concatenates values with a bare comma, dropping empties first.
func joinNonEmpty(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return strings.Join(kept, ",")
}
