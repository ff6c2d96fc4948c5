// Package aggregate groups PO-mode rows by invoice number and classifies each
// invoice's material composition against the recycled PO reference set.
package aggregate

import (
	"strings"

	"mrahman/fcr-gen/internal/models"
)

// RecycledPOSet is the set of PO numbers sourced from recycled material.
// Membership is exact string equality after trimming.
type RecycledPOSet map[string]struct{}

// NewRecycledPOSet builds a set from raw PO values, trimming each and
// dropping empties.
func NewRecycledPOSet(values []string) RecycledPOSet {
	set := make(RecycledPOSet, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		set[trimmed] = struct{}{}
	}
	return set
}

// FromDataset builds the set from the "PO" column of a parsed reference file.
func FromDataset(dataset *models.ParsedDataset) RecycledPOSet {
	values := make([]string, 0, len(dataset.Rows))
	for _, row := range dataset.Rows {
		values = append(values, row.Get("PO"))
	}
	return NewRecycledPOSet(values)
}

// Contains reports whether the trimmed PO number is in the set.
func (s RecycledPOSet) Contains(po string) bool {
	_, ok := s[strings.TrimSpace(po)]
	return ok
}

// Invoices scans rows left to right, accumulating PO numbers and goods
// descriptions per invoice in first-seen order, then classifies every invoice.
// Rows with an empty invoice number are ignored. The returned slice preserves
// invoice insertion order; within an invoice, PO and goods order follows row
// order.
func Invoices(rows []models.Row, recycled RecycledPOSet) []*models.InvoiceRecord {
	var ordered []*models.InvoiceRecord
	byNumber := make(map[string]*models.InvoiceRecord)

	for _, row := range rows {
		invoice := strings.TrimSpace(row.Get("Invoice"))
		if invoice == "" {
			continue
		}

		rec, ok := byNumber[invoice]
		if !ok {
			rec = &models.InvoiceRecord{InvoiceNumber: invoice}
			byNumber[invoice] = rec
			ordered = append(ordered, rec)
		}

		rec.PONumbers = append(rec.PONumbers, strings.TrimSpace(row.Get("PO")))
		rec.GoodsDescriptions = append(rec.GoodsDescriptions, strings.TrimSpace(row.Get("Goods")))
	}

	for _, rec := range ordered {
		rec.MaterialType = classify(rec.PONumbers, recycled)
	}
	return ordered
}

// classify derives the material type from the complete PO list of an invoice.
// MIXED needs at least one recycled and one non-empty non-recycled PO;
// RECYCLED needs every present PO in the set; everything else, including an
// empty PO list, is NORMAL.
func classify(poNumbers []string, recycled RecycledPOSet) string {
	hasRecycled := false
	hasNormal := false
	for _, po := range poNumbers {
		if po == "" {
			continue
		}
		if recycled.Contains(po) {
			hasRecycled = true
		} else {
			hasNormal = true
		}
	}

	switch {
	case hasRecycled && hasNormal:
		return models.MaterialTypeMixed
	case hasRecycled:
		return models.MaterialTypeRecycled
	default:
		return models.MaterialTypeNormal
	}
}
