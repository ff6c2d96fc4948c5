// Package pipeline is the single configurable processing engine behind both
// workflows: FCR box generation and PO invoice aggregation. One Process call
// recomputes everything from its input bytes; nothing is shared across runs.
package pipeline

import (
	"fmt"

	"mrahman/fcr-gen/internal/aggregate"
	"mrahman/fcr-gen/internal/csvio"
	"mrahman/fcr-gen/internal/diag"
	"mrahman/fcr-gen/internal/format"
	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/models"
	"mrahman/fcr-gen/internal/schema"
)

// Options configures the mode-specific template choices.
type Options struct {
	Variant format.Variant
	Labels  format.MaterialLabels
}

// DefaultOptions returns the porcelain-header variant with the standard
// material label set.
func DefaultOptions() Options {
	return Options{
		Variant: format.VariantPorcelain,
		Labels:  format.StandardMaterialLabels,
	}
}

// Context carries the collaborators of one processing run. Results and
// diagnostics are derived entirely from the inputs of a single call.
type Context struct {
	logger logging.Logger
	sink   *diag.Sink
	opts   Options
}

// New creates a processing context. A nil logger falls back to a default
// adapter; the sink may be nil when no diagnostics consumer exists.
func New(logger logging.Logger, sink *diag.Sink, opts Options) *Context {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Context{logger: logger, sink: sink, opts: opts}
}

// Sink exposes the diagnostics sink of this context.
func (c *Context) Sink() *diag.Sink {
	return c.sink
}

// ProcessFCR runs the FCR workflow: parse, superset header check, then one
// formatted box record per row in original order.
func (c *Context) ProcessFCR(raw []byte) ([]models.OutputRecord, error) {
	dataset, err := csvio.Parse(raw, c.logger, c.sink)
	if err != nil {
		c.fail("FCR upload could not be parsed", err)
		return nil, fmt.Errorf("processing FCR file: %w", err)
	}

	if err := schema.ValidateSuperset(dataset.HeaderFields, models.FCRColumns); err != nil {
		c.fail("FCR upload rejected", err)
		return nil, fmt.Errorf("processing FCR file: %w", err)
	}

	records := make([]models.OutputRecord, 0, len(dataset.Rows))
	for i, row := range dataset.Rows {
		records = append(records, format.FCRRecord(i+1, row, c.opts.Variant))
	}

	c.info(fmt.Sprintf("Generated %d FCR boxes", len(records)))
	c.logger.Info("FCR processing complete",
		logging.Field{Key: "records", Value: len(records)},
		logging.Field{Key: "delimiter", Value: dataset.DetectedDelimiter})
	return records, nil
}

// ProcessPO runs the PO workflow: parse both uploads, strict header checks,
// build the recycled reference set, aggregate by invoice, then one flat record
// per invoice in first-seen order.
func (c *Context) ProcessPO(poRaw, recycledRaw []byte) ([]models.OutputRecord, error) {
	poData, err := csvio.Parse(poRaw, c.logger, c.sink)
	if err != nil {
		c.fail("PO upload could not be parsed", err)
		return nil, fmt.Errorf("processing PO file: %w", err)
	}
	if err := schema.ValidateExact(poData.HeaderFields, models.POColumns); err != nil {
		c.fail("PO upload rejected", err)
		return nil, fmt.Errorf("processing PO file: %w", err)
	}

	recycled, err := c.loadRecycledSet(recycledRaw)
	if err != nil {
		return nil, err
	}

	invoices := aggregate.Invoices(poData.Rows, recycled)
	records := make([]models.OutputRecord, 0, len(invoices))
	for _, invoice := range invoices {
		records = append(records, format.PORecord(invoice, c.opts.Labels))
	}

	c.info(fmt.Sprintf("Aggregated %d invoices from %d rows", len(records), len(poData.Rows)))
	c.logger.Info("PO processing complete",
		logging.Field{Key: "invoices", Value: len(records)},
		logging.Field{Key: "rows", Value: len(poData.Rows)},
		logging.Field{Key: "recycled_pos", Value: len(recycled)})
	return records, nil
}

// loadRecycledSet parses and validates the 1-column reference upload.
func (c *Context) loadRecycledSet(raw []byte) (aggregate.RecycledPOSet, error) {
	dataset, err := csvio.Parse(raw, c.logger, c.sink)
	if err != nil {
		c.fail("Recycled PO reference could not be parsed", err)
		return nil, fmt.Errorf("processing recycled PO file: %w", err)
	}
	if err := schema.ValidateExact(dataset.HeaderFields, models.RecycledColumns); err != nil {
		c.fail("Recycled PO reference rejected", err)
		return nil, fmt.Errorf("processing recycled PO file: %w", err)
	}
	return aggregate.FromDataset(dataset), nil
}

func (c *Context) info(msg string) {
	c.sink.Log(msg, diag.SeverityInfo)
}

func (c *Context) fail(msg string, err error) {
	c.sink.Log(fmt.Sprintf("%s: %v", msg, err), diag.SeverityError)
	c.logger.WithError(err).Error(msg)
}
