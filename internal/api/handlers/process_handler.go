package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"mrahman/fcr-gen/internal/api/responses"
	"mrahman/fcr-gen/internal/csvio"
	"mrahman/fcr-gen/internal/diag"
	"mrahman/fcr-gen/internal/format"
	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/pipeline"

	"github.com/gin-gonic/gin"
)

// ProcessHandler serves the CSV upload endpoints. Each request gets its own
// pipeline context and diagnostics sink; the events are returned alongside the
// records so the front end can show them.
type ProcessHandler struct {
	logger          logging.Logger
	defaults        pipeline.Options
	outputDelimiter rune
}

// NewProcessHandler creates a handler with the configured defaults.
func NewProcessHandler(logger logging.Logger, defaults pipeline.Options, outputDelimiter rune) *ProcessHandler {
	return &ProcessHandler{
		logger:          logger,
		defaults:        defaults,
		outputDelimiter: outputDelimiter,
	}
}

// options resolves per-request overrides of the template variant and material
// label set.
func (h *ProcessHandler) options(c *gin.Context) pipeline.Options {
	opts := h.defaults
	if v := c.PostForm("variant"); v != "" {
		opts.Variant = format.Variant(v)
	}
	if l := c.PostForm("materialLabels"); l != "" {
		opts.Labels = format.MaterialLabelsByName(l)
	}
	return opts
}

func readUpload(file multipart.File) ([]byte, error) {
	defer func() {
		_ = file.Close()
	}()
	return io.ReadAll(file)
}

func formFileBytes(c *gin.Context, field string) ([]byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing upload %q: %w", field, err)
	}
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open upload %q: %w", field, err)
	}
	return readUpload(file)
}

// HandleFCR processes an FCR CSV upload into formatted box records.
func (h *ProcessHandler) HandleFCR(c *gin.Context) {
	data, err := formFileBytes(c, "file")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "FCR CSV upload not found or unreadable", err.Error())
		return
	}

	sink := diag.NewSink()
	ctx := pipeline.New(h.logger, sink, h.options(c))
	records, err := ctx.ProcessFCR(data)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Failed to process FCR file", err.Error())
		return
	}

	responses.Success(c, gin.H{
		"records": records,
		"logs":    sink.Events(),
	}, fmt.Sprintf("Generated %d records", len(records)))
}

// HandlePO processes a PO CSV plus the recycled PO reference CSV into
// aggregated invoice records. With ?output=csv the response is the output CSV
// as an attachment.
func (h *ProcessHandler) HandlePO(c *gin.Context) {
	poData, err := formFileBytes(c, "poFile")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "PO CSV upload not found or unreadable", err.Error())
		return
	}
	recycledData, err := formFileBytes(c, "recycledFile")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Recycled PO CSV upload not found or unreadable", err.Error())
		return
	}

	sink := diag.NewSink()
	ctx := pipeline.New(h.logger, sink, h.options(c))
	records, err := ctx.ProcessPO(poData, recycledData)
	if err != nil {
		responses.Error(c, http.StatusUnprocessableEntity, "Failed to process PO files", err.Error())
		return
	}

	if c.Query("output") == "csv" {
		out, err := csvio.WritePORecords(records, h.outputDelimiter)
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, "Failed to render output CSV", err.Error())
			return
		}
		fileName := fmt.Sprintf("POResult_%s.csv", time.Now().Format("20060102_150405"))
		c.Header("Content-Disposition", "attachment; filename="+fileName)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
		return
	}

	responses.Success(c, gin.H{
		"records": records,
		"logs":    sink.Events(),
	}, fmt.Sprintf("Aggregated %d invoices", len(records)))
}
