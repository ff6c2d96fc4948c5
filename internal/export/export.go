// Package export renders a project as a standalone document: one formatted
// block per record plus the copy-progress counts. The "doc" format emits the
// same HTML body, which word processors open natively.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/models"
)

// Supported output formats.
const (
	FormatHTML = "html"
	FormatDoc  = "doc"
)

// Generator renders project export documents.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

type exportBlock struct {
	ID     string
	Text   string
	Copied bool
}

type exportData struct {
	Title      string
	Year       int
	Total      int
	Completed  int
	Remaining  int
	Percentage string
	Blocks     []exportBlock
}

var docTemplate = template.Must(template.New("export").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Courier New", monospace; margin: 24px; }
h1 { font-size: 18px; }
.summary { margin-bottom: 16px; font-size: 13px; color: #333; }
.box { border: 1px solid #999; padding: 10px; margin-bottom: 12px; page-break-inside: avoid; }
.box.copied { background: #eef7ee; }
.box .tag { font-size: 11px; color: #666; margin-bottom: 4px; }
pre { margin: 0; white-space: pre-wrap; font-size: 13px; }
</style>
</head>
<body>
<h1>{{.Title}}{{if .Year}} — {{.Year}}{{end}}</h1>
<div class="summary">Total: {{.Total}} | Completed: {{.Completed}} | Remaining: {{.Remaining}} | Progress: {{.Percentage}}%</div>
{{range .Blocks}}<div class="box{{if .Copied}} copied{{end}}">
<div class="tag">#{{.ID}}{{if .Copied}} — copied{{end}}</div>
<pre>{{.Text}}</pre>
</div>
{{end}}</body>
</html>
`))

// Generate renders the project in the requested format and returns the
// document bytes.
func (g *Generator) Generate(p *models.Project, format string) ([]byte, error) {
	switch format {
	case FormatHTML, FormatDoc:
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	summary := p.Summarize()
	data := exportData{
		Title:      p.Name,
		Year:       p.Year,
		Total:      summary.Total,
		Completed:  summary.Completed,
		Remaining:  summary.Remaining,
		Percentage: strconv.FormatFloat(summary.Percentage, 'f', 1, 64),
	}
	for i, rec := range p.Records {
		id := recordID(i, rec)
		data.Blocks = append(data.Blocks, exportBlock{
			ID:     id,
			Text:   BlockText(rec),
			Copied: p.Copied[id],
		})
	}

	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, data); err != nil {
		g.logger.WithError(err).Error("Failed to render export document")
		return nil, fmt.Errorf("failed to render export document: %w", err)
	}

	g.logger.Info("Generated export document",
		logging.Field{Key: "project", Value: p.ID},
		logging.Field{Key: "format", Value: format},
		logging.Field{Key: "blocks", Value: len(data.Blocks)})
	return buf.Bytes(), nil
}

// ContentType returns the MIME type for a supported format.
func ContentType(format string) string {
	if format == FormatDoc {
		return "application/msword"
	}
	return "text/html; charset=utf-8"
}

// BlockText renders one record as display text: the formatted FCR box when
// present, otherwise the PO output columns as "name: value" lines.
func BlockText(rec models.OutputRecord) string {
	if text, ok := rec[models.FieldFormattedText]; ok {
		return text
	}
	var buf bytes.Buffer
	for _, col := range models.POOutputColumns {
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(col)
		buf.WriteString(": ")
		buf.WriteString(rec[col])
	}
	return buf.String()
}

// recordID is the tracking key of a record: its Index field when present,
// else its 1-based position.
func recordID(position int, rec models.OutputRecord) string {
	if id, ok := rec[models.FieldIndex]; ok && id != "" {
		return id
	}
	return strconv.Itoa(position + 1)
}
