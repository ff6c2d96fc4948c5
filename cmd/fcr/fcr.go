// Package fcr contains the command converting an FCR CSV upload into
// formatted box records.
package fcr

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"mrahman/fcr-gen/cmd/root"
	"mrahman/fcr-gen/internal/diag"
	"mrahman/fcr-gen/internal/format"
	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/models"
	"mrahman/fcr-gen/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	variant    string
	outputKind string
)

// Cmd is the fcr command
var Cmd = &cobra.Command{
	Use:   "fcr",
	Short: "Convert an FCR CSV file to formatted box records",
	Long: `Convert an FCR CSV file (12-column schema, extra columns tolerated) into
fixed-template text blocks, one per row.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatal("Input file is required")
	}

	data, err := os.ReadFile(input) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	if variant == "" {
		variant = root.Cfg.Generate.TemplateVariant
	}

	sink := diag.NewSink()
	ctx := pipeline.New(logging.NewLogrusAdapterFromLogger(root.Log), sink, pipeline.Options{
		Variant: format.Variant(variant),
		Labels:  format.MaterialLabelsByName(root.Cfg.Generate.MaterialLabels),
	})

	records, err := ctx.ProcessFCR(data)
	if err != nil {
		root.Log.Fatalf("Error processing FCR file: %v", err)
	}

	var out []byte
	switch outputKind {
	case "json":
		out, err = json.MarshalIndent(records, "", "  ")
		if err != nil {
			root.Log.Fatalf("Error rendering JSON output: %v", err)
		}
	case "text":
		var blocks []string
		for _, rec := range records {
			blocks = append(blocks, fmt.Sprintf("#%s\n%s", rec[models.FieldIndex], rec[models.FieldFormattedText]))
		}
		out = []byte(strings.Join(blocks, "\n\n") + "\n")
	default:
		root.Log.Fatalf("Unsupported output format: %s (must be 'text' or 'json')", outputKind)
	}

	if root.SharedFlags.Output == "" {
		fmt.Print(string(out))
	} else if err := os.WriteFile(root.SharedFlags.Output, out, 0644); err != nil {
		root.Log.Fatalf("Error writing output file: %v", err)
	}

	root.Log.Infof("Generated %d FCR boxes", len(records))
}

func init() {
	Cmd.Flags().StringVar(&variant, "variant", "", "Template variant: 'porcelain' or 'description' (default from config)")
	Cmd.Flags().StringVar(&outputKind, "format", "text", "Output format: 'text' or 'json'")
}
