// Package po contains the command aggregating PO rows by invoice against the
// recycled PO reference file.
package po

import (
	"fmt"
	"os"

	"mrahman/fcr-gen/cmd/root"
	"mrahman/fcr-gen/internal/csvio"
	"mrahman/fcr-gen/internal/diag"
	"mrahman/fcr-gen/internal/format"
	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/pipeline"

	"github.com/spf13/cobra"
)

var recycledFile string

// Cmd is the po command
var Cmd = &cobra.Command{
	Use:   "po",
	Short: "Aggregate a PO CSV into per-invoice records",
	Long: `Aggregate a PO CSV file (Invoice, PO, Goods) into one record per invoice,
classifying each invoice's material composition against a recycled PO
reference file, and write the result as CSV.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" || recycledFile == "" || output == "" {
		root.Log.Fatal("Input file, recycled reference file and output file are required")
	}

	poData, err := os.ReadFile(input) // #nosec G304 -- CLI tool takes user-provided paths
	if err != nil {
		root.Log.Fatalf("Error reading PO file: %v", err)
	}
	recycledData, err := os.ReadFile(recycledFile) // #nosec G304
	if err != nil {
		root.Log.Fatalf("Error reading recycled PO file: %v", err)
	}

	sink := diag.NewSink()
	ctx := pipeline.New(logging.NewLogrusAdapterFromLogger(root.Log), sink, pipeline.Options{
		Variant: format.Variant(root.Cfg.Generate.TemplateVariant),
		Labels:  format.MaterialLabelsByName(root.Cfg.Generate.MaterialLabels),
	})

	records, err := ctx.ProcessPO(poData, recycledData)
	if err != nil {
		root.Log.Fatalf("Error processing PO files: %v", err)
	}

	out, err := csvio.WritePORecords(records, root.Cfg.OutputDelimiter())
	if err != nil {
		root.Log.Fatalf("Error writing output CSV: %v", err)
	}
	if err := os.WriteFile(output, out, 0644); err != nil {
		root.Log.Fatalf("Error writing output file: %v", err)
	}

	for _, event := range sink.Events() {
		if event.Severity == diag.SeverityWarning {
			root.Log.Warn(event.Message)
		}
	}
	root.Log.Info(fmt.Sprintf("Wrote %d invoice records to %s", len(records), output))
}

func init() {
	Cmd.Flags().StringVarP(&recycledFile, "recycled", "r", "", "Recycled PO reference CSV (required)")
	_ = Cmd.MarkFlagRequired("recycled")
}
