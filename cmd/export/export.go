// Package export contains the command exporting a stored project as a
// standalone document.
package export

import (
	"os"

	"mrahman/fcr-gen/cmd/root"
	"mrahman/fcr-gen/internal/export"
	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/project"

	"github.com/spf13/cobra"
)

var (
	projectID string
	docFormat string
)

// Cmd is the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored project as an HTML or DOC document",
	Run:   exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) {
	output := root.SharedFlags.Output
	if projectID == "" || output == "" {
		root.Log.Fatal("Project id and output file are required")
	}

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	store, err := project.NewStore(root.Cfg.Data.Directory, logger)
	if err != nil {
		root.Log.Fatalf("Error opening project store: %v", err)
	}

	p, err := store.Get(projectID)
	if err != nil {
		root.Log.Fatalf("Error loading project: %v", err)
	}

	doc, err := export.NewGenerator(logger).Generate(p, docFormat)
	if err != nil {
		root.Log.Fatalf("Error generating document: %v", err)
	}
	if err := os.WriteFile(output, doc, 0644); err != nil {
		root.Log.Fatalf("Error writing output file: %v", err)
	}

	root.Log.Infof("Exported project %s to %s", projectID, output)
}

func init() {
	Cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project identifier (required)")
	Cmd.Flags().StringVarP(&docFormat, "format", "f", export.FormatHTML, "Document format: 'html' or 'doc'")
	_ = Cmd.MarkFlagRequired("project")
}
