// Package serve contains the command running the REST API server.
package serve

import (
	"fmt"

	"mrahman/fcr-gen/cmd/root"
	"mrahman/fcr-gen/internal/api"
	"mrahman/fcr-gen/internal/api/responses"
	"mrahman/fcr-gen/internal/diag"
	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/project"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var port int

// Cmd is the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	Long: `Run the HTTP server exposing CSV processing, project CRUD and tracking,
document export and the log panel.`,
	Run: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	cfg := root.Cfg
	if port == 0 {
		port = cfg.Server.Port
	}

	// Mirror application logs into the sink backing the log panel endpoints.
	appSink := diag.NewSink()
	root.Log.AddHook(diag.NewHook(appSink))
	responses.SetLogger(root.Log)

	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	store, err := project.NewStore(cfg.Data.Directory, logger)
	if err != nil {
		root.Log.Fatalf("Error opening project store: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(api.Deps{
		Logger:          logger,
		Store:           store,
		AppSink:         appSink,
		Defaults:        api.DefaultsFromNames(cfg.Generate.TemplateVariant, cfg.Generate.MaterialLabels),
		OutputDelimiter: cfg.OutputDelimiter(),
	})

	root.Log.Infof("fcr-gen API listening on port %d", port)
	if err := router.Run(fmt.Sprintf(":%d", port)); err != nil {
		root.Log.Fatalf("Server failed: %v", err)
	}
}

func init() {
	Cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from config)")
}
