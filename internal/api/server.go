// Package api wires the REST surface: process uploads, project CRUD and
// tracking, export downloads and the log panel.
package api

import (
	"net/http"

	"mrahman/fcr-gen/internal/api/handlers"
	"mrahman/fcr-gen/internal/api/responses"
	"mrahman/fcr-gen/internal/diag"
	"mrahman/fcr-gen/internal/export"
	"mrahman/fcr-gen/internal/format"
	"mrahman/fcr-gen/internal/logging"
	"mrahman/fcr-gen/internal/pipeline"
	"mrahman/fcr-gen/internal/project"

	"github.com/gin-gonic/gin"
)

// Deps holds the collaborators of the router.
type Deps struct {
	Logger          logging.Logger
	Store           *project.Store
	AppSink         *diag.Sink
	Defaults        pipeline.Options
	OutputDelimiter rune
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(deps Deps) *gin.Engine {
	processHandler := handlers.NewProcessHandler(deps.Logger, deps.Defaults, deps.OutputDelimiter)
	projectHandler := handlers.NewProjectHandler(deps.Store, export.NewGenerator(deps.Logger))

	router := gin.New()
	router.Use(gin.Recovery())

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/process/fcr", processHandler.HandleFCR)
		apiV1.POST("/process/po", processHandler.HandlePO)

		apiV1.POST("/projects", projectHandler.HandleCreate)
		apiV1.GET("/projects", projectHandler.HandleList)
		apiV1.GET("/projects/:id", projectHandler.HandleGet)
		apiV1.PUT("/projects/:id", projectHandler.HandleUpdate)
		apiV1.POST("/projects/:id/archive", projectHandler.HandleArchive)
		apiV1.DELETE("/projects/:id", projectHandler.HandleDelete)
		apiV1.GET("/projects/:id/tracking", projectHandler.HandleTracking)
		apiV1.POST("/projects/:id/tracking", projectHandler.HandleSetCopied)
		apiV1.GET("/projects/:id/export", projectHandler.HandleExport)

		apiV1.GET("/logs", func(c *gin.Context) {
			responses.Success(c, deps.AppSink.Events(), "")
		})
		apiV1.DELETE("/logs", func(c *gin.Context) {
			deps.AppSink.Clear()
			responses.Success(c, nil, "Logs cleared")
		})
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "fcr-gen"})
	})

	return router
}

// DefaultsFromNames resolves configured variant and label set names into
// pipeline options.
func DefaultsFromNames(variant, labels string) pipeline.Options {
	return pipeline.Options{
		Variant: format.Variant(variant),
		Labels:  format.MaterialLabelsByName(labels),
	}
}
