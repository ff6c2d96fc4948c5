package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"mrahman/fcr-gen/internal/api/responses"
	"mrahman/fcr-gen/internal/export"
	"mrahman/fcr-gen/internal/models"
	"mrahman/fcr-gen/internal/project"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves the project CRUD, tracking and export endpoints.
type ProjectHandler struct {
	store     *project.Store
	generator *export.Generator
}

// NewProjectHandler creates a handler over the given store and generator.
func NewProjectHandler(store *project.Store, generator *export.Generator) *ProjectHandler {
	return &ProjectHandler{store: store, generator: generator}
}

type projectPayload struct {
	Name    string                `json:"name"`
	Year    int                   `json:"year"`
	Records []models.OutputRecord `json:"records"`
	Copied  map[string]bool       `json:"copied"`
}

type copiedPayload struct {
	RecordID string `json:"recordId" binding:"required"`
	Copied   bool   `json:"copied"`
}

// HandleCreate stores a new project.
func (h *ProjectHandler) HandleCreate(c *gin.Context) {
	var payload projectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid project payload", err.Error())
		return
	}
	if payload.Name == "" {
		responses.Error(c, http.StatusBadRequest, "Project name is required")
		return
	}

	p, err := h.store.Create(payload.Name, payload.Year, payload.Records)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to create project", err.Error())
		return
	}
	responses.Created(c, p, "Project created")
}

// HandleList lists projects; ?archived=true includes archived ones.
func (h *ProjectHandler) HandleList(c *gin.Context) {
	includeArchived := c.Query("archived") == "true"
	projects, err := h.store.List(includeArchived)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Failed to list projects", err.Error())
		return
	}
	responses.Success(c, projects, fmt.Sprintf("%d projects", len(projects)))
}

// HandleGet returns one project.
func (h *ProjectHandler) HandleGet(c *gin.Context) {
	p, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.storeError(c, err, "Failed to load project")
		return
	}
	responses.Success(c, p, "")
}

// HandleUpdate replaces a project's mutable fields.
func (h *ProjectHandler) HandleUpdate(c *gin.Context) {
	var payload projectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid project payload", err.Error())
		return
	}

	p, err := h.store.Update(c.Param("id"), payload.Name, payload.Year, payload.Records, payload.Copied)
	if err != nil {
		h.storeError(c, err, "Failed to update project")
		return
	}
	responses.Success(c, p, "Project updated")
}

// HandleSetCopied flips the copy flag of one record.
func (h *ProjectHandler) HandleSetCopied(c *gin.Context) {
	var payload copiedPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid tracking payload", err.Error())
		return
	}

	p, err := h.store.SetCopied(c.Param("id"), payload.RecordID, payload.Copied)
	if err != nil {
		h.storeError(c, err, "Failed to update tracking")
		return
	}
	responses.Success(c, p.Summarize(), "Tracking updated")
}

// HandleArchive marks a project archived.
func (h *ProjectHandler) HandleArchive(c *gin.Context) {
	p, err := h.store.Archive(c.Param("id"))
	if err != nil {
		h.storeError(c, err, "Failed to archive project")
		return
	}
	responses.Success(c, p, "Project archived")
}

// HandleDelete removes a project.
func (h *ProjectHandler) HandleDelete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		h.storeError(c, err, "Failed to delete project")
		return
	}
	responses.Success(c, nil, "Project deleted")
}

// HandleTracking returns the copy-progress summary.
func (h *ProjectHandler) HandleTracking(c *gin.Context) {
	summary, err := h.store.Tracking(c.Param("id"))
	if err != nil {
		h.storeError(c, err, "Failed to load tracking")
		return
	}
	responses.Success(c, summary, "")
}

// HandleExport downloads the project as an HTML or DOC document
// (?format=html|doc, default html).
func (h *ProjectHandler) HandleExport(c *gin.Context) {
	p, err := h.store.Get(c.Param("id"))
	if err != nil {
		h.storeError(c, err, "Failed to load project")
		return
	}

	docFormat := c.DefaultQuery("format", export.FormatHTML)
	doc, err := h.generator.Generate(p, docFormat)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Failed to export project", err.Error())
		return
	}

	fileName := fmt.Sprintf("%s_%s.%s", p.Name, time.Now().Format("20060102"), docFormat)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, export.ContentType(docFormat), doc)
}

func (h *ProjectHandler) storeError(c *gin.Context, err error, message string) {
	if errors.Is(err, project.ErrNotFound) {
		responses.Error(c, http.StatusNotFound, "Project not found")
		return
	}
	responses.Error(c, http.StatusInternalServerError, message, err.Error())
}
