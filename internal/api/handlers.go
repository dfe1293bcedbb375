package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"scaffold_ai_server/internal/project"
	"scaffold_ai_server/internal/session"
	"scaffold_ai_server/internal/types"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	store  *session.Store
	merger *project.Merger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(store *session.Store, merger *project.Merger) *APIHandler {
	return &APIHandler{
		store:  store,
		merger: merger,
	}
}

// --- Structs for API Requests ---

type SelectRequest struct {
	ProjectType types.ProjectType `json:"projectType" binding:"required"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// --- API Handlers ---

// POST /session
func (h *APIHandler) CreateSession(c *gin.Context) {
	snap := h.store.Create()
	log.Printf("Created session %s", snap.ID)
	c.JSON(http.StatusCreated, snap)
}

// GET /session/:id
func (h *APIHandler) GetSession(c *gin.Context) {
	snap, err := h.store.Snapshot(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// POST /session/:id/select
func (h *APIHandler) SelectProject(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if !req.ProjectType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown project type %q", req.ProjectType)})
		return
	}

	snap, err := h.store.SelectProject(c.Param("id"), req.ProjectType)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	log.Printf("Session %s selected project type %s", snap.ID, req.ProjectType)
	c.JSON(http.StatusOK, snap)
}

// POST /session/:id/theme
//
// Kicks off content generation in the background; the client polls
// GET /session/:id for progress. Once generation starts it runs to
// completion or failure; there is no cancellation.
func (h *APIHandler) SubmitTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	theme := strings.TrimSpace(req.Theme)
	if theme == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Theme must not be empty"})
		return
	}

	id := c.Param("id")
	if err := h.store.BeginGeneration(id, theme); err != nil {
		respondStoreError(c, err)
		return
	}

	go h.runGeneration(id, theme)

	snap, err := h.store.Snapshot(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, snap)
}

// runGeneration drives the merge for one session. Deliberately detached from
// the request context: navigating away abandons the result but does not
// cancel the in-flight batch.
func (h *APIHandler) runGeneration(id, theme string) {
	result, err := h.merger.Merge(context.Background(), theme)
	if err != nil {
		log.Printf("Content generation failed for session %s: %v", id, err)
		if failErr := h.store.FailGeneration(id, "Não foi possível gerar os produtos. Tente novamente."); failErr != nil {
			log.Printf("WARN: could not record generation failure for session %s: %v", id, failErr)
		}
		return
	}

	if err := h.store.CompleteGeneration(id, result.Files, result.LifecyclePrefix); err != nil {
		log.Printf("WARN: could not complete generation for session %s: %v", id, err)
	}
}

// GET /session/:id/tree
func (h *APIHandler) GetTree(c *gin.Context) {
	files, _, err := h.store.Files(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tree": project.BuildTree(files)})
}

// GET /session/:id/download
func (h *APIHandler) Download(c *gin.Context) {
	id := c.Param("id")
	files, slug, err := h.store.Files(id)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	data, err := project.BuildArchive(files)
	if err != nil {
		// The session stays Ready: the tree view is still usable and the
		// download can be retried.
		log.Printf("Archive generation failed for session %s: %v", id, err)
		if notifyErr := h.store.Notify(id, "Falha ao gerar o arquivo do projeto."); notifyErr != nil {
			log.Printf("WARN: could not set notice for session %s: %v", id, notifyErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate project archive"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.zip", slug))
	c.Data(http.StatusOK, "application/zip", data)
}

// POST /session/:id/notice/dismiss
func (h *APIHandler) DismissNotice(c *gin.Context) {
	if err := h.store.DismissNotice(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /session/:id/reset
func (h *APIHandler) ResetSession(c *gin.Context) {
	snap, err := h.store.Reset(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	log.Printf("Session %s reset", snap.ID)
	c.JSON(http.StatusOK, snap)
}

// respondStoreError maps session store errors onto HTTP statuses.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, session.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
