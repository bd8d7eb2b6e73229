package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

type projectReq struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	LaunchDate *string  `json:"launchDate"`
	ImageURLs  []string `json:"imageUrls"`
}

func (r *projectReq) validate() string {
	if strings.TrimSpace(r.Name) == "" {
		return "name is required"
	}
	if strings.TrimSpace(r.Location) == "" {
		return "location is required"
	}
	if r.LaunchDate == nil || strings.TrimSpace(*r.LaunchDate) == "" {
		return "launchDate is required"
	}
	return ""
}

// listProjects returns the full aggregate. A store failure is logged
// and answered with an empty list, not an error.
func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.projects.GetAll(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to load projects")
		c.JSON(http.StatusOK, gin.H{"ok": true, "projects": []domain.Project{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) createProject(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
		return
	}

	id, err := h.projects.Create(c.Request.Context(), strings.TrimSpace(req.Name), strings.TrimSpace(req.Location), req.LaunchDate, req.ImageURLs)
	if err != nil {
		respondStoreError(c, err, "failed to create project")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateProject(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
		return
	}

	ok, err := h.projects.Update(c.Request.Context(), c.Param("id"), strings.TrimSpace(req.Name), strings.TrimSpace(req.Location), req.LaunchDate, req.ImageURLs)
	if err != nil {
		respondStoreError(c, err, "failed to update project")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	if h.insights != nil {
		h.insights.InvalidateProject(c.Request.Context(), c.Param("id"))
		if fresh, err := h.findProject(c.Request.Context(), c.Param("id")); err == nil {
			h.insights.PrefetchProject(*fresh)
		}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deleteProject(c *gin.Context) {
	ok, err := h.projects.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "failed to delete project")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	if h.insights != nil {
		h.insights.InvalidateProject(c.Request.Context(), c.Param("id"))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// respondStoreError maps access-layer failures onto the API contract:
// missing credentials surface as 503, everything else as 500. The store
// error itself is logged, never echoed raw to callers of the write path.
func respondStoreError(c *gin.Context, err error, msg string) {
	if errors.Is(err, domain.ErrStorageDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage not configured"})
		return
	}
	logrus.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": msg})
}
