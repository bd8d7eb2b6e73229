package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "failed to load settings")
		return
	}
	if settings == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "settings": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "settings": settings})
}

func (h *Handler) upsertSettings(c *gin.Context) {
	var req domain.CompanySettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "name is required"})
		return
	}

	if _, err := h.settings.Upsert(c.Request.Context(), req); err != nil {
		respondStoreError(c, err, "failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
