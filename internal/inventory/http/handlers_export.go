package http

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estatenexus/estate-backend/internal/export"
	"github.com/estatenexus/estate-backend/internal/inventory/domain"
	"github.com/estatenexus/estate-backend/internal/valuation"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// exportProject streams a site report for one project.
// Query parameters: q (search), status (UNSOLD|BOOKED|SOLD|ALL),
// scope (all|filtered), fields (comma list of column groups),
// format (csv|xlsx).
func (h *Handler) exportProject(c *gin.Context) {
	p, err := h.findProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		respondStoreError(c, err, "failed to load project")
		return
	}

	sites := p.Sites
	if c.DefaultQuery("scope", "all") == "filtered" {
		sites = valuation.Filter(p.Sites, c.Query("q"), c.DefaultQuery("status", valuation.StatusAll))
	}
	fields := export.ParseFields(c.Query("fields"))

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		file, err := export.XLSX(sites, fields)
		if err != nil {
			respondStoreError(c, err, "failed to build spreadsheet")
			return
		}
		var buf bytes.Buffer
		if _, err := file.WriteTo(&buf); err != nil {
			respondStoreError(c, err, "failed to render spreadsheet")
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+export.Filename(p.Name, "xlsx", time.Now())+`"`)
		c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="`+export.Filename(p.Name, "csv", time.Now())+`"`)
		c.Data(http.StatusOK, contentTypeCSV, []byte(export.CSV(sites, fields)))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown format"})
	}
}
