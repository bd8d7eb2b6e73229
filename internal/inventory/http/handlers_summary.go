package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
	"github.com/estatenexus/estate-backend/internal/valuation"
)

// projectSummary returns the rollup panel for one project: status counts
// over the unfiltered site list, financial totals over all sites, and
// the narrative overview (which degrades to a fallback string on its
// own, never failing the request).
func (h *Handler) projectSummary(c *gin.Context) {
	p, err := h.findProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		respondStoreError(c, err, "failed to load project")
		return
	}

	summary := ""
	if h.insights != nil {
		summary = h.insights.ProjectOverview(c.Request.Context(), *p)
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"counts":  valuation.StatusCounts(p.Sites),
		"totals":  valuation.ProjectTotals(p.Sites),
		"summary": summary,
	})
}

// siteReport returns the per-site valuation breakdown plus the narrative
// report.
func (h *Handler) siteReport(c *gin.Context) {
	s, err := h.findSite(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "site not found"})
			return
		}
		respondStoreError(c, err, "failed to load site")
		return
	}

	report := ""
	if h.insights != nil {
		report = h.insights.SiteReport(c.Request.Context(), *s)
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"valuation": valuation.Compute(*s),
		"report":    report,
	})
}
