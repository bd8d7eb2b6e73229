package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
	"github.com/estatenexus/estate-backend/internal/valuation"
)

type createSiteReq struct {
	Number                  string             `json:"number"`
	Status                  domain.SiteStatus  `json:"status"`
	CustomerName            *string            `json:"customerName"`
	CustomerPhone           *string            `json:"customerPhone"`
	Facing                  string             `json:"facing"`
	Dimensions              *domain.Dimensions `json:"dimensions"`
	LandAreaSqFt            float64            `json:"landAreaSqFt"`
	LandCostPerSqFt         float64            `json:"landCostPerSqFt"`
	ConstructionAreaSqFt    float64            `json:"constructionAreaSqFt"`
	ConstructionRatePerSqFt float64            `json:"constructionRatePerSqFt"`
	ProfitMarginPercentage  float64            `json:"profitMarginPercentage"`
	ImageURLs               []string           `json:"imageUrls"`
	Tags                    []string           `json:"tags"`
	ProjectedCompletionDate *string            `json:"projectedCompletionDate"`
	BookingDate             *string            `json:"bookingDate"`
	SaleDate                *string            `json:"saleDate"`
}

func (h *Handler) createSite(c *gin.Context) {
	var req createSiteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.Number) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "number is required"})
		return
	}
	if req.Status == "" {
		req.Status = domain.StatusUnsold
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status"})
		return
	}

	site := domain.Site{
		Number:                  strings.TrimSpace(req.Number),
		Status:                  req.Status,
		CustomerName:            req.CustomerName,
		CustomerPhone:           req.CustomerPhone,
		Facing:                  req.Facing,
		LandAreaSqFt:            req.LandAreaSqFt,
		LandCostPerSqFt:         req.LandCostPerSqFt,
		ConstructionAreaSqFt:    req.ConstructionAreaSqFt,
		ConstructionRatePerSqFt: req.ConstructionRatePerSqFt,
		ProfitMarginPercentage:  req.ProfitMarginPercentage,
		ImageURLs:               req.ImageURLs,
		Tags:                    req.Tags,
		ProjectedCompletionDate: req.ProjectedCompletionDate,
		BookingDate:             req.BookingDate,
		SaleDate:                req.SaleDate,
	}
	// The stored area defaults from the edges: when dimensions arrive,
	// the derived value wins over whatever area the body carried.
	if req.Dimensions != nil {
		site.Dimensions = *req.Dimensions
		site.LandAreaSqFt = valuation.AreaFromDimensions(*req.Dimensions)
	}

	id, err := h.sites.Create(c.Request.Context(), c.Param("id"), site)
	if err != nil {
		respondStoreError(c, err, "failed to create site")
		return
	}
	// The overview counts just changed.
	if h.insights != nil {
		h.insights.InvalidateProject(c.Request.Context(), c.Param("id"))
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateSite(c *gin.Context) {
	var patch domain.SitePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if patch.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "empty patch"})
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid status"})
		return
	}
	// Edge edits recompute the stored area; a direct area override is
	// honored only when the same patch does not touch dimensions.
	if patch.Dimensions != nil {
		area := valuation.AreaFromDimensions(*patch.Dimensions)
		patch.LandAreaSqFt = &area
	}

	ok, err := h.sites.UpdatePartial(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "failed to update site")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "site not found"})
		return
	}
	h.refreshSiteReport(c, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// refreshSiteReport drops the cached narratives a site mutation made
// stale (the site's own report and its project's overview) and warms a
// replacement report in the background with the fresh figures.
func (h *Handler) refreshSiteReport(c *gin.Context, id string) {
	if h.insights == nil {
		return
	}
	ctx := c.Request.Context()
	h.insights.InvalidateSite(ctx, id)

	all, err := h.projects.GetAll(ctx)
	if err != nil {
		return
	}
	for i := range all {
		for j := range all[i].Sites {
			if all[i].Sites[j].ID == id {
				h.insights.InvalidateProject(ctx, all[i].ID)
				h.insights.PrefetchSite(all[i].Sites[j])
				return
			}
		}
	}
}

func (h *Handler) deleteSite(c *gin.Context) {
	ok, err := h.sites.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "failed to delete site")
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "site not found"})
		return
	}
	if h.insights != nil {
		h.insights.InvalidateSite(c.Request.Context(), c.Param("id"))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
