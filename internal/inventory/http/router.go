package http

import "github.com/gin-gonic/gin"

// Register attaches the inventory routes to the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.listProjects)
	rg.POST("/projects", h.createProject)
	rg.PATCH("/projects/:id", h.updateProject)
	rg.DELETE("/projects/:id", h.deleteProject)

	rg.GET("/projects/:id/summary", h.projectSummary)
	rg.GET("/projects/:id/export", h.exportProject)

	rg.POST("/projects/:id/sites", h.createSite)
	rg.PATCH("/sites/:id", h.updateSite)
	rg.DELETE("/sites/:id", h.deleteSite)
	rg.GET("/sites/:id/report", h.siteReport)

	rg.POST("/sites/:id/payments", h.createPayment)
	rg.DELETE("/payments/:id", h.deletePayment)

	rg.GET("/settings", h.getSettings)
	rg.PUT("/settings", h.upsertSettings)
}
