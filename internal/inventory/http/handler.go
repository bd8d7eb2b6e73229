// Package http exposes the inventory over a REST surface: projects,
// sites, payment ledgers, company settings, exports and narrative
// summaries.
package http

import (
	"context"

	"github.com/estatenexus/estate-backend/internal/insights"
	"github.com/estatenexus/estate-backend/internal/inventory/domain"
	"github.com/estatenexus/estate-backend/internal/inventory/repository"
)

type Handler struct {
	projects *repository.ProjectRepo
	sites    *repository.SiteRepo
	payments *repository.PaymentRepo
	settings *repository.SettingsRepo
	insights *insights.Service
}

func New(
	projects *repository.ProjectRepo,
	sites *repository.SiteRepo,
	payments *repository.PaymentRepo,
	settings *repository.SettingsRepo,
	insightsSvc *insights.Service,
) *Handler {
	return &Handler{
		projects: projects,
		sites:    sites,
		payments: payments,
		settings: settings,
		insights: insightsSvc,
	}
}

// findProject reloads the full aggregate and picks one project. Every
// read after a mutation goes through the same full reload; nothing is
// patched incrementally.
func (h *Handler) findProject(ctx context.Context, id string) (*domain.Project, error) {
	all, err := h.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// findSite scans the aggregate for one site.
func (h *Handler) findSite(ctx context.Context, id string) (*domain.Site, error) {
	all, err := h.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		for j := range all[i].Sites {
			if all[i].Sites[j].ID == id {
				return &all[i].Sites[j], nil
			}
		}
	}
	return nil, domain.ErrNotFound
}
