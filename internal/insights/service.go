package insights

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
	"github.com/estatenexus/estate-backend/internal/valuation"
)

// Fallback texts. A failed or empty generation resolves to one of these,
// never to an error the caller has to handle.
const (
	ProjectFallback = "Failed to fetch AI insights. Please check your network connection."
	ProjectEmpty    = "Unable to generate summary at this time."
	SiteFallback    = "Could not generate AI report."
	SiteEmpty       = "Report unavailable."
)

const (
	kindProject = "project"
	kindSite    = "site"

	prefetchTimeout = 90 * time.Second
)

// Generator is the narrow seam over the external text API so the
// service's fallback and staleness behavior is testable with a stub.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}

// Service produces narrative summaries. It tracks the active selection
// per kind: a summary that resolves after the selection moved on is
// discarded instead of written into shared state (last context wins).
type Service struct {
	gen     Generator
	cache   *Cache
	limiter *rate.Limiter

	mu     sync.Mutex
	active map[string]string
}

func NewService(gen Generator, cache *Cache, limiter *rate.Limiter) *Service {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Limit(2), 4)
	}
	return &Service{
		gen:     gen,
		cache:   cache,
		limiter: limiter,
		active:  map[string]string{},
	}
}

func (s *Service) setActive(kind, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[kind] = id
}

func (s *Service) isCurrent(kind, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[kind] == id
}

// ProjectOverview returns an executive summary for the project's sales
// statistics, or a fixed fallback string. It never returns an error. The
// request itself is the newest selection, so it becomes the active one.
func (s *Service) ProjectOverview(ctx context.Context, p domain.Project) string {
	s.setActive(kindProject, p.ID)
	return s.projectOverview(ctx, p)
}

func (s *Service) projectOverview(ctx context.Context, p domain.Project) string {
	if text, ok := s.cache.Get(ctx, kindProject, p.ID); ok {
		return text
	}

	counts := valuation.StatusCounts(p.Sites)
	prompt := fmt.Sprintf(
		`Generate a short executive summary for a real estate project manager based on these stats for the project %q in %q:
- Total Sites: %d
- Sold: %d
- Booked: %d
- Unsold: %d
Provide professional advice on sales strategy or market outlook in 3-4 sentences.`,
		p.Name, p.Location, counts.Total, counts.Sold, counts.Booked, counts.Unsold)

	text, err := s.generate(ctx, prompt, 0.7)
	if err != nil {
		logrus.WithError(err).WithField("project_id", p.ID).Warn("project overview generation failed")
		return ProjectFallback
	}
	if text == "" {
		return ProjectEmpty
	}
	if s.isCurrent(kindProject, p.ID) {
		s.cache.Set(ctx, kindProject, p.ID, text)
	}
	return text
}

// SiteReport returns a short status report for one site, or a fixed
// fallback string. The value quoted in the prompt is the base value
// (land plus construction, before profit margin).
func (s *Service) SiteReport(ctx context.Context, site domain.Site) string {
	s.setActive(kindSite, site.ID)
	return s.siteReport(ctx, site)
}

func (s *Service) siteReport(ctx context.Context, site domain.Site) string {
	if text, ok := s.cache.Get(ctx, kindSite, site.ID); ok {
		return text
	}

	b := valuation.Compute(site)
	customer := ""
	if site.CustomerName != nil && *site.CustomerName != "" {
		customer = fmt.Sprintf("\n- Current Customer: %s", *site.CustomerName)
	}
	prompt := fmt.Sprintf(
		`Generate a concise 2-sentence professional status report for real estate site #%s.
Details:
- Status: %s
- Facing: %s
- Total Land Area: %g sq ft
- Total Calculated Value: %.0f%s

Focus on the property's value proposition and current inventory status.`,
		site.Number, site.Status, site.Facing, site.LandAreaSqFt, b.BaseValue, customer)

	text, err := s.generate(ctx, prompt, 0.5)
	if err != nil {
		logrus.WithError(err).WithField("site_id", site.ID).Warn("site report generation failed")
		return SiteFallback
	}
	if text == "" {
		return SiteEmpty
	}
	if s.isCurrent(kindSite, site.ID) {
		s.cache.Set(ctx, kindSite, site.ID, text)
	}
	return text
}

// InvalidateProject drops the cached overview after a mutation changes
// the numbers it was built from.
func (s *Service) InvalidateProject(ctx context.Context, id string) {
	s.cache.Invalidate(ctx, kindProject, id)
}

// InvalidateSite drops the cached report for one site.
func (s *Service) InvalidateSite(ctx context.Context, id string) {
	s.cache.Invalidate(ctx, kindSite, id)
}

// PrefetchProject warms the cache in the background. It does not touch
// the active selection; if the user has moved on by the time the call
// resolves, the commit guard drops the result.
func (s *Service) PrefetchProject(p domain.Project) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), prefetchTimeout)
		defer cancel()
		_ = s.projectOverview(ctx, p)
	}()
}

// PrefetchSite is the site-level counterpart of PrefetchProject.
func (s *Service) PrefetchSite(site domain.Site) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), prefetchTimeout)
		defer cancel()
		_ = s.siteReport(ctx, site)
	}()
}

func (s *Service) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}
	return s.gen.Generate(ctx, prompt, temperature)
}
