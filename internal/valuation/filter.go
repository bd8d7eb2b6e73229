package valuation

import (
	"strings"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

// StatusAll disables status filtering.
const StatusAll = "ALL"

// Filter returns the sites whose unit number case-insensitively contains
// query and whose status matches the filter. StatusAll (or "") passes
// every status.
func Filter(sites []domain.Site, query, status string) []domain.Site {
	q := strings.ToLower(query)
	out := make([]domain.Site, 0, len(sites))
	for _, s := range sites {
		if !strings.Contains(strings.ToLower(s.Number), q) {
			continue
		}
		if status != "" && status != StatusAll && string(s.Status) != status {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Counts is the per-status tally for the summary panel. It is always
// computed over the full site list, never the filtered view.
type Counts struct {
	Total  int `json:"total"`
	Sold   int `json:"sold"`
	Booked int `json:"booked"`
	Unsold int `json:"unsold"`
}

func StatusCounts(sites []domain.Site) Counts {
	c := Counts{Total: len(sites)}
	for _, s := range sites {
		switch s.Status {
		case domain.StatusSold:
			c.Sold++
		case domain.StatusBooked:
			c.Booked++
		case domain.StatusUnsold:
			c.Unsold++
		}
	}
	return c
}
