// Package valuation holds the pure pricing arithmetic for sites and
// projects. Nothing here touches storage; every function is a plain
// computation over the entity structs.
package valuation

import (
	"math"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

// SqFtPerCent converts square feet to cents (the Indian land unit).
const SqFtPerCent = 435.6

// Breakdown is the derived financial view of a single site.
type Breakdown struct {
	LandValue           float64 `json:"landValue"`
	ConstructionValue   float64 `json:"constructionValue"`
	BaseValue           float64 `json:"baseValue"`
	ProfitAmount        float64 `json:"profitAmount"`
	ProjectedTotalValue float64 `json:"projectedTotalValue"`
	TotalPaid           float64 `json:"totalPaid"`
	BalanceDue          float64 `json:"balanceDue"`
}

// Compute derives the full financial breakdown for a site. Absent numeric
// fields are zero-valued in the struct already, so they contribute 0.
func Compute(s domain.Site) Breakdown {
	land := s.LandAreaSqFt * s.LandCostPerSqFt
	construction := s.ConstructionAreaSqFt * s.ConstructionRatePerSqFt
	base := land + construction
	profit := base * (s.ProfitMarginPercentage / 100)
	projected := base + profit
	paid := TotalPaid(s.Payments)

	return Breakdown{
		LandValue:           land,
		ConstructionValue:   construction,
		BaseValue:           base,
		ProfitAmount:        profit,
		ProjectedTotalValue: projected,
		TotalPaid:           paid,
		BalanceDue:          projected - paid,
	}
}

// TotalPaid sums the payment ledger. Zero when the ledger is empty.
func TotalPaid(payments []domain.PaymentRecord) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}

// AreaFromDimensions estimates plot area from the four edge lengths:
// the product of the averages of the opposing sides.
func AreaFromDimensions(d domain.Dimensions) float64 {
	avgWidth := (d.North + d.South) / 2
	avgHeight := (d.East + d.West) / 2
	return avgWidth * avgHeight
}

// Cents converts square feet to cents.
func Cents(sqft float64) float64 {
	return sqft / SqFtPerCent
}

// DisplaySqFt rounds a stored area for display. The stored value keeps
// full precision; only the rendered number is rounded.
func DisplaySqFt(sqft float64) int64 {
	return int64(math.Round(sqft))
}

// Totals is the project-level rollup across all sites.
type Totals struct {
	TotalLand         float64 `json:"totalLand"`
	TotalConstruction float64 `json:"totalConstruction"`
	TotalProjected    float64 `json:"totalProjected"`
}

// ProjectTotals aggregates per-site values over every site in the
// project, regardless of any active search or status filter.
func ProjectTotals(sites []domain.Site) Totals {
	var t Totals
	for _, s := range sites {
		b := Compute(s)
		t.TotalLand += b.LandValue
		t.TotalConstruction += b.ConstructionValue
		t.TotalProjected += b.ProjectedTotalValue
	}
	return t
}
