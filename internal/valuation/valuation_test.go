package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

func TestAreaFromDimensions(t *testing.T) {
	t.Run("rectangular plot", func(t *testing.T) {
		area := AreaFromDimensions(domain.Dimensions{North: 30, South: 30, East: 40, West: 40})
		assert.Equal(t, 1200.0, area)
	})

	t.Run("irregular plot averages opposing sides", func(t *testing.T) {
		area := AreaFromDimensions(domain.Dimensions{North: 30, South: 50, East: 40, West: 60})
		// ((30+50)/2) * ((40+60)/2)
		assert.Equal(t, 2000.0, area)
	})

	t.Run("zero edges yield zero area", func(t *testing.T) {
		assert.Equal(t, 0.0, AreaFromDimensions(domain.Dimensions{}))
	})
}

func TestCents(t *testing.T) {
	assert.InDelta(t, 2.75, Cents(1200), 0.005)
	assert.Equal(t, 0.0, Cents(0))
}

func TestCompute(t *testing.T) {
	t.Run("full scenario with profit and payment", func(t *testing.T) {
		site := domain.Site{
			LandAreaSqFt:            1200,
			LandCostPerSqFt:         4500,
			ConstructionAreaSqFt:    1800,
			ConstructionRatePerSqFt: 2200,
			ProfitMarginPercentage:  10,
			Payments: []domain.PaymentRecord{
				{Amount: 2000000, Date: "2025-01-15", Method: "Bank Transfer"},
			},
		}

		b := Compute(site)
		assert.Equal(t, 5400000.0, b.LandValue)
		assert.Equal(t, 3960000.0, b.ConstructionValue)
		assert.Equal(t, 9360000.0, b.BaseValue)
		assert.Equal(t, 936000.0, b.ProfitAmount)
		assert.Equal(t, 10296000.0, b.ProjectedTotalValue)
		assert.Equal(t, 2000000.0, b.TotalPaid)
		assert.Equal(t, 8296000.0, b.BalanceDue)
	})

	t.Run("absent profit margin treated as zero", func(t *testing.T) {
		site := domain.Site{
			LandAreaSqFt:            1000,
			LandCostPerSqFt:         100,
			ConstructionAreaSqFt:    500,
			ConstructionRatePerSqFt: 200,
		}

		b := Compute(site)
		assert.Equal(t, 0.0, b.ProfitAmount)
		assert.Equal(t, b.BaseValue, b.ProjectedTotalValue)
	})

	t.Run("no payments means balance equals projected total", func(t *testing.T) {
		site := domain.Site{LandAreaSqFt: 100, LandCostPerSqFt: 10}
		b := Compute(site)
		assert.Equal(t, 0.0, b.TotalPaid)
		assert.Equal(t, b.ProjectedTotalValue, b.BalanceDue)
	})

	t.Run("overpayment drives balance negative without clamping", func(t *testing.T) {
		site := domain.Site{
			LandAreaSqFt:    100,
			LandCostPerSqFt: 10,
			Payments:        []domain.PaymentRecord{{Amount: 1500}},
		}
		b := Compute(site)
		assert.Equal(t, -500.0, b.BalanceDue)
	})

	t.Run("zero-valued site computes all zeros", func(t *testing.T) {
		b := Compute(domain.Site{})
		assert.Zero(t, b.BaseValue)
		assert.Zero(t, b.ProjectedTotalValue)
		assert.Zero(t, b.BalanceDue)
	})
}

func TestTotalPaid(t *testing.T) {
	payments := []domain.PaymentRecord{{Amount: 100}, {Amount: 250.5}, {Amount: 49.5}}
	assert.Equal(t, 400.0, TotalPaid(payments))
	assert.Equal(t, 0.0, TotalPaid(nil))
}

func TestProjectTotals(t *testing.T) {
	sites := []domain.Site{
		{LandAreaSqFt: 1200, LandCostPerSqFt: 4500, ConstructionAreaSqFt: 1800, ConstructionRatePerSqFt: 2200, ProfitMarginPercentage: 10},
		{LandAreaSqFt: 1000, LandCostPerSqFt: 1000, ConstructionAreaSqFt: 0, ConstructionRatePerSqFt: 0},
	}

	totals := ProjectTotals(sites)
	require.Equal(t, 5400000.0+1000000.0, totals.TotalLand)
	require.Equal(t, 3960000.0, totals.TotalConstruction)
	require.Equal(t, 10296000.0+1000000.0, totals.TotalProjected)
}

func TestDisplaySqFt(t *testing.T) {
	assert.Equal(t, int64(1201), DisplaySqFt(1200.5))
	assert.Equal(t, int64(1200), DisplaySqFt(1200.4))
}
