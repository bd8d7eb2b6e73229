// Package export renders a project's site list into a delimited report.
// Every emitted value is either a raw entity field or an output of the
// valuation package; the formatter itself computes nothing new.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
	"github.com/estatenexus/estate-backend/internal/valuation"
)

// FieldSet selects which column groups a report includes.
type FieldSet struct {
	Number     bool
	Status     bool
	Facing     bool
	Customer   bool
	Area       bool
	Dimensions bool
	Financials bool
}

// AllFields enables every column group.
func AllFields() FieldSet {
	return FieldSet{
		Number:     true,
		Status:     true,
		Facing:     true,
		Customer:   true,
		Area:       true,
		Dimensions: true,
		Financials: true,
	}
}

// ParseFields builds a FieldSet from a comma-separated group list, e.g.
// "number,status,financials". An empty list means all groups.
func ParseFields(list string) FieldSet {
	if strings.TrimSpace(list) == "" {
		return AllFields()
	}
	var f FieldSet
	for _, name := range strings.Split(list, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "number":
			f.Number = true
		case "status":
			f.Status = true
		case "facing":
			f.Facing = true
		case "customer":
			f.Customer = true
		case "area":
			f.Area = true
		case "dimensions":
			f.Dimensions = true
		case "financials":
			f.Financials = true
		}
	}
	return f
}

// Headers returns the enabled column names in canonical order.
func (f FieldSet) Headers() []string {
	var h []string
	if f.Number {
		h = append(h, "Site Number")
	}
	if f.Status {
		h = append(h, "Status")
	}
	if f.Facing {
		h = append(h, "Facing")
	}
	if f.Customer {
		h = append(h, "Customer Name", "Customer Phone")
	}
	if f.Area {
		h = append(h, "Area (SqFt)", "Area (Cents)")
	}
	if f.Dimensions {
		h = append(h, "North (ft)", "South (ft)", "East (ft)", "West (ft)")
	}
	if f.Financials {
		h = append(h,
			"Plot Rate/SqFt", "Plot Value", "Const Area", "Const Rate",
			"Const Value", "Base Value", "Profit Margin %", "Total Projected Value")
	}
	return h
}

// Row renders one site's values in the same order as Headers. Text
// fields come back quote-wrapped; numerics are plain decimal text.
func (f FieldSet) Row(s domain.Site) []string {
	b := valuation.Compute(s)

	var row []string
	if f.Number {
		row = append(row, quote(s.Number))
	}
	if f.Status {
		row = append(row, string(s.Status))
	}
	if f.Facing {
		row = append(row, s.Facing)
	}
	if f.Customer {
		row = append(row, quote(orNA(s.CustomerName)), quote(orNA(s.CustomerPhone)))
	}
	if f.Area {
		row = append(row, num(s.LandAreaSqFt), fixed2(valuation.Cents(s.LandAreaSqFt)))
	}
	if f.Dimensions {
		row = append(row,
			num(s.Dimensions.North), num(s.Dimensions.South),
			num(s.Dimensions.East), num(s.Dimensions.West))
	}
	if f.Financials {
		row = append(row,
			num(s.LandCostPerSqFt), num(b.LandValue),
			num(s.ConstructionAreaSqFt), num(s.ConstructionRatePerSqFt),
			num(b.ConstructionValue), num(b.BaseValue),
			num(s.ProfitMarginPercentage), num(b.ProjectedTotalValue))
	}
	return row
}

// CSV renders the header row plus one row per site, comma separated.
func CSV(sites []domain.Site, f FieldSet) string {
	lines := make([]string, 0, len(sites)+1)
	lines = append(lines, strings.Join(f.Headers(), ","))
	for _, s := range sites {
		lines = append(lines, strings.Join(f.Row(s), ","))
	}
	return strings.Join(lines, "\n")
}

// Filename builds the report file name: project name with whitespace
// collapsed to underscores, suffixed with the ISO date.
func Filename(projectName, ext string, now time.Time) string {
	name := strings.Join(strings.Fields(projectName), "_")
	return fmt.Sprintf("%s_Report_%s.%s", name, now.Format("2006-01-02"), ext)
}

func quote(s string) string {
	return `"` + s + `"`
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
