package domain

import "time"

type SiteStatus string

const (
	StatusUnsold SiteStatus = "UNSOLD"
	StatusBooked SiteStatus = "BOOKED"
	StatusSold   SiteStatus = "SOLD"
)

// Valid reports whether s is one of the three known statuses.
func (s SiteStatus) Valid() bool {
	switch s {
	case StatusUnsold, StatusBooked, StatusSold:
		return true
	}
	return false
}

// Dimensions holds the four edge lengths of a plot, in feet.
type Dimensions struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

type PaymentRecord struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Method string  `json:"method"`
	Notes  *string `json:"notes,omitempty"`
}

type Site struct {
	ID                      string          `json:"id"`
	Number                  string          `json:"number"`
	Status                  SiteStatus      `json:"status"`
	CustomerName            *string         `json:"customerName,omitempty"`
	CustomerPhone           *string         `json:"customerPhone,omitempty"`
	Facing                  string          `json:"facing"`
	Dimensions              Dimensions      `json:"dimensions"`
	LandAreaSqFt            float64         `json:"landAreaSqFt"`
	LandCostPerSqFt         float64         `json:"landCostPerSqFt"`
	ConstructionAreaSqFt    float64         `json:"constructionAreaSqFt"`
	ConstructionRatePerSqFt float64         `json:"constructionRatePerSqFt"`
	ProfitMarginPercentage  float64         `json:"profitMarginPercentage"`
	ImageURLs               []string        `json:"imageUrls"`
	Tags                    []string        `json:"tags"`
	ProjectedCompletionDate *string         `json:"projectedCompletionDate,omitempty"`
	BookingDate             *string         `json:"bookingDate,omitempty"`
	SaleDate                *string         `json:"saleDate,omitempty"`
	Payments                []PaymentRecord `json:"payments"`
}

type Project struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	LaunchDate *string   `json:"launchDate,omitempty"`
	ImageURLs  []string  `json:"imageUrls"`
	Sites      []Site    `json:"sites"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CompanySettings struct {
	Name    string  `json:"name"`
	LogoURL *string `json:"logoUrl,omitempty"`
	Street  *string `json:"street,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Zip     *string `json:"zip,omitempty"`
}

// SitePatch is a sparse update: only non-nil fields are written, so a
// partial edit never clobbers columns the caller did not touch.
type SitePatch struct {
	Number                  *string     `json:"number,omitempty"`
	Status                  *SiteStatus `json:"status,omitempty"`
	CustomerName            *string     `json:"customerName,omitempty"`
	CustomerPhone           *string     `json:"customerPhone,omitempty"`
	Facing                  *string     `json:"facing,omitempty"`
	Dimensions              *Dimensions `json:"dimensions,omitempty"`
	LandAreaSqFt            *float64    `json:"landAreaSqFt,omitempty"`
	LandCostPerSqFt         *float64    `json:"landCostPerSqFt,omitempty"`
	ConstructionAreaSqFt    *float64    `json:"constructionAreaSqFt,omitempty"`
	ConstructionRatePerSqFt *float64    `json:"constructionRatePerSqFt,omitempty"`
	ProfitMarginPercentage  *float64    `json:"profitMarginPercentage,omitempty"`
	ImageURLs               *[]string   `json:"imageUrls,omitempty"`
	Tags                    *[]string   `json:"tags,omitempty"`
	ProjectedCompletionDate *string     `json:"projectedCompletionDate,omitempty"`
	BookingDate             *string     `json:"bookingDate,omitempty"`
	SaleDate                *string     `json:"saleDate,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p SitePatch) Empty() bool {
	return p.Number == nil && p.Status == nil && p.CustomerName == nil &&
		p.CustomerPhone == nil && p.Facing == nil && p.Dimensions == nil &&
		p.LandAreaSqFt == nil && p.LandCostPerSqFt == nil &&
		p.ConstructionAreaSqFt == nil && p.ConstructionRatePerSqFt == nil &&
		p.ProfitMarginPercentage == nil && p.ImageURLs == nil && p.Tags == nil &&
		p.ProjectedCompletionDate == nil && p.BookingDate == nil && p.SaleDate == nil
}
