package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

// SiteRepo persists sites. Partial updates only touch the columns the
// patch carries.
type SiteRepo struct {
	db *pgxpool.Pool
}

func NewSiteRepo(db *pgxpool.Pool) *SiteRepo {
	return &SiteRepo{db: db}
}

// Create inserts a site under the given project and returns its id.
func (r *SiteRepo) Create(ctx context.Context, projectID string, s domain.Site) (string, error) {
	if r.db == nil {
		return "", domain.ErrStorageDisabled
	}

	dims, err := json.Marshal(s.Dimensions)
	if err != nil {
		return "", fmt.Errorf("encode dimensions: %w", err)
	}
	if s.ImageURLs == nil {
		s.ImageURLs = []string{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}

	const q = `
insert into sites (
  project_id, number, status, customer_name, customer_phone, facing,
  dimensions, land_area_sqft, land_cost_per_sqft,
  construction_area_sqft, construction_rate_per_sqft,
  profit_margin_percentage, image_urls, tags,
  projected_completion_date, booking_date, sale_date
)
values ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9::numeric, $10::numeric,
        $11::numeric, $12::numeric, $13, $14, $15, $16, $17)
returning id;
`
	var id string
	err = r.db.QueryRow(ctx, q,
		projectID, s.Number, s.Status, s.CustomerName, s.CustomerPhone, s.Facing,
		dims,
		formatNumeric(s.LandAreaSqFt), formatNumeric(s.LandCostPerSqFt),
		formatNumeric(s.ConstructionAreaSqFt), formatNumeric(s.ConstructionRatePerSqFt),
		formatNumeric(s.ProfitMarginPercentage),
		s.ImageURLs, s.Tags,
		s.ProjectedCompletionDate, s.BookingDate, s.SaleDate,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create site: %w", err)
	}
	return id, nil
}

// UpdatePartial writes only the fields present in the patch. Absent
// fields stay untouched in the store.
func (r *SiteRepo) UpdatePartial(ctx context.Context, id string, patch domain.SitePatch) (bool, error) {
	if r.db == nil {
		return false, domain.ErrStorageDisabled
	}
	if patch.Empty() {
		return false, nil
	}

	set := []string{"updated_at = now()"}
	args := []interface{}{id}

	add := func(col string, v interface{}) {
		args = append(args, v)
		set = append(set, col+" = $"+strconv.Itoa(len(args)))
	}
	addNumeric := func(col string, v float64) {
		args = append(args, formatNumeric(v))
		set = append(set, col+" = $"+strconv.Itoa(len(args))+"::numeric")
	}

	if patch.Number != nil {
		add("number", *patch.Number)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.CustomerName != nil {
		add("customer_name", *patch.CustomerName)
	}
	if patch.CustomerPhone != nil {
		add("customer_phone", *patch.CustomerPhone)
	}
	if patch.Facing != nil {
		add("facing", *patch.Facing)
	}
	if patch.Dimensions != nil {
		dims, err := json.Marshal(*patch.Dimensions)
		if err != nil {
			return false, fmt.Errorf("encode dimensions: %w", err)
		}
		add("dimensions", dims)
	}
	if patch.LandAreaSqFt != nil {
		addNumeric("land_area_sqft", *patch.LandAreaSqFt)
	}
	if patch.LandCostPerSqFt != nil {
		addNumeric("land_cost_per_sqft", *patch.LandCostPerSqFt)
	}
	if patch.ConstructionAreaSqFt != nil {
		addNumeric("construction_area_sqft", *patch.ConstructionAreaSqFt)
	}
	if patch.ConstructionRatePerSqFt != nil {
		addNumeric("construction_rate_per_sqft", *patch.ConstructionRatePerSqFt)
	}
	if patch.ProfitMarginPercentage != nil {
		addNumeric("profit_margin_percentage", *patch.ProfitMarginPercentage)
	}
	if patch.ImageURLs != nil {
		add("image_urls", *patch.ImageURLs)
	}
	if patch.Tags != nil {
		add("tags", *patch.Tags)
	}
	if patch.ProjectedCompletionDate != nil {
		add("projected_completion_date", *patch.ProjectedCompletionDate)
	}
	if patch.BookingDate != nil {
		add("booking_date", *patch.BookingDate)
	}
	if patch.SaleDate != nil {
		add("sale_date", *patch.SaleDate)
	}

	q := "update sites set " + strings.Join(set, ", ") + " where id = $1;"
	ct, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return false, fmt.Errorf("update site: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes a site and, via cascade, its payment ledger.
func (r *SiteRepo) Delete(ctx context.Context, id string) (bool, error) {
	if r.db == nil {
		return false, domain.ErrStorageDisabled
	}

	const q = `delete from sites where id = $1;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete site: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}
