package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

// ProjectRepo persists projects against Postgres. A nil pool means the
// service started without store credentials: every method reports
// domain.ErrStorageDisabled instead of panicking.
type ProjectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepo(db *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// GetAll returns every project with its sites and each site's payment
// ledger, ordered by creation time ascending.
func (r *ProjectRepo) GetAll(ctx context.Context) ([]domain.Project, error) {
	if r.db == nil {
		return nil, domain.ErrStorageDisabled
	}

	const projectsQ = `
select id, name, location, launch_date, coalesce(image_urls, '{}'), created_at
from projects
order by created_at asc;
`
	rows, err := r.db.Query(ctx, projectsQ)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	index := make(map[string]int)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.LaunchDate, &p.ImageURLs, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Sites = []domain.Site{}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sitesByProject, siteIndex, err := r.loadSites(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.loadPayments(ctx, siteIndex); err != nil {
		return nil, err
	}

	for projectID, sites := range sitesByProject {
		if i, ok := index[projectID]; ok {
			out[i].Sites = *sites
		}
	}
	return out, nil
}

// loadSites fetches every site, keyed by project. Monetary and area
// columns are numeric in the store; they are selected as text and parsed
// into float64 at this boundary so arithmetic downstream stays numeric.
func (r *ProjectRepo) loadSites(ctx context.Context) (map[string]*[]domain.Site, map[string]*domain.Site, error) {
	const q = `
select id, project_id, number, status, customer_name, customer_phone, facing,
       dimensions,
       land_area_sqft::text, land_cost_per_sqft::text,
       construction_area_sqft::text, construction_rate_per_sqft::text,
       coalesce(profit_margin_percentage, 0)::text,
       coalesce(image_urls, '{}'), coalesce(tags, '{}'),
       projected_completion_date, booking_date, sale_date
from sites
order by created_at asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()

	byProject := make(map[string]*[]domain.Site)
	byID := make(map[string]*domain.Site)
	order := make(map[string][]string)

	for rows.Next() {
		var (
			s         domain.Site
			projectID string
			dims      []byte
			area      string
			landRate  string
			constArea string
			constRate string
			profit    string
		)
		if err := rows.Scan(
			&s.ID, &projectID, &s.Number, &s.Status, &s.CustomerName, &s.CustomerPhone, &s.Facing,
			&dims, &area, &landRate, &constArea, &constRate, &profit,
			&s.ImageURLs, &s.Tags,
			&s.ProjectedCompletionDate, &s.BookingDate, &s.SaleDate,
		); err != nil {
			return nil, nil, fmt.Errorf("scan site: %w", err)
		}

		if len(dims) > 0 {
			if err := json.Unmarshal(dims, &s.Dimensions); err != nil {
				return nil, nil, fmt.Errorf("decode dimensions for site %s: %w", s.ID, err)
			}
		}
		if s.LandAreaSqFt, err = parseNumeric(area); err != nil {
			return nil, nil, fmt.Errorf("site %s land_area_sqft: %w", s.ID, err)
		}
		if s.LandCostPerSqFt, err = parseNumeric(landRate); err != nil {
			return nil, nil, fmt.Errorf("site %s land_cost_per_sqft: %w", s.ID, err)
		}
		if s.ConstructionAreaSqFt, err = parseNumeric(constArea); err != nil {
			return nil, nil, fmt.Errorf("site %s construction_area_sqft: %w", s.ID, err)
		}
		if s.ConstructionRatePerSqFt, err = parseNumeric(constRate); err != nil {
			return nil, nil, fmt.Errorf("site %s construction_rate_per_sqft: %w", s.ID, err)
		}
		if s.ProfitMarginPercentage, err = parseNumeric(profit); err != nil {
			return nil, nil, fmt.Errorf("site %s profit_margin_percentage: %w", s.ID, err)
		}
		s.Payments = []domain.PaymentRecord{}

		byID[s.ID] = &s
		order[projectID] = append(order[projectID], s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	for projectID, ids := range order {
		sites := make([]domain.Site, 0, len(ids))
		for _, id := range ids {
			sites = append(sites, *byID[id])
		}
		list := sites
		byProject[projectID] = &list
		// re-point the index at the slice elements so payments land on
		// the copies that are actually returned
		for i := range list {
			byID[list[i].ID] = &list[i]
		}
	}
	return byProject, byID, nil
}

func (r *ProjectRepo) loadPayments(ctx context.Context, sites map[string]*domain.Site) error {
	const q = `
select id, site_id, amount::text, date, method, notes
from payment_records
order by date asc, created_at asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p      domain.PaymentRecord
			siteID string
			amount string
		)
		if err := rows.Scan(&p.ID, &siteID, &amount, &p.Date, &p.Method, &p.Notes); err != nil {
			return fmt.Errorf("scan payment: %w", err)
		}
		if p.Amount, err = parseNumeric(amount); err != nil {
			return fmt.Errorf("payment %s amount: %w", p.ID, err)
		}
		if s, ok := sites[siteID]; ok {
			s.Payments = append(s.Payments, p)
		}
	}
	return rows.Err()
}

// Create inserts a project and returns the generated id.
func (r *ProjectRepo) Create(ctx context.Context, name, location string, launchDate *string, imageURLs []string) (string, error) {
	if r.db == nil {
		return "", domain.ErrStorageDisabled
	}
	if imageURLs == nil {
		imageURLs = []string{}
	}

	const q = `
insert into projects (name, location, launch_date, image_urls)
values ($1, $2, $3, $4)
returning id;
`
	var id string
	if err := r.db.QueryRow(ctx, q, name, location, launchDate, imageURLs).Scan(&id); err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return id, nil
}

// Update rewrites the project's own fields (never its sites).
func (r *ProjectRepo) Update(ctx context.Context, id, name, location string, launchDate *string, imageURLs []string) (bool, error) {
	if r.db == nil {
		return false, domain.ErrStorageDisabled
	}
	if imageURLs == nil {
		imageURLs = []string{}
	}

	const q = `
update projects
set name = $2, location = $3, launch_date = $4, image_urls = $5, updated_at = now()
where id = $1;
`
	ct, err := r.db.Exec(ctx, q, id, name, location, launchDate, imageURLs)
	if err != nil {
		return false, fmt.Errorf("update project: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes the project. Sites and their payments go with it via
// the store's cascade.
func (r *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	if r.db == nil {
		return false, domain.ErrStorageDisabled
	}

	const q = `delete from projects where id = $1;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}
