package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

// SettingsRepo manages the singleton company_settings row. It runs on
// database/sql so a plain *sql.DB (and sqlmock in tests) can back it.
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get returns the settings row, or (nil, nil) when none has been saved
// yet.
func (r *SettingsRepo) Get(ctx context.Context) (*domain.CompanySettings, error) {
	if r.db == nil {
		return nil, domain.ErrStorageDisabled
	}

	const q = `
SELECT name, logo_url, street, city, state, zip
FROM company_settings
LIMIT 1;
`
	var s domain.CompanySettings
	err := r.db.QueryRowContext(ctx, q).
		Scan(&s.Name, &s.LogoURL, &s.Street, &s.City, &s.State, &s.Zip)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Upsert saves the settings: the first save inserts the singleton row,
// later saves update it in place. The table never grows past one row.
func (r *SettingsRepo) Upsert(ctx context.Context, s domain.CompanySettings) (bool, error) {
	if r.db == nil {
		return false, domain.ErrStorageDisabled
	}

	var id string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM company_settings LIMIT 1;`).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		const ins = `
INSERT INTO company_settings (name, logo_url, street, city, state, zip)
VALUES ($1, $2, $3, $4, $5, $6);
`
		if _, err := r.db.ExecContext(ctx, ins, s.Name, s.LogoURL, s.Street, s.City, s.State, s.Zip); err != nil {
			return false, fmt.Errorf("insert settings: %w", err)
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("lookup settings: %w", err)
	}

	const upd = `
UPDATE company_settings
SET name = $2, logo_url = $3, street = $4, city = $5, state = $6, zip = $7, updated_at = now()
WHERE id = $1;
`
	if _, err := r.db.ExecContext(ctx, upd, id, s.Name, s.LogoURL, s.Street, s.City, s.State, s.Zip); err != nil {
		return false, fmt.Errorf("update settings: %w", err)
	}
	return true, nil
}
