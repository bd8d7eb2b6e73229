package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

// PaymentRepo persists the append-only payment ledger. Records are never
// updated; the only mutations are insert and delete.
type PaymentRepo struct {
	db *pgxpool.Pool
}

func NewPaymentRepo(db *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// Create appends a payment to a site's ledger and returns its id.
func (r *PaymentRepo) Create(ctx context.Context, siteID string, p domain.PaymentRecord) (string, error) {
	if r.db == nil {
		return "", domain.ErrStorageDisabled
	}
	if p.Amount <= 0 {
		return "", fmt.Errorf("payment amount must be positive")
	}

	const q = `
insert into payment_records (site_id, amount, date, method, notes)
values ($1, $2::numeric, $3, $4, $5)
returning id;
`
	var id string
	err := r.db.QueryRow(ctx, q, siteID, formatNumeric(p.Amount), p.Date, p.Method, p.Notes).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("create payment: %w", err)
	}
	return id, nil
}

// Delete removes a single payment record.
func (r *PaymentRepo) Delete(ctx context.Context, id string) (bool, error) {
	if r.db == nil {
		return false, domain.ErrStorageDisabled
	}

	const q = `delete from payment_records where id = $1;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, fmt.Errorf("delete payment: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}
