package rent

import (
	"context"
	"fmt"
	"time"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

// Repository is the rent ledger. Append-only: Create is the only write.
// ListOverdue returns rents whose window ended strictly before asOf, ordered
// by rent_end_date then id so repeated calls see the same order.
type Repository interface {
	Create(ctx context.Context, rn *Rent) error
	ListOverdue(ctx context.Context, asOf time.Time) ([]Rent, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rn *Rent) error {
	query := `
		INSERT INTO rents (
			id, tenant_id, unit_id, paid_amount,
			rent_start_date, rent_end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &rn.CreatedAt, query,
		rn.ID,
		rn.TenantID,
		rn.UnitID,
		rn.PaidAmount,
		rn.RentStartDate,
		rn.RentEndDate,
	)
	if err != nil {
		return fmt.Errorf("create rent: %w", err)
	}

	return nil
}

func (r *repository) ListOverdue(
	ctx context.Context,
	asOf time.Time,
) ([]Rent, error) {
	query := `
		SELECT id, tenant_id, unit_id, paid_amount,
		       rent_start_date, rent_end_date, created_at
		FROM rents
		WHERE rent_end_date < $1
		ORDER BY rent_end_date, id`

	rents := []Rent{}
	if err := r.db.SelectContext(ctx, &rents, query, asOf); err != nil {
		return nil, fmt.Errorf("list overdue rents: %w", err)
	}

	return rents, nil
}
