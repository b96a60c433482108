package tenant

import (
	"context"
	"fmt"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

// Repository is the tenant ledger. Append-only: Create is the only write.
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	List(ctx context.Context) ([]Tenant, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Tenant) error {
	query := `
		INSERT INTO tenants (
			id, first_name, middle_name, last_name,
			phone_number, unit_id, move_in_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &t.CreatedAt, query,
		t.ID,
		t.FirstName,
		t.MiddleName,
		t.LastName,
		t.PhoneNumber,
		t.UnitID,
		t.MoveInDate,
	)
	if err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Tenant, error) {
	query := `
		SELECT id, first_name, middle_name, last_name,
		       phone_number, unit_id, move_in_date, created_at
		FROM tenants
		ORDER BY created_at, id`

	tenants := []Tenant{}
	if err := r.db.SelectContext(ctx, &tenants, query); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	return tenants, nil
}
