package unit

import (
	"context"
	"fmt"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

// Repository is the unit ledger. Append-only: Create is the only write.
type Repository interface {
	Create(ctx context.Context, u *Unit) error
	List(ctx context.Context) ([]Unit, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *Unit) error {
	query := `
		INSERT INTO units (
			id, unit_id, unit_name, unit_size, rent_amount, condition_images
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &u.CreatedAt, query,
		u.ID,
		u.UnitID,
		u.UnitName,
		u.UnitSize,
		u.RentAmount,
		u.ConditionImages,
	)
	if err != nil {
		return fmt.Errorf("create unit: %w", err)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Unit, error) {
	query := `
		SELECT id, unit_id, unit_name, unit_size, rent_amount,
		       condition_images, created_at
		FROM units
		ORDER BY created_at, id`

	units := []Unit{}
	if err := r.db.SelectContext(ctx, &units, query); err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}

	return units, nil
}
