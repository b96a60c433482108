package rent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

type Service struct {
	repo    Repository
	timeout time.Duration
}

func NewService(repo Repository, timeout time.Duration) *Service {
	return &Service{repo: repo, timeout: timeout}
}

// Collect records a rent payment. The start/end window is parsed but its
// ordering is not checked.
func (s *Service) Collect(
	ctx context.Context,
	req CollectRentRequest,
) (*Rent, error) {
	startDate, err := core.ParseDate(req.RentStartDate)
	if err != nil {
		return nil, fmt.Errorf("rentStartDate: %w", err)
	}

	endDate, err := core.ParseDate(req.RentEndDate)
	if err != nil {
		return nil, fmt.Errorf("rentEndDate: %w", err)
	}

	rn := &Rent{
		ID:            uuid.New().String(),
		TenantID:      req.TenantID,
		UnitID:        req.UnitID,
		PaidAmount:    req.PaidAmount,
		RentStartDate: startDate,
		RentEndDate:   endDate,
		CreatedAt:     time.Now().UTC(),
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, rn); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("create rent: %w", core.ErrUnavailable)
		}
		return nil, err
	}

	return rn, nil
}

// ListOverdue returns rents whose window ended strictly before asOf. A rent
// ending exactly at asOf is not overdue.
func (s *Service) ListOverdue(
	ctx context.Context,
	asOf time.Time,
) ([]Rent, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	rents, err := s.repo.ListOverdue(ctx, asOf)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf(
				"list overdue rents: %w", core.ErrUnavailable,
			)
		}
		return nil, err
	}

	return rents, nil
}

func (s *Service) opContext(
	ctx context.Context,
) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
