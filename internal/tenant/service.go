package tenant

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

func (s *Service) Register(
	ctx context.Context,
	req RegisterTenantRequest,
) (*Tenant, error) {
	moveInDate, err := core.ParseDate(req.MoveInDate)
	if err != nil {
		return nil, fmt.Errorf("moveInDate: %w", err)
	}

	t := &Tenant{
		ID:          uuid.New().String(),
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		UnitID:      req.UnitID,
		MoveInDate:  moveInDate,
		CreatedAt:   time.Now().UTC(),
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, t); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("create tenant: %w", core.ErrUnavailable)
		}
		return nil, err
	}

	return t, nil
}

func (s *Service) List(ctx context.Context) ([]Tenant, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	tenants, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("list tenants: %w", core.ErrUnavailable)
		}
		return nil, err
	}

	return tenants, nil
}

func (s *Service) opContext(
	ctx context.Context,
) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
