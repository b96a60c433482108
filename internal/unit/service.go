package unit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

// Service creates unit records together with their condition photos. Photos
// are written before the record; if the record write fails the photos are
// removed again so no record ever references files and no files outlive a
// failed creation on the happy path.
type Service struct {
	repo     Repository
	store    FileStore
	maxFiles int
	timeout  time.Duration
	logger   *slog.Logger
}

func NewService(
	repo Repository,
	store FileStore,
	maxFiles int,
	timeout time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		store:    store,
		maxFiles: maxFiles,
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *Service) Create(
	ctx context.Context,
	req CreateUnitRequest,
	files []Attachment,
) (*Unit, error) {
	// Attachment count is checked before any file touches disk, so an
	// over-limit request leaves no partial state behind.
	if len(files) > s.maxFiles {
		return nil, fmt.Errorf(
			"create unit: %d attachments: %w",
			len(files),
			core.ErrTooManyAttachments,
		)
	}

	stored := make(StringList, 0, len(files))
	for _, f := range files {
		path, err := s.store.Store(f.Name, f.Data)
		if err != nil {
			s.removeStored(stored)
			return nil, fmt.Errorf("store attachment: %w", err)
		}
		stored = append(stored, path)
	}

	u := &Unit{
		ID:              uuid.New().String(),
		UnitID:          req.UnitID,
		UnitName:        req.UnitName,
		UnitSize:        req.UnitSize,
		RentAmount:      req.RentAmount,
		ConditionImages: stored,
		CreatedAt:       time.Now().UTC(),
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.repo.Create(ctx, u); err != nil {
		s.removeStored(stored)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("create unit: %w", core.ErrUnavailable)
		}
		return nil, err
	}

	return u, nil
}

func (s *Service) List(ctx context.Context) ([]Unit, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	units, err := s.repo.List(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("list units: %w", core.ErrUnavailable)
		}
		return nil, err
	}

	return units, nil
}

// removeStored is best-effort cleanup: a leftover orphan file is preferable
// to masking the original failure.
func (s *Service) removeStored(paths StringList) {
	for _, p := range paths {
		if err := s.store.Remove(p); err != nil {
			s.logger.Warn("orphaned attachment not removed",
				"path", p,
				"error", err,
			)
		}
	}
}

func (s *Service) opContext(
	ctx context.Context,
) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}
