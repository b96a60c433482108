package rent

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is the in-process backend used by tests and local
// development.
type MemoryRepository struct {
	mu    sync.RWMutex
	rents []Rent
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, rn *Rent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rents = append(r.rents, *rn)
	return nil
}

func (r *MemoryRepository) ListOverdue(
	_ context.Context,
	asOf time.Time,
) ([]Rent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	overdue := []Rent{}
	for _, rn := range r.rents {
		if rn.RentEndDate.Before(asOf) {
			overdue = append(overdue, rn)
		}
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		if !overdue[i].RentEndDate.Equal(overdue[j].RentEndDate) {
			return overdue[i].RentEndDate.Before(overdue[j].RentEndDate)
		}
		return overdue[i].ID < overdue[j].ID
	})

	return overdue, nil
}
