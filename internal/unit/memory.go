package unit

import (
	"context"
	"sync"
)

// MemoryRepository is the in-process backend used by tests and local
// development.
type MemoryRepository struct {
	mu    sync.RWMutex
	units []Unit
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, u *Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ConditionImages == nil {
		u.ConditionImages = StringList{}
	}

	r.units = append(r.units, *u)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Unit, len(r.units))
	copy(out, r.units)
	return out, nil
}
