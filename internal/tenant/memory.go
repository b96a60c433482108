package tenant

import (
	"context"
	"sync"
)

// MemoryRepository is the in-process backend used by tests and local
// development.
type MemoryRepository struct {
	mu      sync.RWMutex
	tenants []Tenant
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Create(_ context.Context, t *Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tenants = append(r.tenants, *t)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tenant, len(r.tenants))
	copy(out, r.tenants)
	return out, nil
}
