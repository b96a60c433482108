package user

import (
	"context"
	"fmt"
	"sync"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

// MemoryRepository is the in-process backend used by tests and local
// development. The mutex gives it the same atomic uniqueness guarantee the
// database backends get from their unique indexes.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

func (r *MemoryRepository) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.Username]; exists {
		return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}

	r.users[u.Username] = *u
	return nil
}

func (r *MemoryRepository) GetByUsername(
	_ context.Context,
	username string,
) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}

	return &u, nil
}

func (r *MemoryRepository) UpdatePassword(
	_ context.Context,
	username, passwordHash string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	u.PasswordHash = passwordHash
	r.users[username] = u
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, username)
	return nil
}
