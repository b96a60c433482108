package unit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

// fakeStore records stores/removals and can be told to fail after n writes.
type fakeStore struct {
	stored    []string
	removed   []string
	failAfter int
}

func (f *fakeStore) Store(name string, _ []byte) (string, error) {
	if f.failAfter >= 0 && len(f.stored) >= f.failAfter {
		return "", fmt.Errorf("write %s: %w", name, core.ErrStorageUnavailable)
	}
	path := "/uploads/" + name
	f.stored = append(f.stored, path)
	return path, nil
}

func (f *fakeStore) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

type failingRepo struct{}

func (failingRepo) Create(context.Context, *Unit) error {
	return errors.New("connection reset")
}

func (failingRepo) List(context.Context) ([]Unit, error) {
	return nil, errors.New("connection reset")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestService(repo Repository, store FileStore) *Service {
	return NewService(repo, store, 5, 0, discardLogger())
}

func attachments(n int) []Attachment {
	files := make([]Attachment, n)
	for i := range files {
		files[i] = Attachment{
			Name: fmt.Sprintf("photo-%d.jpg", i),
			Data: []byte{byte(i)},
		}
	}
	return files
}

func validRequest() CreateUnitRequest {
	return CreateUnitRequest{
		UnitID:     "U1",
		UnitName:   "Sunset 1A",
		UnitSize:   "2BR",
		RentAmount: 500,
	}
}

func TestService_CreateNoFiles(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo, &fakeStore{failAfter: -1})

	u, err := svc.Create(context.Background(), validRequest(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "U1", u.UnitID)
	require.NotNil(t, u.ConditionImages)
	assert.Empty(t, u.ConditionImages)
}

func TestService_CreatePreservesAttachmentOrder(t *testing.T) {
	repo := NewMemoryRepository()
	store := &fakeStore{failAfter: -1}
	svc := newTestService(repo, store)

	u, err := svc.Create(context.Background(), validRequest(), attachments(3))
	require.NoError(t, err)

	assert.Equal(t, StringList{
		"/uploads/photo-0.jpg",
		"/uploads/photo-1.jpg",
		"/uploads/photo-2.jpg",
	}, u.ConditionImages)

	units, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, u.ConditionImages, units[0].ConditionImages)
}

func TestService_CreateTooManyAttachments(t *testing.T) {
	repo := NewMemoryRepository()
	store := &fakeStore{failAfter: -1}
	svc := newTestService(repo, store)

	_, err := svc.Create(context.Background(), validRequest(), attachments(6))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTooManyAttachments)

	// Rejected before anything was written: no files, no record.
	assert.Empty(t, store.stored)
	units, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, units)
}

func TestService_CreateAtAttachmentLimit(t *testing.T) {
	repo := NewMemoryRepository()
	svc := newTestService(repo, &fakeStore{failAfter: -1})

	u, err := svc.Create(context.Background(), validRequest(), attachments(5))
	require.NoError(t, err)
	assert.Len(t, u.ConditionImages, 5)
}

func TestService_CreateStorageFailureCleansUp(t *testing.T) {
	repo := NewMemoryRepository()
	store := &fakeStore{failAfter: 2}
	svc := newTestService(repo, store)

	_, err := svc.Create(context.Background(), validRequest(), attachments(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrStorageUnavailable)

	// The two files written before the failure were removed again.
	assert.ElementsMatch(t, store.stored, store.removed)

	units, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, units)
}

func TestService_CreateRecordFailureCleansUp(t *testing.T) {
	store := &fakeStore{failAfter: -1}
	svc := newTestService(failingRepo{}, store)

	_, err := svc.Create(context.Background(), validRequest(), attachments(2))
	require.Error(t, err)

	// Stored files do not outlive the failed record write.
	assert.ElementsMatch(t, store.stored, store.removed)
}
