package tenant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

func validRequest() RegisterTenantRequest {
	return RegisterTenantRequest{
		FirstName:   "John",
		MiddleName:  "Q",
		LastName:    "Tenant",
		PhoneNumber: "+255-700-000-001",
		UnitID:      "U1",
		MoveInDate:  "2026-01-15",
	}
}

func TestService_Register(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, 0)

	tn, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, tn.ID)
	assert.Equal(t, "John", tn.FirstName)
	assert.Equal(t, "Q", tn.MiddleName)
	assert.Equal(t, "U1", tn.UnitID)
	assert.Equal(
		t,
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		tn.MoveInDate,
	)

	tenants, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, tn.ID, tenants[0].ID)
}

func TestService_RegisterMiddleNameOptional(t *testing.T) {
	svc := NewService(NewMemoryRepository(), 0)

	req := validRequest()
	req.MiddleName = ""

	tn, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, tn.MiddleName)
}

func TestService_RegisterAcceptsRFC3339MoveInDate(t *testing.T) {
	svc := NewService(NewMemoryRepository(), 0)

	req := validRequest()
	req.MoveInDate = "2026-01-15T08:00:00Z"

	tn, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(
		t,
		time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC),
		tn.MoveInDate,
	)
}

func TestService_RegisterInvalidMoveInDate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, 0)

	req := validRequest()
	req.MoveInDate = "not-a-date"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	tenants, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, tenants)
}
