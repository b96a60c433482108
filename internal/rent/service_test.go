package rent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

func collectRequest(endDate string) CollectRentRequest {
	return CollectRentRequest{
		TenantID:      "T1",
		UnitID:        "U1",
		PaidAmount:    500,
		RentStartDate: "2026-01-01",
		RentEndDate:   endDate,
	}
}

func TestService_Collect(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, 0)

	rn, err := svc.Collect(context.Background(), collectRequest("2026-01-31"))
	require.NoError(t, err)

	assert.NotEmpty(t, rn.ID)
	assert.Equal(t, "T1", rn.TenantID)
	assert.Equal(t, 500.0, rn.PaidAmount)
	assert.Equal(
		t,
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		rn.RentEndDate,
	)
}

func TestService_CollectInvalidDates(t *testing.T) {
	svc := NewService(NewMemoryRepository(), 0)

	req := collectRequest("2026-01-31")
	req.RentStartDate = "soon"
	_, err := svc.Collect(context.Background(), req)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	req = collectRequest("eventually")
	_, err = svc.Collect(context.Background(), req)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestService_CollectDoesNotOrderWindow(t *testing.T) {
	svc := NewService(NewMemoryRepository(), 0)

	// An inverted window is accepted as-is.
	req := collectRequest("2025-12-01")
	rn, err := svc.Collect(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, rn.RentEndDate.Before(rn.RentStartDate))
}

func TestService_ListOverdueStrictBoundary(t *testing.T) {
	svc := NewService(NewMemoryRepository(), 0)
	ctx := context.Background()

	_, err := svc.Collect(ctx, collectRequest("2026-01-31"))
	require.NoError(t, err)

	boundary := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	// A rent ending exactly at asOf is not overdue.
	overdue, err := svc.ListOverdue(ctx, boundary)
	require.NoError(t, err)
	assert.Empty(t, overdue)

	overdue, err = svc.ListOverdue(ctx, boundary.Add(time.Second))
	require.NoError(t, err)
	assert.Len(t, overdue, 1)

	overdue, err = svc.ListOverdue(ctx, boundary.AddDate(0, 0, -10))
	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestService_ListOverdueOrdering(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, 0)
	ctx := context.Background()

	endDates := []string{"2026-03-01", "2026-01-01", "2026-02-01"}
	for _, end := range endDates {
		_, err := svc.Collect(ctx, collectRequest(end))
		require.NoError(t, err)
	}

	// Two rents sharing the earliest end date, to exercise the id tiebreak.
	for i := 0; i < 2; i++ {
		_, err := svc.Collect(ctx, collectRequest("2026-01-01"))
		require.NoError(t, err)
	}

	overdue, err := svc.ListOverdue(
		ctx,
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.Len(t, overdue, 5)

	for i := 1; i < len(overdue); i++ {
		prev, cur := overdue[i-1], overdue[i]
		ordered := prev.RentEndDate.Before(cur.RentEndDate) ||
			(prev.RentEndDate.Equal(cur.RentEndDate) && prev.ID < cur.ID)
		assert.True(t, ordered, fmt.Sprintf(
			"rents out of order at %d: %s then %s", i, prev.ID, cur.ID,
		))
	}
}
