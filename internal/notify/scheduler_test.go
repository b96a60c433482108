package notify

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victormanase/apartment-rental-app/internal/config"
	"github.com/victormanase/apartment-rental-app/internal/metrics"
	"github.com/victormanase/apartment-rental-app/internal/rent"
)

func TestScheduler_ScanUpdatesGauge(t *testing.T) {
	repo := rent.NewMemoryRepository()
	rents := rent.NewService(repo, 0)
	m := metrics.New()
	logger := slog.New(slog.DiscardHandler)

	sched := NewScheduler(config.JobsConfig{}, rents, m, logger)

	sched.Scan()
	assert.Equal(t, 0.0, testutil.ToFloat64(m.OverdueRents))

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	_, err := rents.Collect(context.Background(), rent.CollectRentRequest{
		TenantID:      "T1",
		UnitID:        "U1",
		PaidAmount:    500,
		RentStartDate: "2026-01-01",
		RentEndDate:   yesterday,
	})
	require.NoError(t, err)

	sched.Scan()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OverdueRents))
}

func TestScheduler_StartDisabled(t *testing.T) {
	rents := rent.NewService(rent.NewMemoryRepository(), 0)
	logger := slog.New(slog.DiscardHandler)

	sched := NewScheduler(
		config.JobsConfig{OverdueScanEnabled: false},
		rents,
		nil,
		logger,
	)

	require.NoError(t, sched.Start())
	<-sched.Stop().Done()
}

func TestScheduler_StartBadSchedule(t *testing.T) {
	rents := rent.NewService(rent.NewMemoryRepository(), 0)
	logger := slog.New(slog.DiscardHandler)

	sched := NewScheduler(
		config.JobsConfig{
			OverdueScanEnabled:  true,
			OverdueScanSchedule: "not a cron spec",
		},
		rents,
		nil,
		logger,
	)

	require.Error(t, sched.Start())
}
