package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/victormanase/apartment-rental-app/internal/config"
	"github.com/victormanase/apartment-rental-app/internal/metrics"
	"github.com/victormanase/apartment-rental-app/internal/rent"
)

// Scheduler runs the periodic overdue-rent scan. Each run queries rents whose
// window has ended, logs a summary per overdue rent, and updates the
// overdue_rents gauge.
type Scheduler struct {
	cron    *cron.Cron
	rents   *rent.Service
	metrics *metrics.Metrics
	config  config.JobsConfig
	logger  *slog.Logger
}

func NewScheduler(
	cfg config.JobsConfig,
	rents *rent.Service,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		rents:   rents,
		metrics: m,
		config:  cfg,
		logger:  logger.With("component", "overdue_scan"),
	}
}

func (s *Scheduler) Start() error {
	if !s.config.OverdueScanEnabled {
		s.logger.Info("overdue scan disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.config.OverdueScanSchedule, s.Scan)
	if err != nil {
		return fmt.Errorf(
			"schedule overdue scan %q: %w",
			s.config.OverdueScanSchedule,
			err,
		)
	}

	s.cron.Start()
	s.logger.Info("overdue scan scheduled",
		"schedule", s.config.OverdueScanSchedule,
	)
	return nil
}

// Stop halts the cron loop; the returned context is done once any in-flight
// run has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// Scan is one scheduler tick. It is also called directly by tests.
func (s *Scheduler) Scan() {
	now := time.Now().UTC()

	overdue, err := s.rents.ListOverdue(context.Background(), now)
	if err != nil {
		s.logger.Error("overdue scan failed", "error", err)
		return
	}

	if s.metrics != nil {
		s.metrics.OverdueRents.Set(float64(len(overdue)))
	}

	for _, rn := range overdue {
		s.logger.Info("rent overdue",
			"rent_id", rn.ID,
			"tenant_id", rn.TenantID,
			"unit_id", rn.UnitID,
			"rent_end_date", rn.RentEndDate.Format(time.RFC3339),
		)
	}

	s.logger.Info("overdue scan complete",
		"as_of", now.Format(time.RFC3339),
		"overdue", len(overdue),
	)
}
