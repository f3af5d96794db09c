package cron

import (
	"context"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	"medicore/services/notification"
	"medicore/utils"

	"go.uber.org/zap"
)

const (
	// DefaultReapInterval is how often the reaper scans.
	DefaultReapInterval = 60 * time.Second
	// DefaultPendingTimeout is how long a pending reservation may sit
	// unconfirmed before it is purged.
	DefaultPendingTimeout = 2 * time.Minute
)

// ExpiryReaper purges reservations left pending past the timeout. Each purge
// hard-deletes the row (an abandoned request has no history worth keeping)
// and tells the patient the doctor is not available. Runs on its own cadence,
// started once at boot.
type ExpiryReaper struct {
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
	Interval     time.Duration
	Timeout      time.Duration
}

// Start blocks until ctx is cancelled, scanning every Interval. A failed
// cycle is logged and never stops future cycles.
func (r *ExpiryReaper) Start(ctx context.Context) {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultReapInterval
	}
	logger := utils.GetLogger()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("expiry reaper shutdown signal received")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single scan. Failures are isolated per row: one bad
// reservation or one failed notification must not block the rest of the
// cycle.
func (r *ExpiryReaper) RunOnce(ctx context.Context) {
	logger := utils.GetLogger()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultPendingTimeout
	}
	cutoff := time.Now().Add(-timeout)

	stale, err := r.Appointments.FindStalePending(ctx, cutoff)
	if err != nil {
		logger.Error("expiry reaper scan failed", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	purged := 0
	for i := range stale {
		appt := stale[i]
		if err := r.Appointments.DeleteByID(ctx, appt.ID); err != nil {
			logger.Error("failed to purge stale appointment",
				zap.String("appointmentId", appt.ID), zap.Error(err))
			continue
		}
		purged++

		if err := r.Notifier.NotifyExpired(ctx, &appt); err != nil {
			logger.Warn("expiry notification failed",
				zap.String("appointmentId", appt.ID),
				zap.String("patientId", appt.PatientID), zap.Error(err))
		}
	}

	logger.Info("expiry reaper cycle complete",
		zap.Int("stale", len(stale)), zap.Int("purged", purged))
}
