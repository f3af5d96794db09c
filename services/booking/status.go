package booking

import (
	"context"
	"errors"
	"sort"
	"time"

	appointmentRepo "medicore/database/repository/appointment"
	"medicore/models"
	"medicore/services/notification"
	"medicore/services/scheduling"
	"medicore/utils"

	"go.uber.org/zap"
)

var allowedTransitions = map[string]bool{
	models.AppointmentConfirmed:  true,
	models.AppointmentCompleted:  true,
	models.AppointmentInProgress: true,
	models.AppointmentCancelled:  true, // also covers rejection
}

// UpdateStatus moves an appointment into one of the permitted states and
// fires the matching notifications. The write and the notifications are one
// logical operation: if the write fails nothing is sent.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, appointmentID, status, reason, actorRole string) (*models.Appointment, error) {
	if !allowedTransitions[status] {
		return nil, ErrInvalidStatus
	}

	updated, err := s.Appointments.UpdateStatus(ctx, appointmentID, status, reason)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	logger := utils.GetLogger()

	// The doctor emission needs the account id off the profile; a failed
	// lookup costs that emission, not the committed transition.
	var doctor *models.DoctorProfile
	if actorRole != notification.RolePatient {
		d, err := s.Doctors.GetByID(ctx, updated.DoctorID)
		if err != nil {
			logger.Warn("doctor lookup for status notification failed",
				zap.String("appointmentId", updated.ID), zap.String("doctorId", updated.DoctorID), zap.Error(err))
		} else {
			doctor = d
		}
	}

	if err := s.Notifier.NotifyStatusChange(ctx, updated, doctor, reason, actorRole); err != nil {
		logger.Warn("status change notification failed",
			zap.String("appointmentId", updated.ID), zap.String("status", status), zap.Error(err))
	}

	if status == models.AppointmentConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, updated); err != nil {
			logger.Warn("reminder scheduling failed",
				zap.String("appointmentId", updated.ID), zap.Error(err))
		}
	}

	return updated, nil
}

// StartNext force-completes whatever the doctor currently has in progress,
// then promotes today's earliest confirmed appointment to in-progress.
// Nothing to promote is a no-op success, not an error.
func (s *DefaultBookingService) StartNext(ctx context.Context, doctorUserID string) (*models.Appointment, error) {
	doctor, err := s.Doctors.GetByUserID(ctx, doctorUserID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	if current, err := s.Appointments.FindInProgressByDoctor(ctx, doctor.ID); err == nil {
		if _, err := s.UpdateStatus(ctx, current.ID, models.AppointmentCompleted, "", notification.RoleDoctor); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	confirmed, err := s.Appointments.ListByDoctorDateStatus(ctx, doctor.ID, today, models.AppointmentConfirmed)
	if err != nil {
		return nil, err
	}
	if len(confirmed) == 0 {
		return nil, nil
	}

	sort.Slice(confirmed, func(i, j int) bool {
		return startMinutes(confirmed[i].StartTime) < startMinutes(confirmed[j].StartTime)
	})

	return s.UpdateStatus(ctx, confirmed[0].ID, models.AppointmentInProgress, "", notification.RoleDoctor)
}

// startMinutes orders appointments by their display start time; unparseable
// rows sort last.
func startMinutes(label string) int {
	t, err := scheduling.ParseTimeOfDay(label)
	if err != nil {
		return 24 * 60
	}
	return t.Minutes()
}
