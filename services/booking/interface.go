package booking

import (
	"context"

	appointmentRepo "medicore/database/repository/appointment"
	doctorRepo "medicore/database/repository/doctor"
	hospitalRepo "medicore/database/repository/hospital"
	patientRepo "medicore/database/repository/patient"
	"medicore/models"
	"medicore/services/notification"
)

// BookingService orchestrates reservations end-to-end: availability views,
// booking attempts, status transitions, and the doctor's queue advance.
type BookingService interface {
	HourlyAvailability(ctx context.Context, doctorID, hospitalID, date string) ([]models.HourBlock, error)
	Book(ctx context.Context, patientID string, input models.BookingInput) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status, reason, actorRole string) (*models.Appointment, error)
	StartNext(ctx context.Context, doctorUserID string) (*models.Appointment, error)
}

// ReminderScheduler queues a visit reminder once an appointment is
// confirmed. Implemented by the asynq-backed worker in cron.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt *models.Appointment) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Doctors      doctorRepo.DoctorRepository
	Hospitals    hospitalRepo.HospitalRepository
	Patients     patientRepo.PatientRepository
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService
	Reminders    ReminderScheduler // optional

	SlotMinutes int // 0 means scheduling.DefaultSlotMinutes
	HourlyLimit int // 0 means scheduling.DefaultHourlyLimit
}
