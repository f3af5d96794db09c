package notification

import (
	"context"

	"medicore/models"
)

// Roles used for room addressing.
const (
	RolePatient  = "patient"
	RoleDoctor   = "doctor"
	RoleHelpdesk = "helpdesk"
)

// EventPublisher fans a realtime event out to the room addressed by
// (role, entityID). The transport behind it is an external collaborator;
// the redis publisher in this package is the default adapter.
type EventPublisher interface {
	Publish(ctx context.Context, role, entityID string, event models.RealtimeEvent) error
}

// NotificationService emits the booking core's notification side effects.
// Implementations must be safe to call after the reservation write has
// committed: failures are for the caller to log and swallow, never to roll
// back a booking.
type NotificationService interface {
	// NotifyAppointmentRequest goes to the doctor and every helpdesk
	// account of the hospital when a booking is created.
	NotifyAppointmentRequest(ctx context.Context, appt *models.Appointment, doctor *models.DoctorProfile, hospital *models.Hospital) error

	// NotifyStatusChange goes to the patient (and the doctor's account,
	// unless the transition was patient-initiated) on every transition,
	// plus a generic status broadcast. A nil doctor skips the doctor
	// emission.
	NotifyStatusChange(ctx context.Context, appt *models.Appointment, doctor *models.DoctorProfile, reason, actorRole string) error

	// NotifyExpired tells the patient their unconfirmed booking was purged.
	NotifyExpired(ctx context.Context, appt *models.Appointment) error

	// SendReminder delivers a scheduled visit reminder to the patient.
	SendReminder(ctx context.Context, payload models.ReminderPayload) error
}
