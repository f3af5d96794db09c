package models

import "time"

// Notification event types emitted by the booking core.
const (
	EventAppointmentRequest   = "appointment_request"
	EventAppointmentConfirmed = "appointment_confirmed"
	EventAppointmentCompleted = "appointment_completed"
	EventAppointmentCancelled = "appointment_cancelled"
	EventAppointmentStatus    = "appointment_status"
)

// Notification is the persisted message delivered to a user's inbox.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"userId" json:"userId"`
	Role      string         `bson:"role" json:"role"` // "patient", "doctor", "helpdesk"
	Type      string         `bson:"type" json:"type"`
	Title     string         `bson:"title" json:"title"`
	Body      string         `bson:"body" json:"body"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// RealtimeEvent is the payload published to the role-addressed rooms.
type RealtimeEvent struct {
	Type          string `json:"type"`
	AppointmentID string `json:"appointmentId,omitempty"`
	Status        string `json:"status,omitempty"`
	Message       string `json:"message,omitempty"`
}

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientID     string `json:"patientId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	FireDate      string `json:"fireDate"`
}
