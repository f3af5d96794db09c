package models

import "time"

// Appointment lifecycle states. Cancellation and rejection share one terminal
// state; the reason field distinguishes them for display.
const (
	AppointmentPending    = "pending"
	AppointmentConfirmed  = "confirmed"
	AppointmentInProgress = "in-progress"
	AppointmentCompleted  = "completed"
	AppointmentCancelled  = "cancelled"
)

// Appointment is the persisted reservation occupying exactly one micro-slot.
// For a given (doctorId, hospitalId, date, startTime) at most one
// non-cancelled row may exist; the appointments collection enforces this with
// a partial unique index.
type Appointment struct {
	ID         string `bson:"id" json:"id"`
	PatientID  string `bson:"patientId" json:"patientId"`
	DoctorID   string `bson:"doctorId" json:"doctorId"`
	HospitalID string `bson:"hospitalId" json:"hospitalId"`
	Date       string `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime  string `bson:"startTime" json:"startTime"` // "H:MM AM/PM", exact micro-slot
	EndTime    string `bson:"endTime" json:"endTime"`
	Status     string `bson:"status" json:"status"`
	Type       string `bson:"type,omitempty" json:"type,omitempty"` // "online" | "offline"
	Urgency    string `bson:"urgency,omitempty" json:"urgency,omitempty"`
	Symptoms   string `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Reason     string `bson:"reason,omitempty" json:"reason,omitempty"`
	MRN        string `bson:"mrn,omitempty" json:"mrn,omitempty"`

	// PatientDetails overrides the profile data when staff books on behalf
	// of someone without an account.
	PatientDetails *ManualPatientDetails `bson:"patientDetails,omitempty" json:"patientDetails,omitempty"`

	CancelReason string    `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ManualPatientDetails is a staff-supplied patient override.
type ManualPatientDetails struct {
	Name  string `bson:"name" json:"name"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Age   int    `bson:"age,omitempty" json:"age,omitempty"`
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != AppointmentCancelled
}

// BookingInput is the request payload for booking an appointment.
type BookingInput struct {
	DoctorID   string                `json:"doctorId" binding:"required"`
	HospitalID string                `json:"hospitalId"`
	Date       string                `json:"date" binding:"required"`
	TimeSlot   string                `json:"timeSlot" binding:"required"` // hour label or exact micro-slot label
	Symptoms   string                `json:"symptoms"`
	Reason     string                `json:"reason"`
	Type       string                `json:"type"`
	Urgency    string                `json:"urgency"`
	Patient    *ManualPatientDetails `json:"patientDetails"`
}

// HourBlock is the patient-facing aggregate of the micro-slots whose start
// falls in one clock hour. Derived on demand, never persisted.
type HourBlock struct {
	Hour           int    `json:"hour"` // 24h bucket key
	Label          string `json:"label"`
	TotalCapacity  int    `json:"totalCapacity"`
	BookedCount    int    `json:"bookedCount"`
	AvailableCount int    `json:"availableCount"`
	IsFull         bool   `json:"isFull"`
}
