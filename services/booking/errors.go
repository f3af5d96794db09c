package booking

import "errors"

var (
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrSelfBooking      = errors.New("doctors cannot book appointments with themselves")
	ErrHospitalRequired = errors.New("hospital is required")
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrSlotTaken covers both the advisory re-check and the storage-level
	// unique-index conflict: exactly one of two concurrent attempts for the
	// same slot gets the appointment, the other gets this.
	ErrSlotTaken = errors.New("slot already booked")

	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)
