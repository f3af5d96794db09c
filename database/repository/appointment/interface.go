package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no appointment matches the query.
	ErrNotFound = errors.New("appointment not found")

	// ErrSlotConflict is returned when the partial unique index rejects an
	// insert because a non-cancelled appointment already occupies the
	// (doctor, hospital, date, startTime) tuple. This index is the
	// authoritative mutual-exclusion guard; every application-level check
	// before it is advisory.
	ErrSlotConflict = errors.New("slot already booked")
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status, cancelReason string) (*models.Appointment, error)
	DeleteByID(ctx context.Context, id string) error

	// ListForSlotGrid returns the non-cancelled reservations the allocator
	// overlays on a day's micro-slot grid.
	ListForSlotGrid(ctx context.Context, doctorID, hospitalID, date string) ([]models.Appointment, error)

	// FindActiveBySlot is the pre-insert double-booking re-check.
	FindActiveBySlot(ctx context.Context, doctorID, hospitalID, date, startTime string) (*models.Appointment, error)

	// ListByDoctorDateStatus serves the start-next state machine.
	ListByDoctorDateStatus(ctx context.Context, doctorID, date, status string) ([]models.Appointment, error)
	FindInProgressByDoctor(ctx context.Context, doctorID string) (*models.Appointment, error)

	// FindStalePending returns pending reservations created before cutoff,
	// for the expiry reaper.
	FindStalePending(ctx context.Context, cutoff time.Time) ([]models.Appointment, error)

	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB-backed AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
