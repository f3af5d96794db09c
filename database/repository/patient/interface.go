package patientRepo

import (
	"context"
	"errors"
	"time"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("patient not found")

type PatientRepository interface {
	GetByID(ctx context.Context, id string) (*models.PatientProfile, error)

	// AddHospitalRecord appends the record only if the patient has none for
	// that hospital yet, so rapid repeat bookings cannot mint duplicate MRNs.
	// Returns false when a record already existed.
	AddHospitalRecord(ctx context.Context, patientID string, record models.HospitalRecord) (bool, error)

	TouchLastVisit(ctx context.Context, patientID, hospitalID string, at time.Time) error
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a MongoDB-backed PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoPatientRepo{
		coll: db.Collection("patients"),
	}
}
