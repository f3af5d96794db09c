package doctorRepo

import (
	"context"
	"errors"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("doctor not found")

type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*models.DoctorProfile, error)
	GetByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a MongoDB-backed DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoDoctorRepo{
		coll: db.Collection("doctors"),
	}
}
