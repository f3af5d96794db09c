package hospitalRepo

import (
	"context"
	"errors"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("hospital not found")

type HospitalRepository interface {
	GetByID(ctx context.Context, id string) (*models.Hospital, error)
}

type mongoHospitalRepo struct {
	coll *mongo.Collection
}

// NewMongoHospitalRepo constructs a MongoDB-backed HospitalRepository.
func NewMongoHospitalRepo() HospitalRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoHospitalRepo{
		coll: db.Collection("hospitals"),
	}
}
