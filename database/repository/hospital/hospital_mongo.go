package hospitalRepo

import (
	"context"
	"fmt"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoHospitalRepo) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	var hosp models.Hospital
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&hosp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find hospital: %w", err)
	}
	return &hosp, nil
}
