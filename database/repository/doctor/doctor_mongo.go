package doctorRepo

import (
	"context"
	"fmt"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoDoctorRepo) GetByID(ctx context.Context, id string) (*models.DoctorProfile, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoDoctorRepo) GetByUserID(ctx context.Context, userID string) (*models.DoctorProfile, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *mongoDoctorRepo) findOne(ctx context.Context, filter bson.M) (*models.DoctorProfile, error) {
	var doc models.DoctorProfile
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	return &doc, nil
}
