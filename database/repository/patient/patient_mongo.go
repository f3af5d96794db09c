package patientRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoPatientRepo) GetByID(ctx context.Context, id string) (*models.PatientProfile, error) {
	var p models.PatientProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return &p, nil
}

func (r *mongoPatientRepo) AddHospitalRecord(ctx context.Context, patientID string, record models.HospitalRecord) (bool, error) {
	// The filter excludes patients that already hold a record for this
	// hospital, making the push a conditional write.
	filter := bson.M{
		"id":                 patientID,
		"records.hospitalId": bson.M{"$ne": record.HospitalID},
	}
	update := bson.M{
		"$push": bson.M{"records": record},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("add hospital record: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *mongoPatientRepo) TouchLastVisit(ctx context.Context, patientID, hospitalID string, at time.Time) error {
	filter := bson.M{
		"id":                 patientID,
		"records.hospitalId": hospitalID,
	}
	update := bson.M{
		"$set": bson.M{
			"records.$.lastVisit": at,
			"updatedAt":           time.Now(),
		},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("touch last visit: %w", err)
	}
	return nil
}
