package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) ListForSlotGrid(ctx context.Context, doctorID, hospitalID, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId":   doctorID,
		"hospitalId": hospitalID,
		"date":       date,
		"status":     bson.M{"$ne": models.AppointmentCancelled},
	}
	return r.list(ctx, filter)
}

func (r *mongoAppointmentRepo) FindActiveBySlot(ctx context.Context, doctorID, hospitalID, date, startTime string) (*models.Appointment, error) {
	filter := bson.M{
		"doctorId":   doctorID,
		"hospitalId": hospitalID,
		"date":       date,
		"startTime":  startTime,
		"status":     bson.M{"$ne": models.AppointmentCancelled},
	}
	var appt models.Appointment
	if err := r.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find appointment for slot: %w", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) ListByDoctorDateStatus(ctx context.Context, doctorID, date, status string) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"status":   status,
	}
	return r.list(ctx, filter)
}

func (r *mongoAppointmentRepo) FindInProgressByDoctor(ctx context.Context, doctorID string) (*models.Appointment, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"status":   models.AppointmentInProgress,
	}
	var appt models.Appointment
	if err := r.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find in-progress appointment: %w", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) FindStalePending(ctx context.Context, cutoff time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"status":    models.AppointmentPending,
		"createdAt": bson.M{"$lt": cutoff},
	}
	return r.list(ctx, filter)
}

func (r *mongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	defer cur.Close(ctx)

	var appts []models.Appointment
	if err := cur.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}
