package notificationRepo

import (
	"context"
	"fmt"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationStore persists inbox notifications. The booking core only
// depends on the interface; the inbox itself belongs to the surrounding
// system.
type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
}

type mongoNotificationStore struct {
	coll *mongo.Collection
}

// NewMongoNotificationStore constructs a MongoDB-backed NotificationStore.
func NewMongoNotificationStore() NotificationStore {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoNotificationStore{
		coll: db.Collection("notifications"),
	}
}

func (s *mongoNotificationStore) Insert(ctx context.Context, n *models.Notification) error {
	if _, err := s.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
