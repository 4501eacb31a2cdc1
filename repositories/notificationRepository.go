package repositories

import (
	"context"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userId string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userId string, notificationId string) error
}

type mongoNotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(client *mongo.Client) NotificationRepository {
	return &mongoNotificationRepository{collection: database.OpenCollection(client, "notification")}
}

func (r *mongoNotificationRepository) Insert(ctx context.Context, notification *models.Notification) error {
	_, err := r.collection.InsertOne(ctx, notification)
	return err
}

func (r *mongoNotificationRepository) ListByUser(ctx context.Context, userId string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	result, err := r.collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	var notifications []models.Notification
	if err := result.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *mongoNotificationRepository) MarkRead(ctx context.Context, userId string, notificationId string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"notification_id": notificationId, "user_id": userId},
		bson.D{{Key: "$set", Value: bson.D{{Key: "is_read", Value: true}}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
