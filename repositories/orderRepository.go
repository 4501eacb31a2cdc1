package repositories

import (
	"context"
	"time"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderId string) (*models.Order, error)
	ListByUser(ctx context.Context, userId string) ([]models.Order, error)
	ListByStatus(ctx context.Context, userId string, status models.OrderStatus) ([]models.Order, error)
	Insert(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, orderId string, status models.OrderStatus) error
}

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(client *mongo.Client) OrderRepository {
	return &mongoOrderRepository{collection: database.OpenCollection(client, "order")}
}

func (r *mongoOrderRepository) GetByID(ctx context.Context, orderId string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *mongoOrderRepository) ListByUser(ctx context.Context, userId string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	result, err := r.collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := result.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepository) ListByStatus(ctx context.Context, userId string, status models.OrderStatus) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	result, err := r.collection.Find(ctx, bson.M{"user_id": userId, "status": status}, opts)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := result.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *mongoOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

func (r *mongoOrderRepository) UpdateStatus(ctx context.Context, orderId string, status models.OrderStatus) error {
	updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"order_id": orderId},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}, {Key: "updated_at", Value: updated_at}}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
