package repositories

import (
	"context"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CartRepository interface {
	GetByID(ctx context.Context, cartItemId string) (*models.CartItem, error)
	GetByUserAndFood(ctx context.Context, userId string, foodId string) (*models.CartItem, error)
	ListByUser(ctx context.Context, userId string) ([]models.CartItem, error)
	CountByUser(ctx context.Context, userId string) (int64, error)
	Insert(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, cartItemId string) error
	ClearByUser(ctx context.Context, userId string) error
}

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(client *mongo.Client) CartRepository {
	return &mongoCartRepository{collection: database.OpenCollection(client, "cartItem")}
}

func (r *mongoCartRepository) GetByID(ctx context.Context, cartItemId string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.collection.FindOne(ctx, bson.M{"cart_item_id": cartItemId}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mongoCartRepository) GetByUserAndFood(ctx context.Context, userId string, foodId string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.collection.FindOne(ctx, bson.M{"user_id": userId, "food_id": foodId}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mongoCartRepository) ListByUser(ctx context.Context, userId string) ([]models.CartItem, error) {
	result, err := r.collection.Find(ctx, bson.M{"user_id": userId})
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := result.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoCartRepository) CountByUser(ctx context.Context, userId string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userId})
}

func (r *mongoCartRepository) Insert(ctx context.Context, item *models.CartItem) error {
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *mongoCartRepository) Update(ctx context.Context, item *models.CartItem) error {
	filter := bson.M{"cart_item_id": item.Cart_item_id}
	result, err := r.collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: bson.D{
		{Key: "quantity", Value: item.Quantity},
		{Key: "note", Value: item.Note},
		{Key: "updated_at", Value: item.Updated_at},
	}}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoCartRepository) Delete(ctx context.Context, cartItemId string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"cart_item_id": cartItemId})
	return err
}

func (r *mongoCartRepository) ClearByUser(ctx context.Context, userId string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userId})
	return err
}
