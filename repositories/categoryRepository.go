package repositories

import (
	"context"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, categoryId string) (*models.Category, error)
	InsertMany(ctx context.Context, categories []models.Category) error
	Count(ctx context.Context) (int64, error)
}

type mongoCategoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(client *mongo.Client) CategoryRepository {
	return &mongoCategoryRepository{collection: database.OpenCollection(client, "category")}
}

func (r *mongoCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	result, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var categories []models.Category
	if err := result.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *mongoCategoryRepository) GetByID(ctx context.Context, categoryId string) (*models.Category, error) {
	var category models.Category
	err := r.collection.FindOne(ctx, bson.M{"category_id": categoryId}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *mongoCategoryRepository) InsertMany(ctx context.Context, categories []models.Category) error {
	docs := []interface{}{}
	for i := range categories {
		docs = append(docs, categories[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *mongoCategoryRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
