package repositories

import (
	"context"
	"regexp"
	"time"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodRepository interface {
	List(ctx context.Context) ([]models.Food, error)
	GetByID(ctx context.Context, foodId string) (*models.Food, error)
	ListByCategory(ctx context.Context, categoryId string) ([]models.Food, error)
	ListPopular(ctx context.Context) ([]models.Food, error)
	ListDiscounted(ctx context.Context) ([]models.Food, error)
	ListFavorites(ctx context.Context) ([]models.Food, error)
	Search(ctx context.Context, query string) ([]models.Food, error)
	SetFavorite(ctx context.Context, foodId string, isFavorite bool) error
	InsertMany(ctx context.Context, foods []models.Food) error
	Count(ctx context.Context) (int64, error)
}

type mongoFoodRepository struct {
	collection *mongo.Collection
}

func NewFoodRepository(client *mongo.Client) FoodRepository {
	return &mongoFoodRepository{collection: database.OpenCollection(client, "food")}
}

func (r *mongoFoodRepository) List(ctx context.Context) ([]models.Food, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *mongoFoodRepository) GetByID(ctx context.Context, foodId string) (*models.Food, error) {
	var food models.Food
	err := r.collection.FindOne(ctx, bson.M{"food_id": foodId}).Decode(&food)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *mongoFoodRepository) ListByCategory(ctx context.Context, categoryId string) ([]models.Food, error) {
	return r.find(ctx, bson.M{"category_id": categoryId}, nil)
}

func (r *mongoFoodRepository) ListPopular(ctx context.Context) ([]models.Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(10)
	return r.find(ctx, bson.M{"is_popular": true}, opts)
}

func (r *mongoFoodRepository) ListDiscounted(ctx context.Context) ([]models.Food, error) {
	opts := options.Find().SetSort(bson.D{{Key: "discount_percent", Value: -1}})
	return r.find(ctx, bson.M{"discount_percent": bson.M{"$gt": 0}}, opts)
}

func (r *mongoFoodRepository) ListFavorites(ctx context.Context) ([]models.Food, error) {
	return r.find(ctx, bson.M{"is_favorite": true}, nil)
}

func (r *mongoFoodRepository) Search(ctx context.Context, query string) ([]models.Food, error) {
	pattern := searchPattern(query)
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"description": pattern},
	}}
	return r.find(ctx, filter, nil)
}

// searchPattern builds a case-insensitive substring matcher. The query
// is user input, so regex metacharacters are escaped rather than
// interpreted.
func searchPattern(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}

func (r *mongoFoodRepository) SetFavorite(ctx context.Context, foodId string, isFavorite bool) error {
	updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"food_id": foodId},
		bson.D{{Key: "$set", Value: bson.D{{Key: "is_favorite", Value: isFavorite}, {Key: "updated_at", Value: updated_at}}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoFoodRepository) InsertMany(ctx context.Context, foods []models.Food) error {
	docs := []interface{}{}
	for i := range foods {
		docs = append(docs, foods[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *mongoFoodRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *mongoFoodRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Food, error) {
	var result *mongo.Cursor
	var err error
	if opts != nil {
		result, err = r.collection.Find(ctx, filter, opts)
	} else {
		result, err = r.collection.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	var foods []models.Food
	if err := result.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}
