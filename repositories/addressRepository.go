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

type AddressRepository interface {
	GetByID(ctx context.Context, addressId string) (*models.Address, error)
	ListByUser(ctx context.Context, userId string) ([]models.Address, error)
	GetDefault(ctx context.Context, userId string) (*models.Address, error)
	Insert(ctx context.Context, address *models.Address) error
	Update(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, addressId string) error
	ClearDefaults(ctx context.Context, userId string) error
	DeleteAllByUser(ctx context.Context, userId string) error
}

type mongoAddressRepository struct {
	collection *mongo.Collection
}

func NewAddressRepository(client *mongo.Client) AddressRepository {
	return &mongoAddressRepository{collection: database.OpenCollection(client, "address")}
}

func (r *mongoAddressRepository) GetByID(ctx context.Context, addressId string) (*models.Address, error) {
	var address models.Address
	err := r.collection.FindOne(ctx, bson.M{"address_id": addressId}).Decode(&address)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

// ListByUser returns the default address first, then the rest newest
// first. The ordering is part of the contract.
func (r *mongoAddressRepository) ListByUser(ctx context.Context, userId string) ([]models.Address, error) {
	opts := options.Find().SetSort(bson.D{{Key: "is_default", Value: -1}, {Key: "_id", Value: -1}})
	result, err := r.collection.Find(ctx, bson.M{"user_id": userId}, opts)
	if err != nil {
		return nil, err
	}
	var addresses []models.Address
	if err := result.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *mongoAddressRepository) GetDefault(ctx context.Context, userId string) (*models.Address, error) {
	var address models.Address
	err := r.collection.FindOne(ctx, bson.M{"user_id": userId, "is_default": true}).Decode(&address)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *mongoAddressRepository) Insert(ctx context.Context, address *models.Address) error {
	_, err := r.collection.InsertOne(ctx, address)
	return err
}

func (r *mongoAddressRepository) Update(ctx context.Context, address *models.Address) error {
	filter := bson.M{"address_id": address.Address_id}
	result, err := r.collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: bson.D{
		{Key: "label", Value: address.Label},
		{Key: "full_address", Value: address.Full_address},
		{Key: "city", Value: address.City},
		{Key: "district", Value: address.District},
		{Key: "ward", Value: address.Ward},
		{Key: "is_default", Value: address.Is_default},
		{Key: "updated_at", Value: address.Updated_at},
	}}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoAddressRepository) Delete(ctx context.Context, addressId string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"address_id": addressId})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoAddressRepository) ClearDefaults(ctx context.Context, userId string) error {
	updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	_, err := r.collection.UpdateMany(ctx,
		bson.M{"user_id": userId, "is_default": true},
		bson.D{{Key: "$set", Value: bson.D{{Key: "is_default", Value: false}, {Key: "updated_at", Value: updated_at}}}},
	)
	return err
}

func (r *mongoAddressRepository) DeleteAllByUser(ctx context.Context, userId string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userId})
	return err
}
