package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Food struct {
	ID               primitive.ObjectID `bson:"_id"`
	Name             *string            `json:"name" validate:"required,min=2,max=100"`
	Description      *string            `json:"description"`
	Price            *int64             `json:"price" validate:"required,min=0"` // VND, no subunit
	Image_url        *string            `json:"image_url"`
	Category_id      *string            `json:"category_id" validate:"required"`
	Ingredients      *string            `json:"ingredients"`
	Rating           float64            `json:"rating"`
	Review_count     int                `json:"review_count"`
	Is_popular       bool               `json:"is_popular"`
	Is_favorite      bool               `json:"is_favorite"`
	Discount_percent int                `json:"discount_percent" validate:"min=0,max=100"`
	Preparation_time int                `json:"preparation_time"` // in minutes
	Calories         int                `json:"calories"`
	Created_at       time.Time          `json:"created_at"`
	Updated_at       time.Time          `json:"updated_at"`
	Food_id          string             `json:"food_id"`
}
