package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line of a user's in-progress cart. Food name, price and
// image are captured at add-time so order math stays stable even if the
// catalog price changes later. At most one CartItem exists per
// (user, food) pair; additions merge by summing quantity.
type CartItem struct {
	ID             primitive.ObjectID `bson:"_id"`
	User_id        string             `json:"user_id" validate:"required"`
	Food_id        string             `json:"food_id" validate:"required"`
	Food_name      string             `json:"food_name"`
	Food_price     int64              `json:"food_price"`
	Food_image_url *string            `json:"food_image_url"`
	Quantity       int                `json:"quantity" validate:"min=1"`
	Note           *string            `json:"note"`
	Created_at     time.Time          `json:"created_at"`
	Updated_at     time.Time          `json:"updated_at"`
	Cart_item_id   string             `json:"cart_item_id"`
}
