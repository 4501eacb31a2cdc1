package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is a delivery address. For each user at most one address has
// Is_default set at any time; every write path that sets it clears the
// others first.
type Address struct {
	ID           primitive.ObjectID `bson:"_id"`
	User_id      string             `json:"user_id" validate:"required"`
	Label        string             `json:"label" validate:"required"` // Home, Work, Other
	Full_address string             `json:"full_address" validate:"required"`
	City         string             `json:"city"`
	District     string             `json:"district"`
	Ward         string             `json:"ward"`
	Is_default   bool               `json:"is_default"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
	Address_id   string             `json:"address_id"`
}
