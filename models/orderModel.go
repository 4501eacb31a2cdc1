package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusPreparing  OrderStatus = "PREPARING"
	StatusDelivering OrderStatus = "DELIVERING"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// validTransitions encodes the order lifecycle. COMPLETED and CANCELLED
// are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusPreparing, StatusCancelled},
	StatusPreparing:  {StatusDelivering, StatusCancelled},
	StatusDelivering: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// OrderItem is a frozen copy of one cart line taken at checkout. Cart
// lines are deleted once the order is placed, so the order keeps its own
// item list rather than referencing them.
type OrderItem struct {
	Food_id    string  `json:"food_id"`
	Food_name  string  `json:"food_name"`
	Food_price int64   `json:"food_price"`
	Quantity   int     `json:"quantity"`
	Note       *string `json:"note"`
}

type Order struct {
	ID               primitive.ObjectID `bson:"_id"`
	User_id          string             `json:"user_id" validate:"required"`
	Order_number     string             `json:"order_number"`
	Items            []OrderItem        `json:"items"`
	Subtotal         int64              `json:"subtotal"`
	Delivery_fee     int64              `json:"delivery_fee"`
	Total            int64              `json:"total"`
	Status           OrderStatus        `json:"status" validate:"required,eq=PENDING|eq=CONFIRMED|eq=PREPARING|eq=DELIVERING|eq=COMPLETED|eq=CANCELLED"`
	Delivery_address string             `json:"delivery_address" validate:"required"`
	Phone_number     string             `json:"phone_number" validate:"required"`
	Note             *string            `json:"note"`
	Created_at       time.Time          `json:"created_at"`
	Updated_at       time.Time          `json:"updated_at"`
	Order_id         string             `json:"order_id"`
}
