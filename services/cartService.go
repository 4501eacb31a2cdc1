package services

import (
	"context"
	"errors"
	"time"

	"hoaki-food-ordering/models"
	"hoaki-food-ordering/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartService owns the mapping from (user, food) to line quantity.
// Additions merge into an existing line; setting quantity to zero or
// below removes the line.
type CartService struct {
	carts    repositories.CartRepository
	notifier *Notifier
}

func NewCartService(carts repositories.CartRepository, notifier *Notifier) *CartService {
	return &CartService{carts: carts, notifier: notifier}
}

func (s *CartService) AddItem(ctx context.Context, userId string, food *models.Food, quantity int, note *string) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	existing, err := s.carts.GetByUserAndFood(ctx, userId, food.Food_id)
	if err == nil {
		existing.Quantity += quantity
		existing.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		if err := s.carts.Update(ctx, existing); err != nil {
			return nil, err
		}
		s.publish(userId)
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	item := &models.CartItem{
		User_id:        userId,
		Food_id:        food.Food_id,
		Food_name:      derefString(food.Name),
		Food_price:     derefInt64(food.Price),
		Food_image_url: food.Image_url,
		Quantity:       quantity,
		Note:           note,
	}
	item.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	item.Updated_at = item.Created_at
	item.ID = primitive.NewObjectID()
	item.Cart_item_id = item.ID.Hex()

	if err := s.carts.Insert(ctx, item); err != nil {
		return nil, err
	}
	s.publish(userId)
	return item, nil
}

// SetQuantity is the single path for quantity changes. Zero or negative
// means remove, not error. A line that belongs to another user is
// reported as not found.
func (s *CartService) SetQuantity(ctx context.Context, userId string, cartItemId string, quantity int) error {
	item, err := s.carts.GetByID(ctx, cartItemId)
	if err != nil {
		return err
	}
	if item.User_id != userId {
		return repositories.ErrNotFound
	}

	if quantity <= 0 {
		if err := s.carts.Delete(ctx, item.Cart_item_id); err != nil {
			return err
		}
		s.publish(item.User_id)
		return nil
	}

	item.Quantity = quantity
	item.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	if err := s.carts.Update(ctx, item); err != nil {
		return err
	}
	s.publish(item.User_id)
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, userId string, cartItemId string) error {
	item, err := s.carts.GetByID(ctx, cartItemId)
	if err != nil {
		return err
	}
	if item.User_id != userId {
		return repositories.ErrNotFound
	}
	if err := s.carts.Delete(ctx, item.Cart_item_id); err != nil {
		return err
	}
	s.publish(item.User_id)
	return nil
}

func (s *CartService) Clear(ctx context.Context, userId string) error {
	if err := s.carts.ClearByUser(ctx, userId); err != nil {
		return err
	}
	s.publish(userId)
	return nil
}

func (s *CartService) ListItems(ctx context.Context, userId string) ([]models.CartItem, error) {
	return s.carts.ListByUser(ctx, userId)
}

func (s *CartService) Count(ctx context.Context, userId string) (int64, error) {
	return s.carts.CountByUser(ctx, userId)
}

// Subtotal is computed on read, never stored on the cart itself.
func (s *CartService) Subtotal(ctx context.Context, userId string) (int64, error) {
	items, err := s.carts.ListByUser(ctx, userId)
	if err != nil {
		return 0, err
	}
	return CartSubtotal(items), nil
}

func CartSubtotal(items []models.CartItem) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Food_price * int64(item.Quantity)
	}
	return subtotal
}

func (s *CartService) publish(userId string) {
	if s.notifier != nil {
		s.notifier.Publish(Event{Type: EventCartUpdated, User_id: userId})
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}
