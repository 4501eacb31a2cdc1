package services

import (
	"context"
	"errors"
	"log"
	"time"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/models"
	"hoaki-food-ordering/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultDeliveryFee is the flat delivery fee in VND applied when the
// caller does not override it.
const DefaultDeliveryFee int64 = 15000

const orderNumberPrefix = "HF"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// OrderService converts a cart snapshot into an immutable order and
// drives the order status lifecycle. The order insert and the cart clear
// run in one transaction so the cart is never emptied without a persisted
// order.
type OrderService struct {
	orders        repositories.OrderRepository
	carts         repositories.CartRepository
	notifications repositories.NotificationRepository
	tx            database.TxRunner
	notifier      *Notifier
	locks         *userLocks
}

func NewOrderService(
	orders repositories.OrderRepository,
	carts repositories.CartRepository,
	notifications repositories.NotificationRepository,
	tx database.TxRunner,
	notifier *Notifier,
) *OrderService {
	return &OrderService{
		orders:        orders,
		carts:         carts,
		notifications: notifications,
		tx:            tx,
		notifier:      notifier,
		locks:         newUserLocks(),
	}
}

func (s *OrderService) CreateOrder(
	ctx context.Context,
	userId string,
	cartItems []models.CartItem,
	deliveryAddress string,
	phoneNumber string,
	deliveryFee int64,
	note *string,
) (*models.Order, error) {
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	s.locks.lock(userId)
	defer s.locks.unlock(userId)

	subtotal := CartSubtotal(cartItems)
	total := subtotal + deliveryFee

	items := make([]models.OrderItem, 0, len(cartItems))
	for _, line := range cartItems {
		items = append(items, models.OrderItem{
			Food_id:    line.Food_id,
			Food_name:  line.Food_name,
			Food_price: line.Food_price,
			Quantity:   line.Quantity,
			Note:       line.Note,
		})
	}

	order := &models.Order{
		User_id:          userId,
		Order_number:     generateOrderNumber(),
		Items:            items,
		Subtotal:         subtotal,
		Delivery_fee:     deliveryFee,
		Total:            total,
		Status:           models.StatusPending,
		Delivery_address: deliveryAddress,
		Phone_number:     phoneNumber,
		Note:             note,
	}
	order.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	order.Updated_at = order.Created_at
	order.ID = primitive.NewObjectID()
	order.Order_id = order.ID.Hex()

	// Insert first: order persistence takes priority over cart cleanup.
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.orders.Insert(ctx, order); err != nil {
			return err
		}
		return s.carts.ClearByUser(ctx, userId)
	})
	if err != nil {
		return nil, err
	}

	s.recordEvent(ctx, order, EventOrderCreated)
	return order, nil
}

// UpdateStatus writes a new status after checking the lifecycle:
// PENDING -> CONFIRMED/CANCELLED, CONFIRMED -> PREPARING/CANCELLED,
// PREPARING -> DELIVERING/CANCELLED, DELIVERING -> COMPLETED. Terminal
// statuses admit no further transition. An order owned by another user
// is reported as not found.
func (s *OrderService) UpdateStatus(ctx context.Context, userId string, orderId string, status models.OrderStatus) error {
	order, err := s.orders.GetByID(ctx, orderId)
	if err != nil {
		return err
	}
	if order.User_id != userId {
		return repositories.ErrNotFound
	}
	if !order.Status.CanTransitionTo(status) {
		return ErrInvalidTransition
	}
	if err := s.orders.UpdateStatus(ctx, orderId, status); err != nil {
		return err
	}
	order.Status = status
	s.recordEvent(ctx, order, EventOrderStatusChanged)
	return nil
}

// Cancel is a status change, not a deletion.
func (s *OrderService) Cancel(ctx context.Context, userId string, orderId string) error {
	return s.UpdateStatus(ctx, userId, orderId, models.StatusCancelled)
}

func (s *OrderService) GetByID(ctx context.Context, userId string, orderId string) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderId)
	if err != nil {
		return nil, err
	}
	if order.User_id != userId {
		return nil, repositories.ErrNotFound
	}
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userId string) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userId)
}

func (s *OrderService) ListByStatus(ctx context.Context, userId string, status models.OrderStatus) ([]models.Order, error) {
	return s.orders.ListByStatus(ctx, userId, status)
}

func (s *OrderService) ListNotifications(ctx context.Context, userId string) ([]models.Notification, error) {
	return s.notifications.ListByUser(ctx, userId)
}

func (s *OrderService) MarkNotificationRead(ctx context.Context, userId string, notificationId string) error {
	return s.notifications.MarkRead(ctx, userId, notificationId)
}

// recordEvent publishes to websocket subscribers and persists the
// notification row. Best effort: a failed notification never fails the
// order operation that produced it.
func (s *OrderService) recordEvent(ctx context.Context, order *models.Order, event EventType) {
	if s.notifier != nil {
		s.notifier.Publish(Event{Type: event, User_id: order.User_id, Payload: order})
	}
	if s.notifications == nil {
		return
	}
	notification := &models.Notification{
		User_id:      order.User_id,
		Order_id:     order.Order_id,
		Event:        string(event),
		Order_status: string(order.Status),
	}
	notification.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	notification.ID = primitive.NewObjectID()
	notification.Notification_id = notification.ID.Hex()
	if err := s.notifications.Insert(ctx, notification); err != nil {
		log.Println("failed to record order notification:", err)
	}
}

// generateOrderNumber builds a human-readable order number from the local
// time. Uniqueness is weak: two orders in the same second collide. The
// original system accepts this and so do we.
func generateOrderNumber() string {
	return orderNumberPrefix + time.Now().Format("20060102150405")
}
