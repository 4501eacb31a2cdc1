package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/models"
	"hoaki-food-ordering/repositories"
	"hoaki-food-ordering/services"

	"github.com/gin-gonic/gin"
)

var orderService *services.OrderService = services.NewOrderService(
	repositories.NewOrderRepository(database.Client),
	cartRepository,
	repositories.NewNotificationRepository(database.Client),
	database.NewTxRunner(database.Client),
	notifier,
)

type createOrderRequest struct {
	Address_id       string  `json:"address_id"`
	Delivery_address string  `json:"delivery_address"`
	Phone_number     string  `json:"phone_number" validate:"required"`
	Delivery_fee     *int64  `json:"delivery_fee"`
	Note             *string `json:"note"`
}

type updateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,eq=PENDING|eq=CONFIRMED|eq=PREPARING|eq=DELIVERING|eq=COMPLETED|eq=CANCELLED"`
}

// CreateOrder is checkout: it freezes the current cart into an order and
// empties the cart. The delivery address comes either from a saved
// address id or as free text.
func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var req createOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		deliveryAddress := req.Delivery_address
		if req.Address_id != "" {
			address, err := addressService.GetByID(ctx, req.Address_id)
			if errors.Is(err, repositories.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "address was not found"})
				return
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the address"})
				return
			}
			if address.User_id != uid {
				c.JSON(http.StatusNotFound, gin.H{"error": "address was not found"})
				return
			}
			deliveryAddress = address.Full_address + ", " + address.Ward + ", " + address.District + ", " + address.City
		}
		if deliveryAddress == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "delivery address is required"})
			return
		}

		deliveryFee := services.DefaultDeliveryFee
		if req.Delivery_fee != nil {
			deliveryFee = *req.Delivery_fee
		}

		cartItems, err := cartService.ListItems(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing cart items"})
			return
		}

		order, err := orderService.CreateOrder(ctx, uid, cartItems, deliveryAddress, req.Phone_number, deliveryFee, req.Note)
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not created"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if status := c.Query("status"); status != "" {
			orders, err := orderService.ListByStatus(ctx, uid, models.OrderStatus(status))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
				return
			}
			c.JSON(http.StatusOK, orders)
			return
		}

		orders, err := orderService.ListByUser(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		order, err := orderService.GetByID(ctx, uid, orderId)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var req updateOrderStatusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orderId := c.Param("order_id")
		err := orderService.UpdateStatus(ctx, uid, orderId, req.Status)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		if errors.Is(err, services.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order status update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
	}
}

func CancelOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		err := orderService.Cancel(ctx, uid, orderId)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		if errors.Is(err, services.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": "order can no longer be cancelled"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not cancelled"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
	}
}

func GetNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		notifications, err := orderService.ListNotifications(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing notifications"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

func MarkNotificationRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		notificationId := c.Param("notification_id")
		err := orderService.MarkNotificationRead(ctx, uid, notificationId)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "notification update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
	}
}
