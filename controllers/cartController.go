package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"hoaki-food-ordering/database"
	"hoaki-food-ordering/repositories"
	"hoaki-food-ordering/services"

	"github.com/gin-gonic/gin"
)

var notifier *services.Notifier = services.NewNotifier()

var cartRepository repositories.CartRepository = repositories.NewCartRepository(database.Client)

var cartService *services.CartService = services.NewCartService(cartRepository, notifier)

var foodRepository repositories.FoodRepository = repositories.NewFoodRepository(database.Client)

type addCartItemRequest struct {
	Food_id  string  `json:"food_id" validate:"required"`
	Quantity int     `json:"quantity"`
	Note     *string `json:"note"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// currentUserId reads the authenticated user id placed into the context
// by the auth middleware.
func currentUserId(c *gin.Context) (string, bool) {
	uid := c.GetString("uid")
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please sign in"})
		return "", false
	}
	return uid, true
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		items, err := cartService.ListItems(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing cart items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func GetCartCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		count, err := cartService.Count(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while counting cart items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

func GetCartSubtotal() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		subtotal, err := cartService.Subtotal(ctx, uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while computing subtotal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subtotal": subtotal})
	}
}

func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var req addCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		food, err := foodRepository.GetByID(ctx, req.Food_id)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the food"})
			return
		}

		item, err := cartService.AddItem(ctx, uid, food, req.Quantity, req.Note)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart item was not added"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var req updateCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cartItemId := c.Param("item_id")
		err := cartService.SetQuantity(ctx, uid, cartItemId, req.Quantity)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart item update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "cart item updated"})
	}
}

func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cartItemId := c.Param("item_id")
		err := cartService.RemoveItem(ctx, uid, cartItemId)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart item was not removed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "cart item removed"})
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := currentUserId(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := cartService.Clear(ctx, uid); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart was not cleared"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
	}
}
