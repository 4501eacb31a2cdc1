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
	"github.com/go-playground/validator"
)

var validate *validator.Validate = validator.New()

var catalogService *services.CatalogService = services.NewCatalogService(
	repositories.NewFoodRepository(database.Client),
	repositories.NewCategoryRepository(database.Client),
)

func GetFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		foods, err := catalogService.ListFoods(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing foods"})
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}

func GetFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		foodId := c.Param("food_id")
		food, err := catalogService.GetFood(ctx, foodId)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while fetching the food"})
			return
		}
		c.JSON(http.StatusOK, food)
	}
}

func GetFoodsByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		categoryId := c.Param("category_id")
		foods, err := catalogService.ListFoodsByCategory(ctx, categoryId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing foods by category"})
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}

func GetPopularFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		foods, err := catalogService.ListPopularFoods(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing popular foods"})
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}

func GetDiscountedFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		foods, err := catalogService.ListDiscountedFoods(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing discounted foods"})
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}

func GetFavoriteFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		foods, err := catalogService.ListFavoriteFoods(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing favorite foods"})
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}

func SearchFoods() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		query := c.Query("q")
		if query == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
			return
		}
		foods, err := catalogService.SearchFoods(ctx, query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while searching foods"})
			return
		}
		c.JSON(http.StatusOK, foods)
	}
}

func ToggleFavoriteFood() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		foodId := c.Param("food_id")
		food, err := catalogService.ToggleFavorite(ctx, foodId)
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food was not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "favorite update failed"})
			return
		}
		c.JSON(http.StatusOK, food)
	}
}

func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		categories, err := catalogService.ListCategories(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
