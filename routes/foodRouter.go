package routes

import (
	controller "hoaki-food-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func FoodRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/foods", controller.GetFoods())
	incomingRoutes.GET("/foods/popular", controller.GetPopularFoods())
	incomingRoutes.GET("/foods/discounted", controller.GetDiscountedFoods())
	incomingRoutes.GET("/foods/favorites", controller.GetFavoriteFoods())
	incomingRoutes.GET("/foods/search", controller.SearchFoods())
	incomingRoutes.GET("/foods/:food_id", controller.GetFood())
	incomingRoutes.GET("/foodsbycategory/:category_id", controller.GetFoodsByCategory())
	incomingRoutes.PATCH("/foods/:food_id/favorite", controller.ToggleFavoriteFood())
	incomingRoutes.GET("/categories", controller.GetCategories())
}
