package routes

import (
	controller "hoaki-food-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/cart", controller.GetCart())
	incomingRoutes.GET("/cart/count", controller.GetCartCount())
	incomingRoutes.GET("/cart/subtotal", controller.GetCartSubtotal())
	incomingRoutes.POST("/cart/items", controller.AddCartItem())
	incomingRoutes.PATCH("/cart/items/:item_id", controller.UpdateCartItem())
	incomingRoutes.DELETE("/cart/items/:item_id", controller.DeleteCartItem())
	incomingRoutes.DELETE("/cart", controller.ClearCart())
}
