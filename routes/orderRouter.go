package routes

import (
	"hoaki-food-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/orders", controllers.GetOrders())
	incomingRoutes.GET("/orders/:order_id", controllers.GetOrder())
	incomingRoutes.POST("/orders", controllers.CreateOrder())
	incomingRoutes.PATCH("/orders/:order_id/status", controllers.UpdateOrderStatus())
	incomingRoutes.PATCH("/orders/:order_id/cancel", controllers.CancelOrder())
	incomingRoutes.GET("/notifications", controllers.GetNotifications())
	incomingRoutes.PATCH("/notifications/:notification_id/read", controllers.MarkNotificationRead())
}
