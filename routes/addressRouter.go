package routes

import (
	controller "hoaki-food-ordering/controllers"

	"github.com/gin-gonic/gin"
)

func AddressRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/addresses", controller.GetAddresses())
	incomingRoutes.GET("/addresses/default", controller.GetDefaultAddress())
	incomingRoutes.POST("/addresses", controller.SaveAddress())
	incomingRoutes.PATCH("/addresses/:address_id/default", controller.SetDefaultAddress())
	incomingRoutes.DELETE("/addresses/:address_id", controller.DeleteAddress())
}
