package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/vanshpar/pc-builder-api/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Checkout: cart -> order, atomically
		orders.POST("/create", orderControllers.CreateOrderHandler(db))

		// Real-time feed of committed orders
		orders.GET("/ws", orderControllers.OrderFeedHandler)

		orders.GET("/detail/:orderId", orderControllers.GetOrderDetailHandler(db))
		orders.GET("/:userId", orderControllers.GetUserOrdersHandler(db))
		orders.PUT("/:orderId/status", orderControllers.UpdateOrderStatusHandler(db))
	}
}
