package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	serviceControllers "github.com/vanshpar/pc-builder-api/controllers/service"
)

func SetupServiceRoutes(r *gin.Engine, db *gorm.DB) {
	services := r.Group("/services")
	{
		services.GET("", serviceControllers.ListServicesHandler(db))
		services.POST("/book", serviceControllers.BookServiceHandler(db))
		services.GET("/bookings/:userId", serviceControllers.ListBookingsHandler(db))
	}
}
