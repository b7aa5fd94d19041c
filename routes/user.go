package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/vanshpar/pc-builder-api/controllers/user"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.GET("/demo", userControllers.DemoUserHandler(db))
		users.POST("", userControllers.CreateUserHandler(db))
	}
}
