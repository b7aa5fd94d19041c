package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/vanshpar/pc-builder-api/controllers/cart"
)

func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	{
		cart.POST("/add", cartControllers.AddToCartHandler(db))
		cart.GET("/:userId", cartControllers.GetCartHandler(db))
		cart.PUT("/update", cartControllers.UpdateCartItemHandler(db))
		cart.DELETE("/remove/:itemId", cartControllers.RemoveCartItemHandler(db))
		cart.POST("/apply-assembly", cartControllers.ApplyAssemblyHandler)
	}
}
