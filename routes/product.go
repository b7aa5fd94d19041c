package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/vanshpar/pc-builder-api/controllers/product"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		// Catalog browsing
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/export", productcontroller.ExportProductsToExcel(db))
		products.GET("/category/:category", productcontroller.GetProductsByCategory(db))

		// Pairwise part validation
		products.POST("/compatibility", productcontroller.CheckCompatibilityHandler)
		products.GET("/compatibility/rules", productcontroller.ListCompatibilityRules(db))

		products.GET("/:id", productcontroller.GetProductByID(db))

		// Admin catalog maintenance (no auth in this service)
		products.POST("", productcontroller.CreateProduct(db))
		products.PUT("/:id", productcontroller.UpdateProduct(db))
		products.DELETE("/:id", productcontroller.DeleteProduct(db))
	}
}
