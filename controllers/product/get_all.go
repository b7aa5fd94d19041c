package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

// GetProducts lists the catalog, newest first, with optional filters:
// q (substring match on name), category, brand, minPrice, maxPrice (inclusive).
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if q := c.Query("q"); q != "" {
			// lower() keeps the match case-insensitive on both Postgres and SQLite
			query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if brand := c.Query("brand"); brand != "" {
			query = query.Where("brand = ?", brand)
		}
		if minStr := c.Query("minPrice"); minStr != "" {
			min, err := decimal.NewFromString(minStr)
			if err != nil {
				apierr.Respond(c, apierr.InvalidInput("invalid minPrice"))
				return
			}
			query = query.Where("price >= ?", min)
		}
		if maxStr := c.Query("maxPrice"); maxStr != "" {
			max, err := decimal.NewFromString(maxStr)
			if err != nil {
				apierr.Respond(c, apierr.InvalidInput("invalid maxPrice"))
				return
			}
			query = query.Where("price <= ?", max)
		}

		var products []models.Product
		if err := query.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to fetch products"))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductsByCategory returns every product in one category.
// URL param: /products/category/:category
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		var products []models.Product
		if err := db.Where("category = ?", category).Find(&products).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to fetch products"))
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
