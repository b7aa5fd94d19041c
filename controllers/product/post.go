package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

type ProductInput struct {
	Name              string            `json:"name" binding:"required"`
	Category          string            `json:"category" binding:"required"`
	Brand             string            `json:"brand"`
	Price             decimal.Decimal   `json:"price"`
	StockQuantity     int               `json:"stock_quantity"`
	Specifications    datatypes.JSONMap `json:"specifications"`
	ImageURL          string            `json:"image_url"`
	Description       string            `json:"description"`
	CompatibilityTags datatypes.JSONMap `json:"compatibility_tags"`
}

// CreateProduct adds a catalog entry (seeding/admin path; no auth here).
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid input: %v", err))
			return
		}
		if input.Price.IsNegative() {
			apierr.Respond(c, apierr.InvalidInput("price must not be negative"))
			return
		}
		if input.StockQuantity < 0 {
			apierr.Respond(c, apierr.InvalidInput("stock_quantity must not be negative"))
			return
		}

		product := models.Product{
			Name:              input.Name,
			Category:          input.Category,
			Brand:             input.Brand,
			Price:             input.Price,
			StockQuantity:     input.StockQuantity,
			Specifications:    input.Specifications,
			ImageURL:          input.ImageURL,
			Description:       input.Description,
			CompatibilityTags: input.CompatibilityTags,
		}
		if err := db.Create(&product).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to create product"))
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
