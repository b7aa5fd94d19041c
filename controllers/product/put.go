package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

type ProductUpdateInput struct {
	Name              *string           `json:"name"`
	Category          *string           `json:"category"`
	Brand             *string           `json:"brand"`
	Price             *decimal.Decimal  `json:"price"`
	StockQuantity     *int              `json:"stock_quantity"`
	Specifications    datatypes.JSONMap `json:"specifications"`
	ImageURL          *string           `json:"image_url"`
	Description       *string           `json:"description"`
	CompatibilityTags datatypes.JSONMap `json:"compatibility_tags"`
}

// UpdateProduct patches an existing product by ID. Only fields present in the
// body are touched.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid product ID"))
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierr.Respond(c, apierr.NotFound("product not found"))
			} else {
				apierr.Respond(c, apierr.Internal(err, "failed to retrieve product"))
			}
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid input: %v", err))
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Price != nil {
			if input.Price.IsNegative() {
				apierr.Respond(c, apierr.InvalidInput("price must not be negative"))
				return
			}
			product.Price = *input.Price
		}
		if input.StockQuantity != nil {
			if *input.StockQuantity < 0 {
				apierr.Respond(c, apierr.InvalidInput("stock_quantity must not be negative"))
				return
			}
			product.StockQuantity = *input.StockQuantity
		}
		if input.Specifications != nil {
			product.Specifications = input.Specifications
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.CompatibilityTags != nil {
			product.CompatibilityTags = input.CompatibilityTags
		}

		if err := db.Save(&product).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to update product"))
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
