package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
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
		c.JSON(http.StatusOK, product)
	}
}
