package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

// DeleteProduct removes a catalog entry by ID.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid product ID"))
			return
		}

		result := db.Delete(&models.Product{}, id)
		if result.Error != nil {
			apierr.Respond(c, apierr.Internal(result.Error, "failed to delete product"))
			return
		}
		if result.RowsAffected == 0 {
			apierr.Respond(c, apierr.NotFound("product not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
