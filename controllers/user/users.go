package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

const demoEmail = "demo@example.com"

// GET /users/demo
// Ensures the demo user exists and returns its id. Lets clients try the API
// without a signup flow.
func DemoUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		err := db.Where("email = ?", demoEmail).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{Name: "Demo User", Email: demoEmail, Address: "123 Demo Street"}
			err = db.Create(&user).Error
		}
		if err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to ensure demo user"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	}
}

type CreateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// POST /users
func CreateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.InvalidInput("email is required"))
			return
		}

		var existing models.User
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			apierr.Respond(c, apierr.InvalidInput("email already registered"))
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			apierr.Respond(c, apierr.Internal(err, "failed to check email"))
			return
		}

		user := models.User{Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address}
		if err := db.Create(&user).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to create user"))
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}
