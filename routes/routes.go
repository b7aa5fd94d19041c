package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db)
	SetupServiceRoutes(r, db)
	SetupAIRoutes(r, db)
	SetupUserRoutes(r, db)
}
