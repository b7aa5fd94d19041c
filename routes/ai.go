package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	aiControllers "github.com/vanshpar/pc-builder-api/controllers/ai"
)

func SetupAIRoutes(r *gin.Engine, db *gorm.DB) {
	ai := r.Group("/ai")
	{
		ai.POST("/build-pc", aiControllers.BuildPCHandler(db))
		ai.POST("/chat", aiControllers.ChatHandler(db))
		ai.GET("/conversation/:sessionId", aiControllers.GetConversationHandler(db))
		ai.POST("/add-build-to-cart", aiControllers.AddBuildToCartHandler(db))
	}
}
