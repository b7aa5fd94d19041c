package aiControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	cartControllers "github.com/vanshpar/pc-builder-api/controllers/cart"
	"github.com/vanshpar/pc-builder-api/models"
)

type AIRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	UserID    *uint  `json:"userId"`
}

// snapshotFromPicks flattens a build into the JSON shape stored on the ai
// conversation row. Only the fields add-build-to-cart needs later.
func snapshotFromPicks(picks map[string]models.Product) datatypes.JSONMap {
	snapshot := make(datatypes.JSONMap, len(picks))
	for cat, p := range picks {
		snapshot[cat] = map[string]any{
			"id":       p.ID,
			"name":     p.Name,
			"category": p.Category,
			"price":    p.Price,
		}
	}
	return snapshot
}

func appendConversation(db *gorm.DB, row models.AIConversation) error {
	if err := db.Create(&row).Error; err != nil {
		return apierr.Internal(err, "failed to record conversation")
	}
	return nil
}

// POST /ai/build-pc
func BuildPCHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AIRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid input: %v", err))
			return
		}
		sid := req.SessionID
		if sid == "" {
			sid = uuid.NewString()
		}

		budget, ok := ExtractBudget(req.Message)
		if !ok {
			budget = DefaultBudget
		}
		useCase := ExtractUseCase(req.Message)

		suggestion, err := SuggestBuild(db, budget, useCase)
		if err != nil {
			apierr.Respond(c, err)
			return
		}

		if err := appendConversation(db, models.AIConversation{
			SessionID: sid,
			UserID:    req.UserID,
			Sender:    models.SenderUser,
			Message:   req.Message,
		}); err != nil {
			apierr.Respond(c, err)
			return
		}
		reply, _ := json.Marshal(suggestion)
		if err := appendConversation(db, models.AIConversation{
			SessionID:    sid,
			UserID:       req.UserID,
			Sender:       models.SenderAI,
			Message:      string(reply),
			CartSnapshot: snapshotFromPicks(suggestion.Picks),
		}); err != nil {
			apierr.Respond(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"sessionId": sid,
			"useCase":   useCase,
			"budget":    budget,
			"picks":     suggestion.Picks,
			"total":     suggestion.Total,
		})
	}
}

// POST /ai/chat
func ChatHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AIRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.InvalidInput("invalid input: %v", err))
			return
		}
		sid := req.SessionID
		if sid == "" {
			sid = uuid.NewString()
		}

		response := fmt.Sprintf(
			"I can help build a PC. Tell me your budget and use case (gaming, editing, office). You said: %q",
			req.Message,
		)
		if err := appendConversation(db, models.AIConversation{
			SessionID: sid, UserID: req.UserID, Sender: models.SenderUser, Message: req.Message,
		}); err != nil {
			apierr.Respond(c, err)
			return
		}
		if err := appendConversation(db, models.AIConversation{
			SessionID: sid, UserID: req.UserID, Sender: models.SenderAI, Message: response,
		}); err != nil {
			apierr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessionId": sid, "response": response})
	}
}

// GET /ai/conversation/:sessionId
func GetConversationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.AIConversation
		if err := db.Where("session_id = ?", c.Param("sessionId")).
			Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to fetch conversation"))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

type AddBuildToCartRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	UserID    uint   `json:"userId" binding:"required"`
}

// POST /ai/add-build-to-cart
// Loads the session's latest suggestion snapshot and adds each pick (qty 1)
// to the user's cart through the normal cart path.
func AddBuildToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddBuildToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierr.Respond(c, apierr.InvalidInput("sessionId and userId required"))
			return
		}

		var user models.User
		if err := db.First(&user, req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierr.Respond(c, apierr.NotFound("user not found"))
			} else {
				apierr.Respond(c, apierr.Internal(err, "failed to load user"))
			}
			return
		}

		var lastAI models.AIConversation
		err := db.Where("session_id = ? AND sender = ?", req.SessionID, models.SenderAI).
			Order("created_at DESC, id DESC").First(&lastAI).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && len(lastAI.CartSnapshot) == 0) {
			apierr.Respond(c, apierr.InvalidState("no build found for session"))
			return
		}
		if err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to load conversation"))
			return
		}

		added := []uint{}
		for _, v := range lastAI.CartSnapshot {
			pick, ok := v.(map[string]any)
			if !ok {
				continue
			}
			// JSON numbers come back as float64
			idNum, ok := pick["id"].(float64)
			if !ok {
				continue
			}
			productID := uint(idNum)
			if _, err := cartControllers.AddItem(db, req.UserID, productID, 1); err != nil {
				apierr.Respond(c, err)
				return
			}
			added = append(added, productID)
		}
		c.JSON(http.StatusOK, gin.H{"added": added})
	}
}
