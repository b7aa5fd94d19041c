package models

import (
	"time"

	"gorm.io/datatypes"
)

// Message senders for AIConversation rows.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// AIConversation is the append-only log of the build assistant. AI rows that
// carry a build suggestion tag it as a structured snapshot in CartSnapshot
// (category -> picked product summary).
type AIConversation struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	SessionID    string            `gorm:"index;not null" json:"session_id"`
	UserID       *uint             `gorm:"index" json:"user_id"`
	Sender       string            `gorm:"type:VARCHAR(10);not null" json:"sender"`
	Message      string            `gorm:"type:text" json:"message"`
	CartSnapshot datatypes.JSONMap `json:"cart_snapshot"`
	CreatedAt    time.Time         `json:"created_at"`
}
