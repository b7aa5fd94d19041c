package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Service struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ServiceName   string          `gorm:"not null" json:"service_name"`
	Description   string          `gorm:"type:text" json:"description"`
	BasePrice     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"base_price"`
	Category      string          `json:"category"`
	EstimatedTime string          `json:"estimated_time"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ServiceBooking snapshots TotalCost from Service.BasePrice at booking time;
// it is not recomputed when the service price changes.
type ServiceBooking struct {
	ID            uint              `gorm:"primaryKey" json:"id"`
	UserID        uint              `gorm:"not null;index" json:"user_id"`
	ServiceID     uint              `gorm:"not null;index" json:"service_id"`
	Service       Service           `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	BookingDate   time.Time         `json:"booking_date"`
	ScheduledDate *time.Time        `json:"scheduled_date"`
	Status        string            `gorm:"type:VARCHAR(30);default:'pending'" json:"status"`
	DeviceDetails datatypes.JSONMap `json:"device_details"`
	TotalCost     decimal.Decimal   `gorm:"type:decimal(16,2)" json:"total_cost"`
	CreatedAt     time.Time         `json:"created_at"`
}
