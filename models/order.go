package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

// Typical flow for reference. The status update endpoint does not enforce
// these; operators may set arbitrary values.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Order is immutable after checkout except for Status and PaymentStatus.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"total_amount"`
	AssemblyService bool            `json:"assembly_service"`
	AssemblyCharge  decimal.Decimal `gorm:"type:decimal(16,2)" json:"assembly_charge"`
	Status          OrderStatus     `gorm:"type:VARCHAR(30);default:'pending'" json:"status"`
	PaymentStatus   PaymentStatus   `gorm:"type:VARCHAR(30);default:'unpaid'" json:"payment_status"`
	ShippingAddress string          `json:"shipping_address"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderItem freezes the product price at checkout time; later catalog price
// changes must not affect it.
type OrderItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderID         uint            `gorm:"index" json:"order_id"`
	ProductID       uint            `json:"product_id"`
	Product         Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity        int             `gorm:"not null;default:1" json:"quantity"`
	PriceAtPurchase decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price_at_purchase"`
}
