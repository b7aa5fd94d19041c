package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Component categories. Category is stored as a plain string column so new
// categories can be introduced by seeding alone.
const (
	CategoryCPU         = "CPU"
	CategoryGPU         = "GPU"
	CategoryRAM         = "RAM"
	CategoryMotherboard = "Motherboard"
	CategoryStorage     = "Storage"
	CategoryPSU         = "PSU"
	CategoryCase        = "Case"
	CategoryPeripherals = "Peripherals"
)

// Compatibility tag keys used inside Product.CompatibilityTags.
const (
	TagSocketType = "socket_type"
	TagMemoryType = "memory_type"
	TagFormFactor = "form_factor"
)

type Product struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"not null;index" json:"name"`
	Category      string          `gorm:"not null;index" json:"category"`
	Brand         string          `gorm:"index" json:"brand"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"` // never negative
	// Heterogeneous per-category attributes (cores, wattage, vram, ...).
	Specifications datatypes.JSONMap `json:"specifications"`
	ImageURL       string            `json:"image_url"`
	Description    string            `gorm:"type:text" json:"description"`
	// Open map of the Tag* keys above; absent keys mean "no constraint".
	CompatibilityTags datatypes.JSONMap `json:"compatibility_tags"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
