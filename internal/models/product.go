package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBrand is assigned when a product is created without a brand.
const DefaultBrand = "HERBALIFE"

// Product represents a catalog entry.
type Product struct {
	ID          uint                `json:"id" gorm:"primaryKey"`
	Name        string              `json:"name" gorm:"type:varchar(255)" validate:"required"`
	Price       decimal.Decimal     `json:"price" gorm:"type:decimal(10,2)"`
	Category    string              `json:"category" gorm:"type:varchar(100);index"`
	Description string              `json:"description"`
	Image       string              `json:"image"`
	Brand       string              `json:"brand" gorm:"type:varchar(100)"`
	Stock       int                 `json:"stock" gorm:"default:0"`
	Rating      decimal.NullDecimal `json:"rating" gorm:"type:decimal(3,1)"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
