package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. No transition graph is enforced: any known status may
// overwrite any other, matching the behaviour the admin dashboard relies on.
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a single line of a checkout submission: one row per (submission,
// product) pair. All rows of one submission share user_id, order_date and the
// initial Pending status.
type Order struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"index;not null"`
	ProductID  uint            `json:"product_id" gorm:"not null"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2)"`
	OrderDate  time.Time       `json:"order_date" gorm:"type:date"`
	Status     string          `json:"status" gorm:"type:varchar(20);index"`
	Address    string          `json:"address"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
