package repositories

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/musqaan/flipcart-clone/internal/models"
)

// OrderFilter narrows an order listing. Zero values mean "no restriction".
type OrderFilter struct {
	Status       string
	UpdatedAfter time.Time
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// CreateBatch persists all rows of one checkout submission atomically and
	// fills in the generated IDs.
	CreateBatch(orders []models.Order) error
	GetByUser(userID uint) ([]models.Order, error)
	Find(filter OrderFilter) ([]models.Order, error)
	UpdateStatus(id uint, status string) error
	Count() (int64, error)
	TotalRevenue() (decimal.Decimal, error)
}
