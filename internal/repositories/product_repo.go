package repositories

import "github.com/musqaan/flipcart-clone/internal/models"

// ProductFilter narrows and pages a catalog listing.
type ProductFilter struct {
	Search   string
	Category string
	Page     int // 1-based; defaults to 1
	Limit    int // defaults to 10
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(filter ProductFilter) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
