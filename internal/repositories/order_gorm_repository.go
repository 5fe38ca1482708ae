package repositories

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/musqaan/flipcart-clone/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// CreateBatch inserts every row of a submission in a single transaction.
// Either all lines become visible together or none do.
func (r *GORMOrderRepository) CreateBatch(orders []models.Order) error {
	if len(orders) == 0 {
		return fmt.Errorf("no order rows to insert")
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&orders).Error
	})
	if err != nil {
		return fmt.Errorf("failed to insert order rows: %w", err)
	}
	return nil
}

// GetByUser returns all order rows for one owner, most recent first.
func (r *GORMOrderRepository) GetByUser(userID uint) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.db.Where("user_id = ?", userID).Order("order_date DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// Find returns all order rows matching the filter. No matches is an empty
// slice, not an error.
func (r *GORMOrderRepository) Find(filter OrderFilter) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	query := r.db.Model(&models.Order{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if !filter.UpdatedAfter.IsZero() {
		query = query.Where("updated_at > ?", filter.UpdatedAfter)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets the status of one order row, bumping updated_at.
func (r *GORMOrderRepository) UpdateStatus(id uint, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for order %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// Count returns the total number of order rows.
func (r *GORMOrderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// TotalRevenue returns the sum of total_price over all order rows.
func (r *GORMOrderRepository) TotalRevenue() (decimal.Decimal, error) {
	row := r.db.Model(&models.Order{}).Select("COALESCE(SUM(total_price), 0)").Row()
	var total decimal.Decimal
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum order revenue: %w", err)
	}
	return total, nil
}
