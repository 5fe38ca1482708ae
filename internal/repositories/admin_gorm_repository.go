package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/musqaan/flipcart-clone/internal/models"
)

// GORMAdminRepository is a GORM implementation of AdminRepository.
type GORMAdminRepository struct {
	db *gorm.DB
}

// NewGORMAdminRepository creates a new instance of GORMAdminRepository.
func NewGORMAdminRepository(db *gorm.DB) *GORMAdminRepository {
	return &GORMAdminRepository{
		db: db,
	}
}

// GetAll retrieves all admin records.
func (r *GORMAdminRepository) GetAll() ([]models.Admin, error) {
	admins := make([]models.Admin, 0)
	if err := r.db.Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to get all admins: %w", err)
	}
	return admins, nil
}

// GetByID retrieves an admin record by its ID.
func (r *GORMAdminRepository) GetByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin by ID %d: %w", id, err)
	}
	return &admin, nil
}

// Create creates a new admin record.
func (r *GORMAdminRepository) Create(admin *models.Admin) error {
	if err := r.db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// Update sets the role and status of an admin record.
func (r *GORMAdminRepository) Update(id uint, role, status string) error {
	res := r.db.Model(&models.Admin{}).Where("id = ?", id).Updates(map[string]interface{}{
		"role":   role,
		"status": status,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update admin %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// Delete removes an admin record.
func (r *GORMAdminRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Admin{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete admin %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}
