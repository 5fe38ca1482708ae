package repositories

import "github.com/musqaan/flipcart-clone/internal/models"

// AdminRepository defines the interface for admin record data access.
type AdminRepository interface {
	GetAll() ([]models.Admin, error)
	GetByID(id uint) (*models.Admin, error)
	Create(admin *models.Admin) error
	Update(id uint, role, status string) error
	Delete(id uint) error
}
