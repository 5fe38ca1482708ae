package repositories

import "github.com/musqaan/flipcart-clone/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(id uint, updates map[string]interface{}) error
	Count() (int64, error)
}
