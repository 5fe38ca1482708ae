package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/musqaan/flipcart-clone/internal/models"
	"github.com/musqaan/flipcart-clone/internal/repositories"
)

// UserService handles user listing and profile management.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// ListUsers retrieves all user records.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// GetUserByID retrieves a single user record.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UserUpdate carries the optional fields of a partial user update.
type UserUpdate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

// UpdateUser applies a partial update to a user record. A new password is
// hashed before it is stored.
func (s *UserService) UpdateUser(id uint, update UserUpdate) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return err
	}

	updates := make(map[string]interface{})
	if update.Email != "" {
		updates["email"] = update.Email
	}
	if update.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(update.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hashed)
	}
	if update.UserType != "" {
		updates["user_type"] = update.UserType
	}

	if len(updates) == 0 {
		return ErrNoChanges
	}

	return s.userRepo.Update(id, updates)
}
