package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/musqaan/flipcart-clone/internal/models"
	"github.com/musqaan/flipcart-clone/internal/repositories"
)

// AdminService handles admin record management and the dashboard analytics.
type AdminService struct {
	adminRepo repositories.AdminRepository
	userRepo  repositories.UserRepository
	orderRepo repositories.OrderRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo repositories.AdminRepository, userRepo repositories.UserRepository, orderRepo repositories.OrderRepository) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// ListAdmins retrieves all admin records.
func (s *AdminService) ListAdmins() ([]models.Admin, error) {
	return s.adminRepo.GetAll()
}

// CreateAdmin creates a new admin record with Active status. The password is
// hashed before it is stored.
func (s *AdminService) CreateAdmin(name, email, password, role string) (*models.Admin, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Status:   models.AdminStatusActive,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// UpdateAdmin sets the role and status of an admin record and returns the
// updated record.
func (s *AdminService) UpdateAdmin(id uint, role, status string) (*models.Admin, error) {
	if err := s.adminRepo.Update(id, role, status); err != nil {
		return nil, err
	}
	return s.adminRepo.GetByID(id)
}

// DeleteAdmin removes an admin record.
func (s *AdminService) DeleteAdmin(id uint) error {
	return s.adminRepo.Delete(id)
}

// Analytics is the admin dashboard summary.
type Analytics struct {
	TotalUsers   int64           `json:"totalUsers"`
	TotalOrders  int64           `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// GetAnalytics aggregates the dashboard counters.
func (s *AdminService) GetAnalytics() (*Analytics, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}
	return &Analytics{
		TotalUsers:   users,
		TotalOrders:  orders,
		TotalRevenue: revenue,
	}, nil
}
