package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/musqaan/flipcart-clone/internal/repositories"
	"github.com/musqaan/flipcart-clone/internal/services"
)

// AdminHandler handles HTTP requests for admin record management and the
// dashboard analytics.
type AdminHandler struct {
	service  *services.AdminService
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service:  service,
		validate: validator.New(),
	}
}

// HandleList returns all admin records.
func (h *AdminHandler) HandleList(c *fiber.Ctx) error {
	admins, err := h.service.ListAdmins()
	if err != nil {
		log.Printf("Fetch admins error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch admins",
		})
	}
	return c.JSON(admins)
}

// AdminRequest is the create request body for an admin record.
type AdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

// HandleCreate adds a new admin record with Active status.
func (h *AdminHandler) HandleCreate(c *fiber.Ctx) error {
	var req AdminRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing admin request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name, email and password are required",
		})
	}

	admin, err := h.service.CreateAdmin(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		log.Printf("Add admin error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add admin",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(admin)
}

// HandleUpdate sets the role and status of an admin record and returns the
// updated record.
func (h *AdminHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid admin id",
		})
	}

	var req struct {
		Role   string `json:"role"`
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing admin update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	admin, err := h.service.UpdateAdmin(uint(id), req.Role, req.Status)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Admin not found",
			})
		}
		log.Printf("Update admin error for %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update admin",
		})
	}

	return c.JSON(admin)
}

// HandleDelete removes an admin record.
func (h *AdminHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid admin id",
		})
	}

	if err := h.service.DeleteAdmin(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Admin not found",
			})
		}
		log.Printf("Delete admin error for %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete admin",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Admin deleted successfully",
	})
}

// HandleAnalytics returns the dashboard summary counters.
func (h *AdminHandler) HandleAnalytics(c *fiber.Ctx) error {
	analytics, err := h.service.GetAnalytics()
	if err != nil {
		log.Printf("Analytics error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch analytics data",
		})
	}
	return c.JSON(analytics)
}
