package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/musqaan/flipcart-clone/internal/models"
	"github.com/musqaan/flipcart-clone/internal/repositories"
	"github.com/musqaan/flipcart-clone/internal/services"
)

// OrderHandler handles HTTP requests for the order workflow.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// HandlePlaceOrder persists a checkout submission as one order row per cart
// line. Structurally invalid submissions are rejected before any row is
// written, echoing the offending lines back to the client.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var sub services.OrderSubmission
	if err := c.BodyParser(&sub); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.service.PlaceOrder(sub)
	if err != nil {
		var verr *services.InvalidSubmissionError
		if errors.As(err, &verr) {
			body := fiber.Map{"error": verr.Reason}
			if len(verr.InvalidItems) > 0 {
				body["invalidItems"] = verr.InvalidItems
			}
			return c.Status(fiber.StatusBadRequest).JSON(body)
		}
		log.Printf("Order insert error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error while placing order",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Order placed successfully!",
		"orderId": result.OrderID,
	})
}

// HandleGetUserOrders returns a user's order history, most recent first. A
// customer may only read their own history; admins may read anyone's.
func (h *OrderHandler) HandleGetUserOrders(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user id",
		})
	}

	callerID, _ := c.Locals("user_id").(uint)
	callerType, _ := c.Locals("user_type").(string)
	if callerID != uint(userID) && callerType != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Access denied",
		})
	}

	orders, err := h.service.GetOrdersByUser(uint(userID))
	if err != nil {
		log.Printf("Orders fetch error for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch orders",
		})
	}
	return c.JSON(orders)
}

// HandleFindOrders returns orders for the admin dashboard, optionally filtered
// by status and restricted to rows updated within the last hour. No matches is
// a 200 with an empty array, never an error.
func (h *OrderHandler) HandleFindOrders(c *fiber.Ctx) error {
	status := c.Query("status")
	recentlyUpdated := c.Query("updated") != ""

	orders, err := h.service.FindOrders(status, recentlyUpdated)
	if err != nil {
		log.Printf("Orders fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch orders",
		})
	}
	return c.JSON(orders)
}

// HandleUpdateStatus applies a status transition to one order row.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.UpdateOrderStatus(uint(orderID), req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, repositories.ErrOrderNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Order not found",
			})
		}
		log.Printf("Order update error for order %d: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order status",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Status updated successfully",
	})
}
