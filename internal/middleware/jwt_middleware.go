package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/musqaan/flipcart-clone/internal/models"
	"github.com/musqaan/flipcart-clone/internal/services"
)

// AuthRequired is a Fiber middleware that verifies the bearer credential and
// attaches the caller identity (user_id, user_type) to the request context.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		// Numeric claims come back as float64 from the JSON decoding.
		userID, ok := claims["user_id"].(float64)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}
		userType, _ := claims["user_type"].(string)

		c.Locals("user_id", uint(userID))
		c.Locals("user_type", userType)

		return c.Next()
	}
}

// AdminRequired denies callers whose verified identity does not carry the
// admin role. It assumes AuthRequired already ran.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType, _ := c.Locals("user_type").(string)
		if userType != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Access denied",
			})
		}
		return c.Next()
	}
}
