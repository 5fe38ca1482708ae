package handlers

import "github.com/gofiber/fiber/v2"

// Handlers groups every resource handler for route registration.
type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Admin   *AdminHandler
	Product *ProductHandler
	Order   *OrderHandler
}

// RegisterRoutes wires the full API surface. Every route's guard is declared
// here, in one place, rather than inside the individual handlers.
//
// The /api/admins routes intentionally require authentication only, not the
// admin role; that matches the policy of the system this replaces.
func RegisterRoutes(app *fiber.App, h Handlers, authRequired, adminRequired fiber.Handler) {
	api := app.Group("/api")

	// Public
	api.Post("/signup", h.Auth.HandleSignup)
	api.Post("/login", h.Auth.HandleLogin)
	api.Get("/products", h.Product.HandleList)
	api.Get("/products/:id", h.Product.HandleGet)

	// Admin role required
	api.Get("/users", authRequired, adminRequired, h.User.HandleList)
	api.Put("/users/:id", authRequired, adminRequired, h.User.HandleUpdate)
	api.Get("/admin/analytics", authRequired, adminRequired, h.Admin.HandleAnalytics)
	api.Post("/products", authRequired, adminRequired, h.Product.HandleCreate)
	api.Put("/products/:id", authRequired, adminRequired, h.Product.HandleUpdate)
	api.Delete("/products/:id", authRequired, adminRequired, h.Product.HandleDelete)
	api.Get("/orders", authRequired, adminRequired, h.Order.HandleFindOrders)
	api.Put("/orders/:id", authRequired, adminRequired, h.Order.HandleUpdateStatus)

	// Authenticated; ownership checks happen in the handler
	api.Get("/users/:id", authRequired, h.User.HandleGet)
	api.Post("/orders", authRequired, h.Order.HandlePlaceOrder)
	api.Get("/orders/:userId", authRequired, h.Order.HandleGetUserOrders)

	// Authenticated only (legacy policy, see note above)
	api.Get("/admins", authRequired, h.Admin.HandleList)
	api.Post("/admins", authRequired, h.Admin.HandleCreate)
	api.Put("/admins/:id", authRequired, h.Admin.HandleUpdate)
	api.Delete("/admins/:id", authRequired, h.Admin.HandleDelete)
}
