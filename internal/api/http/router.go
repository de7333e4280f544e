package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/registration-service/internal/api/http/handlers"
	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Staff          *handlers.StaffHandler
	Admin          *handlers.AdminServicesHandler
	Checkout       *handlers.CheckoutHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/staff/login", cfg.Staff.Login)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, cfg.Staff.ChangePassword)

	checkout := app.Group("/checkout")
	checkout.Post("/apply-coupon", cfg.Checkout.ApplyCoupon)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle,
		auth.RequireStaffRole(domain.StaffRoleAdmin, domain.StaffRoleAgent))
	admin.Get("/services", cfg.Admin.ListServices)
	admin.Post("/services", cfg.Admin.CreateService)
	admin.Post("/update-service-status", cfg.Admin.UpdateStatus)
	admin.Post("/update-service-progress", cfg.Admin.UpdateProgress)
	admin.Delete("/delete-service", cfg.Admin.DeleteService)
}
