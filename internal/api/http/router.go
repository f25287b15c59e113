package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hr-service/internal/api/http/handlers"
	"github.com/spec-kit/hr-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Manager        *handlers.ManagerHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/users/register", cfg.Users.Register)
	authGroup.Post("/users/login", cfg.Users.Login)
	authGroup.Get("/users/verify", cfg.Users.VerifyEmail)

	permits := app.Group("/permits", cfg.AuthMiddleware.Handle, auth.RequireUsableState())
	permits.Post("/", cfg.Manager.RequestPermit)

	manager := app.Group("/manager", cfg.AuthMiddleware.Handle, auth.RequireUsableState())
	manager.Get("/customers", cfg.Manager.Customers)
	manager.Get("/users/on-wait", cfg.Manager.UsersOnWait)
	manager.Post("/users/authorize", cfg.Manager.AuthorizeUser)
	manager.Get("/employees", cfg.Manager.Employees)
	manager.Get("/permits", cfg.Manager.PendingPermits)
	manager.Post("/permits/authorize", cfg.Manager.AuthorizePermit)
}
