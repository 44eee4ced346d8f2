package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/timezone-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Users     *handlers.UsersHandler
	Timezones *handlers.TimezonesHandler
}

// RegisterRoutes wires HTTP routes. No route requires authentication: the
// identity resolver already annotated the request, and each operation decides
// for itself what to do with the attached identity.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	app.Get("/users", cfg.Users.List)
	app.Get("/timezones", cfg.Timezones.List)
	app.Post("/timezones", cfg.Timezones.Create)
}
