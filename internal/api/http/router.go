package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fincalc-service/internal/api/http/handlers"
	"github.com/spec-kit/fincalc-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Calculator     *handlers.CalculatorHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	user := app.Group("/user")
	user.Post("/register", cfg.Users.Register)
	user.Post("/login", cfg.Users.Login)
	user.Get("/profile", cfg.AuthMiddleware.Handle, cfg.Users.Profile)

	calculator := app.Group("/calculator", cfg.AuthMiddleware.Handle)
	calculator.Post("/simple-interest", cfg.Calculator.SimpleInterest)
	calculator.Post("/compound-interest", cfg.Calculator.CompoundInterest)
	calculator.Post("/installment", cfg.Calculator.Installment)
}
