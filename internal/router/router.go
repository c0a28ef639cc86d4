package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wawasandigital/contact-api/internal/config"
	"github.com/wawasandigital/contact-api/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ContactHandler *handler.ContactHandler
	RateLimiter    fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if deps.ContactHandler != nil {
		contact := api.Group("/contact")
		if deps.RateLimiter != nil {
			contact.Use(deps.RateLimiter)
		}
		deps.ContactHandler.Register(contact)
	}
}
