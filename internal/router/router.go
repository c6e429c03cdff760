package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/jadwal-go-api/internal/config"
	"github.com/noah-isme/jadwal-go-api/internal/handler"
	"github.com/noah-isme/jadwal-go-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler         *handler.AuthHandler
	ScheduleHandler     *handler.ScheduleHandler
	CategoryHandler     *handler.CategoryHandler
	RegistrationHandler *handler.RegistrationHandler
	ParticipantHandler  *handler.ParticipantHandler
	SummaryHandler      *handler.SummaryHandler
	AdminMiddleware     fiber.Handler
	RegisterLimiter     fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	if deps.ScheduleHandler != nil {
		deps.ScheduleHandler.RegisterPublic(api.Group("/schedules"))
	}

	if deps.CategoryHandler != nil {
		deps.CategoryHandler.RegisterPublic(api.Group("/categories"))
	}

	if deps.RegistrationHandler != nil {
		register := api.Group("/register")
		if deps.RegisterLimiter != nil {
			register.Use(deps.RegisterLimiter)
		}
		deps.RegistrationHandler.Register(register)
	}

	adminMiddleware := deps.AdminMiddleware
	if adminMiddleware == nil {
		adminMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	admin := api.Group("/admin", adminMiddleware)

	if deps.ScheduleHandler != nil {
		schedules := admin.Group("/schedules")
		deps.ScheduleHandler.RegisterAdmin(schedules)

		if deps.SummaryHandler != nil {
			deps.SummaryHandler.RegisterAdmin(schedules)
		}
	}

	if deps.CategoryHandler != nil {
		deps.CategoryHandler.RegisterAdmin(admin.Group("/categories"))
	}

	if deps.ParticipantHandler != nil {
		deps.ParticipantHandler.RegisterAdmin(admin.Group("/participants"))
	}
}
