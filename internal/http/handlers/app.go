package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"usersvc/internal/config"
	applog "usersvc/internal/log"
)

// NewApp builds the fiber app with middleware and every route bound.
func NewApp(cfg config.Config, d *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "usersvc",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: ErrorHandler,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			Next: func(c *fiber.Ctx) bool {
				return c.Path() == "/health"
			},
			LimitReached: func(c *fiber.Ctx) error {
				c.Status(fiber.StatusTooManyRequests)
				applog.Warn(c, "rate.limit.hit", nil)
				return jsonError(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon")
			},
		}))
	}

	Register(app, d)

	app.Use(func(c *fiber.Ctx) error {
		return jsonError(c, fiber.StatusNotFound, "Not found")
	})
	return app
}

// Register binds the HTTP routes.
func Register(app *fiber.App, d *Deps) {
	app.Get("/health", d.HealthHandler.Health)
	app.Get("/ready", d.HealthHandler.Ready)

	api := app.Group("/api")
	api.Get("/users", d.UserHandler.List)
	api.Get("/users/:id", d.UserHandler.Get)
	api.Post("/users", d.UserHandler.Create)
	api.Put("/users/:id", d.UserHandler.Update)
	api.Delete("/users/:id", d.UserHandler.Delete)
}
