package handlers

import (
	"github.com/gofiber/fiber/v2"

	"usersvc/internal/repos"
)

type HealthHandler struct {
	Store *repos.Gateway
}

// Health never touches the store.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// Ready reports whether the store answers a ping.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.Store.Ping(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
