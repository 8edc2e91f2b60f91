package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "usersvc/internal/log"
	"usersvc/internal/repos"
	"usersvc/internal/services"
)

const msgNotFound = "User not found"

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// fail maps a service error to its response: validation 400, missing 404,
// anything else is a storage failure passed through as 500.
func fail(c *fiber.Ctx, action string, err error, fields map[string]any) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.Status(fiber.StatusBadRequest)
		applog.Warn(c, action+".invalid", fields)
		return jsonError(c, fiber.StatusBadRequest, ve.Message)
	case errors.Is(err, repos.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, msgNotFound)
	default:
		c.Status(fiber.StatusInternalServerError)
		applog.Error(c, action+".fail", err, fields)
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// ErrorHandler renders errors that escape a handler as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	c.Status(code)
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	return jsonError(c, code, err.Error())
}
