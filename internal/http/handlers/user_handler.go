package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"usersvc/internal/domain"
	applog "usersvc/internal/log"
	"usersvc/internal/services"
	"usersvc/internal/validate"
)

type UserHandler struct {
	Users *services.UserService
}

// bodyInput decodes a JSON body. Field values are kept loosely typed; only
// malformed JSON is an error. Non-JSON, empty or non-object bodies yield an
// empty input, which create rejects and update writes as NULLs.
func bodyInput(c *fiber.Ctx) (domain.UserInput, error) {
	var in domain.UserInput
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || !c.Is("json") {
		return in, nil
	}
	if body[0] != '{' {
		// arrays and scalars carry no fields; still reject broken JSON
		var v any
		return in, json.Unmarshal(body, &v)
	}
	err := c.BodyParser(&in)
	return in, err
}

// GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Users.List(c.UserContext())
	if err != nil {
		return fail(c, "users.list", err, nil)
	}
	return c.JSON(users)
}

// GET /api/users/:id
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	u, err := h.Users.Get(c.UserContext(), id)
	if err != nil {
		return fail(c, "users.get", err, map[string]any{"user_id": id})
	}
	return c.JSON(u)
}

// POST /api/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	in, err := bodyInput(c)
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		applog.Warn(c, "users.create.body", map[string]any{"err": err.Error()})
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	u, err := h.Users.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "users.create", err, nil)
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "users.create", map[string]any{"user_id": u.ID})
	return c.JSON(u)
}

// PUT /api/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	in, err := bodyInput(c)
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		applog.Warn(c, "users.update.body", map[string]any{"user_id": id, "err": err.Error()})
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}
	u, err := h.Users.Update(c.UserContext(), id, in)
	if err != nil {
		return fail(c, "users.update", err, map[string]any{"user_id": id})
	}
	applog.Audit(c, "users.update", map[string]any{"user_id": id})
	return c.JSON(u)
}

// DELETE /api/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, msgNotFound)
	}
	if err := h.Users.Delete(c.UserContext(), id); err != nil {
		return fail(c, "users.delete", err, map[string]any{"user_id": id})
	}
	applog.Audit(c, "users.delete", map[string]any{"user_id": id})
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
