package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/yogamaster/yoga_master/stores"
)

var validate = validator.New()

// storeError maps store failures to responses: a missing record is the
// client's problem, anything else means the document store let us down.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	case errors.Is(err, stores.ErrDuplicateEmail):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Email already exists"})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Upstream store failure"})
	}
}
