package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopdrive/internal/domain"
	"shopdrive/internal/log"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrReadOnly):
		return fiber.StatusMethodNotAllowed
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

// apiError writes err as {"error": msg}. Validation messages are safe to show;
// anything unexpected is logged under action and replaced by a generic text.
func apiError(c *fiber.Ctx, action string, err error) error {
	code := statusOf(err)
	msg := err.Error()
	switch code {
	case fiber.StatusNotFound:
		msg = "not found"
	case fiber.StatusMethodNotAllowed:
		msg = "content store is read-only"
	case fiber.StatusUnauthorized:
		msg = "unauthorized"
	case fiber.StatusInternalServerError:
		log.Error(c, action, err, nil)
		msg = "internal error"
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, field, msg string) error {
	log.Security(c, "validation.fail", map[string]any{"field": field})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
