package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopdrive/internal/log"
	"shopdrive/internal/services"
)

// AttachUser puts the logged-in user, if any, into Locals("user") for
// templates and log entries.
func AttachUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := auth.CurrentUser(c.UserContext(), sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	}
}

// RequireAdmin guards the admin API: 401 without a session, 403 for non-admins.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			applog.Security(c, "access.denied.admin", map[string]any{"reason": "no_session"})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		u, err := auth.CurrentUser(c.UserContext(), sid)
		if err != nil || u == nil {
			applog.Security(c, "access.denied.admin", map[string]any{"reason": "unknown_session"})
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "login required"})
		}
		if u.Role != services.RoleAdmin {
			applog.Security(c, "access.denied.admin", map[string]any{"user": u.ID})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
