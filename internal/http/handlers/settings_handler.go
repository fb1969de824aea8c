package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"shopdrive/internal/log"
	"shopdrive/internal/metrics"
	"shopdrive/internal/services"
)

type SettingsHandler struct {
	Svc *services.SettingsService
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s, err := h.Svc.Get(c.UserContext())
	if err != nil {
		return apiError(c, "settings.get.fail", err)
	}
	return c.JSON(s)
}

// Put serves PUT /api/v1/admin/settings; the body is merged over the current settings.
func (h *SettingsHandler) Put(c *fiber.Ctx) error {
	if !c.Is("json") {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": "expected application/json"})
	}
	s, err := h.Svc.Get(c.UserContext())
	if err != nil {
		return apiError(c, "settings.get.fail", err)
	}
	if err := c.BodyParser(&s); err != nil {
		return badRequest(c, "body", "malformed JSON body")
	}
	if err := h.Svc.Put(c.UserContext(), s); err != nil {
		metrics.RecordAdminWrite("settings", "update", strconv.Itoa(statusOf(err)))
		return apiError(c, "admin.settings.update.fail", err)
	}
	metrics.RecordAdminWrite("settings", "update", strconv.Itoa(fiber.StatusOK))
	log.Audit(c, "admin.settings.update", nil)
	return c.JSON(s)
}
