package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"shopdrive/internal/filter"
	"shopdrive/internal/log"
	"shopdrive/internal/metrics"
	"shopdrive/internal/services"
	"shopdrive/internal/validate"
)

// ContentHandler exposes one content kind: public reads plus the admin writes
// mounted behind RequireAdmin.
type ContentHandler[T any] struct {
	Svc     *services.Catalog[T]
	Filters func(c *fiber.Ctx) (filter.Query, error)
}

// List serves GET /api/v1/{kind} with the kind's optional filters.
func (h *ContentHandler[T]) List(c *fiber.Ctx) error {
	q, err := h.Filters(c)
	if err != nil {
		return badRequest(c, "filter", err.Error())
	}
	items, err := h.Svc.List(c.UserContext(), q)
	if err != nil {
		return apiError(c, h.Svc.Kind+".list.fail", err)
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(items)
}

func (h *ContentHandler[T]) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "id", "invalid id")
	}
	item, err := h.Svc.Get(c.UserContext(), id)
	if err != nil {
		return apiError(c, h.Svc.Kind+".get.fail", err)
	}
	return c.JSON(item)
}

// Create serves POST /api/v1/admin/{kind}. Fields left out of the body keep
// the kind's defaults.
func (h *ContentHandler[T]) Create(c *fiber.Ctx) error {
	if !c.Is("json") {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": "expected application/json"})
	}
	item := h.Svc.New()
	if err := c.BodyParser(&item); err != nil {
		return badRequest(c, "body", "malformed JSON body")
	}
	if err := h.Svc.Create(c.UserContext(), &item); err != nil {
		return h.writeFailed(c, "create", err)
	}
	h.written(c, "create", fiber.StatusCreated, h.Svc.ID(&item))
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update serves PUT /api/v1/admin/{kind}/:id. The body is applied over the
// stored record, so absent fields are left unchanged.
func (h *ContentHandler[T]) Update(c *fiber.Ctx) error {
	if !c.Is("json") {
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": "expected application/json"})
	}
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "id", "invalid id")
	}
	item, err := h.Svc.Get(c.UserContext(), id)
	if err != nil {
		return h.writeFailed(c, "update", err)
	}
	if err := c.BodyParser(&item); err != nil {
		return badRequest(c, "body", "malformed JSON body")
	}
	if err := h.Svc.Update(c.UserContext(), id, &item); err != nil {
		return h.writeFailed(c, "update", err)
	}
	h.written(c, "update", fiber.StatusOK, id)
	return c.JSON(item)
}

func (h *ContentHandler[T]) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "id", "invalid id")
	}
	if err := h.Svc.Delete(c.UserContext(), id); err != nil {
		return h.writeFailed(c, "delete", err)
	}
	h.written(c, "delete", fiber.StatusNoContent, id)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ContentHandler[T]) written(c *fiber.Ctx, op string, status int, id string) {
	metrics.RecordAdminWrite(h.Svc.Kind, op, strconv.Itoa(status))
	log.Audit(c, "admin."+h.Svc.Kind+"."+op, map[string]any{"id": id})
}

func (h *ContentHandler[T]) writeFailed(c *fiber.Ctx, op string, err error) error {
	metrics.RecordAdminWrite(h.Svc.Kind, op, strconv.Itoa(statusOf(err)))
	return apiError(c, "admin."+h.Svc.Kind+"."+op+".fail", err)
}
