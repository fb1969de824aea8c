package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shopdrive/internal/domain"
	"shopdrive/internal/filter"
	"shopdrive/internal/validate"
)

const maxListLimit = 200

func invalidFilter(name string) error {
	return fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name)
}

// listFilters applies the parameters every listing accepts: search over
// fields (ranked on the first) and limit. Without a limit the whole
// collection is returned.
func listFilters(c *fiber.Ctx, q filter.Query, fields ...string) (filter.Query, error) {
	term, ok := validate.Q(c.Query("search"))
	if !ok {
		return q, invalidFilter("search")
	}
	limit, ok := validate.Limit(c.Query("limit"), 0, maxListLimit)
	if !ok {
		return q, invalidFilter("limit")
	}
	return q.Search(strings.TrimSpace(term), fields...).Take(limit), nil
}

func boolFilter(c *fiber.Ctx, q filter.Query, param, field string) (filter.Query, error) {
	v, set, ok := validate.Bool(c.Query(param))
	if !ok {
		return q, invalidFilter(param)
	}
	if set {
		q = q.Where(field, v)
	}
	return q, nil
}

func textFilter(c *fiber.Ctx, q filter.Query, param, field string) (filter.Query, error) {
	v, ok := validate.Text(c.Query(param), 100)
	if !ok {
		if c.Query(param) == "" {
			return q, nil
		}
		return q, invalidFilter(param)
	}
	return q.Where(field, v), nil
}

func promoFilters(c *fiber.Ctx) (filter.Query, error) {
	var q filter.Query
	if s := c.Query("status"); s != "" {
		if !validate.PromoStatus(s) {
			return q, invalidFilter("status")
		}
		q = q.Where("status", s)
	}
	return listFilters(c, q, "title", "description")
}

func articleFilters(c *fiber.Ctx) (filter.Query, error) {
	var q filter.Query
	if s := c.Query("status"); s != "" {
		if !validate.ArticleStatus(s) {
			return q, invalidFilter("status")
		}
		q = q.Where("status", s)
	}
	q, err := textFilter(c, q, "category", "category")
	if err != nil {
		return q, err
	}
	return listFilters(c, q, "title", "excerpt", "content", "author")
}

func productFilters(c *fiber.Ctx) (filter.Query, error) {
	q, err := textFilter(c, filter.Query{}, "category", "category")
	if err != nil {
		return q, err
	}
	if q, err = boolFilter(c, q, "in_stock", "inStock"); err != nil {
		return q, err
	}
	if q, err = boolFilter(c, q, "is_promo", "isPromo"); err != nil {
		return q, err
	}
	return listFilters(c, q, "name", "description", "category")
}

func sponsorFilters(c *fiber.Ctx) (filter.Query, error) {
	q, err := boolFilter(c, filter.Query{}, "active", "isActive")
	if err != nil {
		return q, err
	}
	return listFilters(c, q)
}
