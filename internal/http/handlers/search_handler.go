package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"shopdrive/internal/domain"
	"shopdrive/internal/log"
	"shopdrive/internal/metrics"
	"shopdrive/internal/search"
	"shopdrive/internal/validate"
)

type SearchHandler struct {
	Search *search.Service
	Limit  int
}

const kindAll = "all"

// resultGroup is one section of the HTML results page.
type resultGroup struct {
	Label   string
	Results []domain.SearchResult
}

var groupLabels = []struct {
	kind  domain.Kind
	label string
}{
	{domain.KindPromotion, "Promo"},
	{domain.KindArticle, "Artikel"},
	{domain.KindProduct, "Produk"},
}

// API serves GET /api/v1/search?q=&limit=&type=.
func (h *SearchHandler) API(c *fiber.Ctx) error {
	started := time.Now()
	label := kindAll

	q, ok := validate.Q(c.Query("q"))
	if !ok {
		metrics.RecordSearch(label, metrics.OutcomeInvalid, started, 0)
		return badRequest(c, "q", "invalid search query")
	}
	limit, ok := validate.Limit(c.Query("limit"), h.Limit, validate.MaxLimit)
	if !ok {
		metrics.RecordSearch(label, metrics.OutcomeInvalid, started, 0)
		return badRequest(c, "limit", "invalid limit")
	}
	var kind domain.Kind
	if t := c.Query("type"); t != "" {
		if kind, ok = domain.ParseKind(t); !ok {
			metrics.RecordSearch(label, metrics.OutcomeInvalid, started, 0)
			return badRequest(c, "type", "invalid type")
		}
		label = string(kind)
	}

	var (
		results []domain.SearchResult
		err     error
	)
	if kind == "" {
		results, err = h.Search.SearchAll(c.UserContext(), q, limit)
	} else {
		results, err = h.Search.SearchKind(c.UserContext(), kind, q)
		if len(results) > limit {
			results = results[:limit]
		}
	}
	if err != nil {
		metrics.RecordSearch(label, metrics.OutcomeError, started, 0)
		log.Error(c, "search.error", err, map[string]any{"q": q, "type": label})
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "search temporarily unavailable"})
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	outcome := metrics.OutcomeOK
	if len(results) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordSearch(label, outcome, started, len(results))
	return c.JSON(results)
}

// Suggestions serves GET /api/v1/search/suggestions?q=.
func (h *SearchHandler) Suggestions(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		return badRequest(c, "q", "invalid search query")
	}
	out, err := h.Search.Suggest(c.UserContext(), q)
	if err != nil {
		log.Error(c, "search.suggest.error", err, map[string]any{"q": q})
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "search temporarily unavailable"})
	}
	return c.JSON(out)
}

// Page renders GET /search with results grouped by type.
func (h *SearchHandler) Page(c *fiber.Ctx) error {
	started := time.Now()
	q, ok := validate.Q(c.Query("q"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "q"})
		metrics.RecordSearch(kindAll, metrics.OutcomeInvalid, started, 0)
		return render(c.Status(fiber.StatusBadRequest), "search", fiber.Map{
			"Q": "", "Count": 0, "Err": "Masukkan kata kunci yang valid",
		})
	}
	if q == "" {
		return render(c, "search", fiber.Map{"Q": "", "Count": 0})
	}

	results, err := h.Search.SearchAll(c.UserContext(), q, validate.MaxLimit)
	if err != nil {
		metrics.RecordSearch(kindAll, metrics.OutcomeError, started, 0)
		log.Error(c, "search.error", err, map[string]any{"q": q, "type": kindAll})
		return render(c.Status(fiber.StatusServiceUnavailable), "search", fiber.Map{
			"Q": q, "Count": 0, "Failed": true,
		})
	}

	outcome := metrics.OutcomeOK
	if len(results) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordSearch(kindAll, outcome, started, len(results))
	return render(c, "search", fiber.Map{
		"Q": q, "Count": len(results), "Groups": groupByKind(results),
	})
}

// groupByKind keeps the ranked order inside each group and drops empty groups.
func groupByKind(results []domain.SearchResult) []resultGroup {
	var groups []resultGroup
	for _, g := range groupLabels {
		var rs []domain.SearchResult
		for _, r := range results {
			if r.Kind == g.kind {
				rs = append(rs, r)
			}
		}
		if len(rs) > 0 {
			groups = append(groups, resultGroup{Label: g.label, Results: rs})
		}
	}
	return groups
}
