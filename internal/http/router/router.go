// Package router assembles the Fiber application: middleware stack, public
// search and content API, admin API, login and the HTML search page.
package router

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shopdrive/internal/content"
	"shopdrive/internal/http/handlers"
	applog "shopdrive/internal/log"
	"shopdrive/internal/metrics"
	"shopdrive/internal/search"
	"shopdrive/internal/services"
)

type Options struct {
	Store  content.Store
	Search *search.Service
	Auth   *services.AuthService
	Views  fiber.Views

	// LimiterStorage shares rate-limit counters between instances; nil keeps them in memory.
	LimiterStorage fiber.Storage
	// SearchLimit is the default result cap of the search API.
	SearchLimit int
	// SearchRate is the per-IP budget for search requests per minute (0 means 60).
	SearchRate int
	// LoginRate is the per-IP budget for login attempts per 10 minutes (0 means 5).
	LoginRate int
	// AccessLog enables Fiber's request logger.
	AccessLog bool
}

// ErrorHandler answers JSON under /api/ and the notfound page elsewhere,
// without leaking internal error text.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg, apiMsg := "Something went wrong. Please try again.", "internal error"
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < 500 {
		code, msg, apiMsg = fe.Code, fe.Message, fe.Message
	} else {
		applog.Error(c, "server.error", err, nil)
	}
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"error": apiMsg})
	}
	// Avoid leaking internals; best-effort render
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

func New(o Options) *fiber.App {
	if o.SearchRate <= 0 {
		o.SearchRate = 60
	}
	if o.LoginRate <= 0 {
		o.LoginRate = 5
	}
	if o.SearchLimit <= 0 {
		o.SearchLimit = search.DefaultLimit
	}

	app := fiber.New(fiber.Config{
		Views:        o.Views,
		ErrorHandler: ErrorHandler,
		BodyLimit:    1 << 20, // 1 MiB
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	if o.AccessLog {
		app.Use(logger.New())
	}
	app.Use(helmet.New())
	app.Use(handlers.AttachUser(o.Auth))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		// The JSON API is not form-driven; admin writes there require a JSON body instead.
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	deps := handlers.NewDeps(o.Store, o.Search, o.Auth, o.SearchLimit)

	searchLimiter := limiter.New(limiter.Config{
		Max:        o.SearchRate,
		Expiration: time.Minute,
		Storage:    o.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|search"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.search.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	})

	// Public pages
	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/search") })
	app.Get("/search", searchLimiter, deps.SearchHandler.Page)

	// Public API
	api := app.Group("/api/v1")
	api.Get("/search", searchLimiter, deps.SearchHandler.API)
	api.Get("/search/suggestions", searchLimiter, deps.SearchHandler.Suggestions)
	api.Get("/promos", deps.PromoHandler.List)
	api.Get("/promos/:id", deps.PromoHandler.Get)
	api.Get("/articles", deps.ArticleHandler.List)
	api.Get("/articles/:id", deps.ArticleHandler.Get)
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Get("/sponsors", deps.SponsorHandler.List)
	api.Get("/sponsors/:id", deps.SponsorHandler.Get)
	api.Get("/settings", deps.SettingsHandler.Get)

	// Admin API
	admin := api.Group("/admin", handlers.RequireAdmin(o.Auth))
	admin.Post("/promos", deps.PromoHandler.Create)
	admin.Put("/promos/:id", deps.PromoHandler.Update)
	admin.Delete("/promos/:id", deps.PromoHandler.Delete)
	admin.Post("/articles", deps.ArticleHandler.Create)
	admin.Put("/articles/:id", deps.ArticleHandler.Update)
	admin.Delete("/articles/:id", deps.ArticleHandler.Delete)
	admin.Post("/products", deps.ProductHandler.Create)
	admin.Put("/products/:id", deps.ProductHandler.Update)
	admin.Delete("/products/:id", deps.ProductHandler.Delete)
	admin.Post("/sponsors", deps.SponsorHandler.Create)
	admin.Put("/sponsors/:id", deps.SponsorHandler.Update)
	admin.Delete("/sponsors/:id", deps.SponsorHandler.Delete)
	admin.Put("/settings", deps.SettingsHandler.Put)

	// Auth routes (login throttled)
	authH := deps.AuthHandler
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        o.LoginRate,
		Expiration: 10 * time.Minute,
		Storage:    o.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|login"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Health, metrics & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", metrics.Handler())
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	return app
}
