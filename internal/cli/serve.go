package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
	"github.com/spf13/cobra"

	"shopdrive/internal/http/router"
	"shopdrive/internal/limitstore"
	applog "shopdrive/internal/log"
	"shopdrive/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the storefront HTTP server on PORT.

The admin account is created from ADMIN_EMAIL and ADMIN_PASSWORD when both are
set. With REDIS_URL set, rate-limit counters are shared through Redis.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg

	// Optional file logging
	if cfg.LogFile != "" {
		c, err := applog.ToFile(cfg.LogFile)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer c.Close()
		}
	}

	b, err := openBackend(cfg)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Store, err)
	}
	defer b.close()

	auth := &services.AuthService{Users: b.users}
	if cfg.AdminEmail != "" {
		if err := auth.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return fmt.Errorf("seeding admin: %w", err)
		}
		log.Printf("[auth] admin account %s ready", cfg.AdminEmail)
	}

	var limits fiber.Storage
	if cfg.RedisURL != "" {
		s, err := limitstore.Open(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting limiter storage: %w", err)
		}
		defer s.Close()
		limits = s
		log.Printf("[limiter] counters shared through redis")
	}

	engine := html.New(cfg.TemplatesDir, ".html")
	engine.Reload(true)

	app := router.New(router.Options{
		Store:          b.store,
		Search:         b.searchService(cfg),
		Auth:           auth,
		Views:          engine,
		LimiterStorage: limits,
		SearchLimit:    cfg.SearchLimit,
		AccessLog:      true,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- app.Listen(":" + cfg.Port) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Printf("[server] shutting down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}
