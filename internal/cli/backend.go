package cli

import (
	"fmt"

	"shopdrive/internal/config"
	"shopdrive/internal/content"
	"shopdrive/internal/httpstore"
	"shopdrive/internal/memstore"
	"shopdrive/internal/repos"
	"shopdrive/internal/search"
	"shopdrive/internal/services"
)

type backend struct {
	store content.Store
	users services.UserStore
	close func() error
}

func noClose() error { return nil }

// openBackend connects the content store selected by cfg.Store. Backends
// without a database keep admin accounts in memory.
func openBackend(cfg config.Config) (*backend, error) {
	switch cfg.Store {
	case config.StoreSQLite, config.StorePostgres:
		driver := repos.DriverSQLite
		if cfg.Store == config.StorePostgres {
			driver = repos.DriverPostgres
		}
		db, err := repos.OpenDB(driver, cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return &backend{store: repos.NewStore(db), users: repos.NewUserRepo(db), close: db.Close}, nil

	case config.StoreMemory:
		s := memstore.Seeded()
		return &backend{store: s, users: s.Users(), close: noClose}, nil

	case config.StoreHTTP:
		c, err := httpstore.New(cfg.StoreURL, httpstore.WithRate(cfg.StoreRPS, max(1, int(cfg.StoreRPS))))
		if err != nil {
			return nil, err
		}
		return &backend{store: c, users: memstore.NewUsers(), close: noClose}, nil
	}
	return nil, fmt.Errorf("unknown store %q", cfg.Store)
}

func (b *backend) searchService(cfg config.Config) *search.Service {
	return search.NewService(content.Listing{Store: b.store},
		search.WithTimeout(cfg.SearchTimeout),
		search.WithDefaultLimit(cfg.SearchLimit),
	)
}
