// Package content defines the contract every content backend implements:
// the relational repos, the in-memory store and the remote HTTP client.
package content

import (
	"context"

	"shopdrive/internal/domain"
	"shopdrive/internal/filter"
)

// Collection is the CRUD surface for one entity kind.
type Collection[T any] interface {
	List(ctx context.Context, q filter.Query) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) error
}

type SettingsStore interface {
	Get(ctx context.Context) (domain.Settings, error)
	Put(ctx context.Context, s domain.Settings) error
}

type Store interface {
	Promos() Collection[domain.Promo]
	Articles() Collection[domain.Article]
	Products() Collection[domain.Product]
	Sponsors() Collection[domain.Sponsor]
	Settings() SettingsStore
}

// Listing reads full, unfiltered collections from a Store. It is the read
// path the search core consumes; visibility is decided by the caller.
type Listing struct {
	Store Store
}

func (l Listing) ListPromotions(ctx context.Context) ([]domain.Promo, error) {
	return l.Store.Promos().List(ctx, filter.Query{})
}

func (l Listing) ListArticles(ctx context.Context) ([]domain.Article, error) {
	return l.Store.Articles().List(ctx, filter.Query{})
}

func (l Listing) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return l.Store.Products().List(ctx, filter.Query{})
}
