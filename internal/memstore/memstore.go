// Package memstore is the embedded content backend: goroutine-safe
// in-memory collections seeded with the demo catalog.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"shopdrive/internal/content"
	"shopdrive/internal/domain"
	"shopdrive/internal/filter"
)

type collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	id     func(*T) string
	fields func(T) filter.Getter
	order  []filter.Order
}

func (c *collection[T]) List(ctx context.Context, q filter.Query) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	snapshot := append([]T(nil), c.items...)
	c.mu.RUnlock()
	return filter.Apply(snapshot, q.WithDefaultSort(c.order...), c.fields)
}

func (c *collection[T]) indexOf(id string) int {
	for i := range c.items {
		if c.id(&c.items[i]) == id {
			return i
		}
	}
	return -1
}

func (c *collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(id)
	if i < 0 {
		return zero, domain.ErrNotFound
	}
	return c.items[i], nil
}

func (c *collection[T]) Create(ctx context.Context, item *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := c.id(item)
	if id == "" {
		return fmt.Errorf("%w: missing id", domain.ErrInvalidInput)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(id) >= 0 {
		return fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidInput, id)
	}
	c.items = append(c.items, *item)
	return nil
}

func (c *collection[T]) Update(ctx context.Context, item *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(c.id(item))
	if i < 0 {
		return domain.ErrNotFound
	}
	c.items[i] = *item
	return nil
}

func (c *collection[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return domain.ErrNotFound
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	return nil
}

type settings struct {
	mu sync.RWMutex
	s  domain.Settings
}

func (s *settings) Get(ctx context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.s, ctx.Err()
}

func (s *settings) Put(ctx context.Context, v domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.s = v
	s.mu.Unlock()
	return nil
}

type Store struct {
	promos   *collection[domain.Promo]
	articles *collection[domain.Article]
	products *collection[domain.Product]
	sponsors *collection[domain.Sponsor]
	settings *settings
	users    *Users
}

// New returns an empty store with default settings.
func New() *Store {
	return &Store{
		promos: &collection[domain.Promo]{
			id: func(p *domain.Promo) string { return p.ID }, fields: content.PromoFields, order: content.NewestFirst,
		},
		articles: &collection[domain.Article]{
			id: func(a *domain.Article) string { return a.ID }, fields: content.ArticleFields, order: content.NewestFirst,
		},
		products: &collection[domain.Product]{
			id: func(p *domain.Product) string { return p.ID }, fields: content.ProductFields, order: content.NewestFirst,
		},
		sponsors: &collection[domain.Sponsor]{
			id: func(s *domain.Sponsor) string { return s.ID }, fields: content.SponsorFields, order: content.SponsorOrder,
		},
		settings: &settings{s: domain.DefaultSettings()},
		users:    NewUsers(),
	}
}

// Seeded returns a store holding the demo catalog.
func Seeded() *Store {
	s := New()
	d := content.Sample()
	s.promos.items = d.Promos
	s.articles.items = d.Articles
	s.products.items = d.Products
	s.sponsors.items = d.Sponsors
	return s
}

func (s *Store) Promos() content.Collection[domain.Promo]     { return s.promos }
func (s *Store) Articles() content.Collection[domain.Article] { return s.articles }
func (s *Store) Products() content.Collection[domain.Product] { return s.products }
func (s *Store) Sponsors() content.Collection[domain.Sponsor] { return s.sponsors }
func (s *Store) Settings() content.SettingsStore              { return s.settings }
func (s *Store) Users() *Users                                { return s.users }
