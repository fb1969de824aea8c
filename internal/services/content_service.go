package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopdrive/internal/content"
	"shopdrive/internal/domain"
	"shopdrive/internal/filter"
	"shopdrive/internal/validate"
)

// meta exposes the bookkeeping fields every content record carries.
type meta struct {
	ID, CreatedAt, UpdatedAt *string
}

// Catalog is the admin-facing service for one content kind: it validates
// input, assigns ids and timestamps, and delegates storage to the backend.
type Catalog[T any] struct {
	Kind  string
	items content.Collection[T]
	blank func() T
	check func(*T) error
	meta  func(*T) meta
	now   func() time.Time
}

// New returns a record pre-filled with the kind's defaults, for decoding
// partial input into.
func (s *Catalog[T]) New() T { return s.blank() }

// ID reads the id of item.
func (s *Catalog[T]) ID(item *T) string { return *s.meta(item).ID }

func (s *Catalog[T]) List(ctx context.Context, q filter.Query) ([]T, error) {
	return s.items.List(ctx, q)
}

func (s *Catalog[T]) Get(ctx context.Context, id string) (T, error) {
	return s.items.Get(ctx, id)
}

func (s *Catalog[T]) Create(ctx context.Context, item *T) error {
	m := s.meta(item)
	if *m.ID == "" {
		*m.ID = uuid.NewString()
	} else if _, ok := validate.ID(*m.ID); !ok {
		return invalid("id may only contain letters, digits, '-' and '_'")
	}
	if err := s.check(item); err != nil {
		return err
	}
	ts := domain.Timestamp(s.now())
	*m.CreatedAt, *m.UpdatedAt = ts, ts
	return s.items.Create(ctx, item)
}

// Update replaces the record with id, keeping its creation time.
func (s *Catalog[T]) Update(ctx context.Context, id string, item *T) error {
	existing, err := s.items.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.check(item); err != nil {
		return err
	}
	m, old := s.meta(item), s.meta(&existing)
	*m.ID = id
	*m.CreatedAt = *old.CreatedAt
	*m.UpdatedAt = domain.Timestamp(s.now())
	return s.items.Update(ctx, item)
}

func (s *Catalog[T]) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domain.ErrInvalidInput}, args...)...)
}

func required(field, v string, max int) error {
	if _, ok := validate.Text(v, max); !ok {
		return invalid("%s is required (max %d characters)", field, max)
	}
	return nil
}

func NewPromos(store content.Store) *Catalog[domain.Promo] {
	return &Catalog[domain.Promo]{
		Kind:  "promos",
		items: store.Promos(),
		blank: func() domain.Promo { return domain.Promo{Status: domain.PromoActive} },
		check: func(p *domain.Promo) error {
			p.Title = strings.TrimSpace(p.Title)
			if err := required("title", p.Title, 200); err != nil {
				return err
			}
			if !validate.PromoStatus(p.Status) {
				return invalid("status must be active, expired or scheduled")
			}
			return nil
		},
		meta: func(p *domain.Promo) meta { return meta{&p.ID, &p.CreatedAt, &p.UpdatedAt} },
		now:  time.Now,
	}
}

func NewArticles(store content.Store) *Catalog[domain.Article] {
	return &Catalog[domain.Article]{
		Kind:  "articles",
		items: store.Articles(),
		blank: func() domain.Article { return domain.Article{Status: domain.ArticlePublished} },
		check: func(a *domain.Article) error {
			a.Title = strings.TrimSpace(a.Title)
			if err := required("title", a.Title, 200); err != nil {
				return err
			}
			if err := required("content", a.Content, 100_000); err != nil {
				return err
			}
			if !validate.ArticleStatus(a.Status) {
				return invalid("status must be published, draft or archived")
			}
			return nil
		},
		meta: func(a *domain.Article) meta { return meta{&a.ID, &a.CreatedAt, &a.UpdatedAt} },
		now:  time.Now,
	}
}

func NewProducts(store content.Store) *Catalog[domain.Product] {
	return &Catalog[domain.Product]{
		Kind:  "products",
		items: store.Products(),
		blank: func() domain.Product { return domain.Product{InStock: true} },
		check: func(p *domain.Product) error {
			p.Name = strings.TrimSpace(p.Name)
			if err := required("name", p.Name, 200); err != nil {
				return err
			}
			if err := required("price", p.Price, 50); err != nil {
				return err
			}
			if p.Rating < 0 || p.Rating > 5 {
				return invalid("rating must be between 0 and 5")
			}
			if p.Reviews < 0 {
				return invalid("reviews must not be negative")
			}
			return nil
		},
		meta: func(p *domain.Product) meta { return meta{&p.ID, &p.CreatedAt, &p.UpdatedAt} },
		now:  time.Now,
	}
}

func NewSponsors(store content.Store) *Catalog[domain.Sponsor] {
	return &Catalog[domain.Sponsor]{
		Kind:  "sponsors",
		items: store.Sponsors(),
		blank: func() domain.Sponsor { return domain.Sponsor{IsActive: true} },
		check: func(s *domain.Sponsor) error {
			s.Name = strings.TrimSpace(s.Name)
			if err := required("name", s.Name, 100); err != nil {
				return err
			}
			if s.Order < 0 {
				return invalid("order must not be negative")
			}
			return nil
		},
		meta: func(s *domain.Sponsor) meta { return meta{&s.ID, &s.CreatedAt, &s.UpdatedAt} },
		now:  time.Now,
	}
}

type SettingsService struct {
	Store content.SettingsStore
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.Store.Get(ctx)
}

func (s *SettingsService) Put(ctx context.Context, v domain.Settings) error {
	if err := required("siteName", v.SiteName, 100); err != nil {
		return err
	}
	if v.ContactEmail != "" {
		if _, ok := validate.Email(v.ContactEmail); !ok {
			return invalid("contactEmail is not a valid address")
		}
	}
	return s.Store.Put(ctx, v)
}
