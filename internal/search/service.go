// Package search is the storefront's multi-entity search: it reads the full
// promo, article and product collections on every query, keeps only the
// visible records that match, and merges them into one capped list.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"shopdrive/internal/domain"
)

const (
	DefaultLimit   = 10
	DefaultTimeout = 5 * time.Second
)

// Source is the read path over the content collections. Each call must return
// the full current collection; visibility is decided here, not by the store.
type Source interface {
	ListPromotions(ctx context.Context) ([]domain.Promo, error)
	ListArticles(ctx context.Context) ([]domain.Article, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type Service struct {
	src     Source
	timeout time.Duration
	limit   int
}

type Option func(*Service)

// WithTimeout bounds every search call, store reads included. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithDefaultLimit sets the cap used when SearchAll is called with a negative limit.
func WithDefaultLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.limit = n
		}
	}
}

func NewService(src Source, opts ...Option) *Service {
	s := &Service{src: src, timeout: DefaultTimeout, limit: DefaultLimit}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// SearchAll runs the three entity searches concurrently, concatenates them as
// promotions, articles, products, moves title matches ahead of the rest
// without otherwise reordering, and truncates to limit. A negative limit
// means the service default; zero yields an empty list.
// The query is matched as given; trimming only decides whether it is empty.
// Any store failure fails the whole call; there are no partial results.
func (s *Service) SearchAll(ctx context.Context, q string, limit int) ([]domain.SearchResult, error) {
	if strings.TrimSpace(q) == "" {
		return []domain.SearchResult{}, nil
	}
	if limit < 0 {
		limit = s.limit
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var promos, articles, products []domain.SearchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		promos, err = s.searchPromotions(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		articles, err = s.searchArticles(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.searchProducts(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := make([]domain.SearchResult, 0, len(promos)+len(articles)+len(products))
	all = append(all, promos...)
	all = append(all, articles...)
	all = append(all, products...)

	all = rank(all, Normalize(q))
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// rank is a stable two-bucket partition: title hits first, everything else after.
func rank(results []domain.SearchResult, nq string) []domain.SearchResult {
	hits := make([]domain.SearchResult, 0, len(results))
	var rest []domain.SearchResult
	for _, r := range results {
		if strings.Contains(Normalize(r.Title), nq) {
			hits = append(hits, r)
		} else {
			rest = append(rest, r)
		}
	}
	return append(hits, rest...)
}

func (s *Service) SearchPromotions(ctx context.Context, q string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(q) == "" {
		return []domain.SearchResult{}, nil
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.searchPromotions(ctx, q)
}

func (s *Service) SearchArticles(ctx context.Context, q string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(q) == "" {
		return []domain.SearchResult{}, nil
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.searchArticles(ctx, q)
}

func (s *Service) SearchProducts(ctx context.Context, q string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(q) == "" {
		return []domain.SearchResult{}, nil
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return s.searchProducts(ctx, q)
}

// SearchKind dispatches to the single-kind entrypoint.
func (s *Service) SearchKind(ctx context.Context, kind domain.Kind, q string) ([]domain.SearchResult, error) {
	switch kind {
	case domain.KindPromotion:
		return s.SearchPromotions(ctx, q)
	case domain.KindArticle:
		return s.SearchArticles(ctx, q)
	case domain.KindProduct:
		return s.SearchProducts(ctx, q)
	}
	return nil, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidInput, kind)
}
