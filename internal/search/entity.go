package search

import (
	"context"
	"fmt"

	"shopdrive/internal/domain"
)

// entity describes how one collection is searched.
type entity[T any] struct {
	visible func(T) bool
	fields  func(T) []string
	project func(T) domain.SearchResult
}

var promotions = entity[domain.Promo]{
	visible: func(p domain.Promo) bool { return p.Status == domain.PromoActive },
	fields:  func(p domain.Promo) []string { return []string{p.Title, p.Description} },
	project: func(p domain.Promo) domain.SearchResult {
		return domain.SearchResult{
			ID: p.ID, Title: p.Title, Description: p.Description,
			Kind: domain.KindPromotion, URL: "/promo/" + p.ID, Image: p.Image,
			Extra: annotate(p.Discount, p.DiscountPrice),
		}
	},
}

var articles = entity[domain.Article]{
	visible: func(a domain.Article) bool { return a.Status == domain.ArticlePublished },
	fields: func(a domain.Article) []string {
		return []string{a.Title, a.Excerpt, a.Content, a.Author, a.Category}
	},
	project: func(a domain.Article) domain.SearchResult {
		return domain.SearchResult{
			ID: a.ID, Title: a.Title, Description: a.Excerpt,
			Kind: domain.KindArticle, URL: "/artikel/" + a.ID, Image: a.Image,
			Extra: annotate(a.Author, a.ReadTime),
		}
	},
}

var products = entity[domain.Product]{
	visible: func(p domain.Product) bool { return p.InStock },
	fields:  func(p domain.Product) []string { return []string{p.Name, p.Description, p.Category} },
	project: func(p domain.Product) domain.SearchResult {
		return domain.SearchResult{
			ID: p.ID, Title: p.Name, Description: p.Description,
			Kind: domain.KindProduct, URL: "/produk/" + p.ID, Image: p.Image,
			Extra: annotate(p.Category, p.Price),
		}
	},
}

func annotate(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " • " + b
}

// run filters records by visibility and match, preserving store order.
func (e entity[T]) run(q string, records []T) []domain.SearchResult {
	nq := Normalize(q)
	out := []domain.SearchResult{}
	for _, r := range records {
		if e.visible(r) && matchNormalized(nq, e.fields(r)) {
			out = append(out, e.project(r))
		}
	}
	return out
}

func (s *Service) searchPromotions(ctx context.Context, q string) ([]domain.SearchResult, error) {
	recs, err := s.src.ListPromotions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	return promotions.run(q, recs), nil
}

func (s *Service) searchArticles(ctx context.Context, q string) ([]domain.SearchResult, error) {
	recs, err := s.src.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles.run(q, recs), nil
}

func (s *Service) searchProducts(ctx context.Context, q string) ([]domain.SearchResult, error) {
	recs, err := s.src.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products.run(q, recs), nil
}
