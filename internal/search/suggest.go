package search

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

const maxSuggestions = 5

var commonTerms = []string{
	"oli mesin", "ban mobil", "aki", "service",
	"promo", "tips perawatan", "modifikasi", "spare part",
}

// Suggest offers completions for a partial query: matching categories of
// visible articles and products first, then common storefront terms.
func (s *Service) Suggest(ctx context.Context, q string) ([]string, error) {
	out := []string{}
	nq := Normalize(strings.TrimSpace(q))
	if nq == "" {
		return out, nil
	}
	ctx, cancel := s.bound(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	var artCats, prodCats []string
	g.Go(func() error {
		recs, err := s.src.ListArticles(gctx)
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		for _, a := range recs {
			if articles.visible(a) {
				artCats = append(artCats, a.Category)
			}
		}
		return nil
	})
	g.Go(func() error {
		recs, err := s.src.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		for _, p := range recs {
			if products.visible(p) {
				prodCats = append(prodCats, p.Category)
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	cats := append(artCats, prodCats...)

	seen := map[string]bool{}
	add := func(c string) {
		key := Normalize(c)
		if c == "" || seen[key] || !strings.Contains(key, nq) {
			return
		}
		seen[key] = true
		out = append(out, c)
	}
	for _, c := range cats {
		add(c)
	}
	for _, t := range commonTerms {
		add(t)
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out, nil
}
