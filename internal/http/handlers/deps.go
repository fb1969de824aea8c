package handlers

import (
	"shopdrive/internal/content"
	"shopdrive/internal/domain"
	"shopdrive/internal/search"
	"shopdrive/internal/services"
)

type Deps struct {
	SearchHandler   *SearchHandler
	PromoHandler    *ContentHandler[domain.Promo]
	ArticleHandler  *ContentHandler[domain.Article]
	ProductHandler  *ContentHandler[domain.Product]
	SponsorHandler  *ContentHandler[domain.Sponsor]
	SettingsHandler *SettingsHandler
	AuthHandler     *AuthHandler
}

// NewDeps wires handlers over one content backend. searchLimit is the
// default result cap of the search API.
func NewDeps(store content.Store, searchSvc *search.Service, auth *services.AuthService, searchLimit int) *Deps {
	return &Deps{
		SearchHandler:   &SearchHandler{Search: searchSvc, Limit: searchLimit},
		PromoHandler:    &ContentHandler[domain.Promo]{Svc: services.NewPromos(store), Filters: promoFilters},
		ArticleHandler:  &ContentHandler[domain.Article]{Svc: services.NewArticles(store), Filters: articleFilters},
		ProductHandler:  &ContentHandler[domain.Product]{Svc: services.NewProducts(store), Filters: productFilters},
		SponsorHandler:  &ContentHandler[domain.Sponsor]{Svc: services.NewSponsors(store), Filters: sponsorFilters},
		SettingsHandler: &SettingsHandler{Svc: &services.SettingsService{Store: store.Settings()}},
		AuthHandler:     &AuthHandler{Auth: auth},
	}
}
