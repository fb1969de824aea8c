package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"shopdrive/internal/domain"
	"shopdrive/internal/http/router"
	"shopdrive/internal/httpstore"
	"shopdrive/internal/validate"
)

func promoIDs(ps []domain.Promo) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestListings_DefaultOrder(t *testing.T) {
	app := newTestApp(t)

	promos := decode[[]domain.Promo](t, app.get(t, "/api/v1/promos"))
	want := []string{"promo-ban-berkualitas", "promo-service-lengkap", "promo-oli-premium"}
	if !reflect.DeepEqual(promoIDs(promos), want) {
		t.Fatalf("promos newest first: want %v, got %v", want, promoIDs(promos))
	}

	sponsors := decode[[]domain.Sponsor](t, app.get(t, "/api/v1/sponsors?active=true&limit=2"))
	if len(sponsors) != 2 || sponsors[0].ID != "sponsor-castrol" || sponsors[1].ID != "sponsor-michelin" {
		t.Fatalf("sponsors by order: got %+v", sponsors)
	}
}

func TestListings_Filters(t *testing.T) {
	app := newTestApp(t)

	promos := decode[[]domain.Promo](t, app.get(t, "/api/v1/promos?status=scheduled"))
	if !reflect.DeepEqual(promoIDs(promos), []string{"promo-ban-berkualitas"}) {
		t.Fatalf("status=scheduled: got %v", promoIDs(promos))
	}

	articles := decode[[]domain.Article](t, app.get(t, "/api/v1/articles?category=Tips%20Perawatan&status=published"))
	if len(articles) != 2 || articles[0].ID != "artikel-tanda-ganti-oli" {
		t.Fatalf("articles by category: got %+v", articles)
	}

	products := decode[[]domain.Product](t, app.get(t, "/api/v1/products?search=oli&in_stock=true"))
	if len(products) != 1 || products[0].ID != "produk-castrol-gtx" {
		t.Fatalf("products search: got %+v", products)
	}

	products = decode[[]domain.Product](t, app.get(t, "/api/v1/products?is_promo=false"))
	if len(products) != 1 || products[0].ID != "produk-michelin-primacy" {
		t.Fatalf("products is_promo=false: got %+v", products)
	}
}

func TestListings_RankSearchMatches(t *testing.T) {
	app := newTestApp(t)
	// "Paket Service Lengkap" only mentions oli in its description, so it ranks last.
	promos := decode[[]domain.Promo](t, app.get(t, "/api/v1/promos?search=oli"))
	want := []string{"promo-oli-premium", "promo-service-lengkap"}
	if !reflect.DeepEqual(promoIDs(promos), want) {
		t.Fatalf("want %v, got %v", want, promoIDs(promos))
	}
}

func TestListings_RejectBadFilters(t *testing.T) {
	app := newTestApp(t)
	for _, target := range []string{
		"/api/v1/promos?status=published",
		"/api/v1/articles?status=active",
		"/api/v1/products?in_stock=maybe",
		"/api/v1/products?search=" + strings.Repeat("x", validate.MaxQueryLen+1),
		"/api/v1/sponsors?limit=-1",
	} {
		if resp := app.get(t, target); resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", target, resp.StatusCode)
		}
	}
}

func TestGetByID(t *testing.T) {
	app := newTestApp(t)

	resp := app.get(t, "/api/v1/products/produk-castrol-gtx")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	if p := decode[domain.Product](t, resp); p.Name != "Oli Mesin Castrol GTX" || !p.InStock {
		t.Fatalf("unexpected product: %+v", p)
	}

	if resp := app.get(t, "/api/v1/articles/does-not-exist"); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown id: want 404, got %d", resp.StatusCode)
	}
	if resp := app.get(t, "/api/v1/promos/bad!id"); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed id: want 400, got %d", resp.StatusCode)
	}
}

func TestSettings_DefaultsWhenUnset(t *testing.T) {
	app := newTestApp(t)
	s := decode[domain.Settings](t, app.get(t, "/api/v1/settings"))
	if s != domain.DefaultSettings() {
		t.Fatalf("want defaults, got %+v", s)
	}
}

// A second instance backed by the first one's API searches the same data
// and refuses writes.
func TestRemoteStore_SearchesUpstreamAndIsReadOnly(t *testing.T) {
	upstream := newTestApp(t)
	srv := httptest.NewServer(adaptor.FiberApp(upstream.App))
	defer srv.Close()

	remote, err := httpstore.New(srv.URL+"/api/v1", httpstore.WithRate(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	app := newTestApp(t, func(o *router.Options) {
		o.Store = remote
		o.Search = searchOver(remote)
	})

	got := decode[[]domain.SearchResult](t, app.get(t, "/api/v1/search?q=oli"))
	want := []string{"promo-oli-premium", "artikel-tanda-ganti-oli", "produk-castrol-gtx", "promo-service-lengkap"}
	if !reflect.DeepEqual(resultIDs(got), want) {
		t.Fatalf("remote search: want %v, got %v", want, resultIDs(got))
	}

	sid := app.loginAdmin(t)
	resp := app.do(t, jsonRequest("POST", "/api/v1/admin/promos", sid, map[string]any{"title": "Promo Aki"}))
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("write to remote store: want 405, got %d", resp.StatusCode)
	}
}
