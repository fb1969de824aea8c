package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopdrive/internal/domain"
)

func TestAdmin_RequiresAdminSession(t *testing.T) {
	app := newTestApp(t)
	body := map[string]any{"name": "Aki GS Astra", "price": "Rp 950.000"}

	entries := captureLogs(t, func() {
		if resp := app.do(t, jsonRequest("POST", "/api/v1/admin/products", "", body)); resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("no session: want 401, got %d", resp.StatusCode)
		}
		if resp := app.do(t, jsonRequest("POST", "/api/v1/admin/products", "forged-sid", body)); resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("unknown session: want 401, got %d", resp.StatusCode)
		}
	})
	if findLog(entries, "access.denied.admin") == nil {
		t.Fatal("access.denied.admin not logged")
	}
}

func TestAdmin_ForbidsNonAdmins(t *testing.T) {
	app := newTestApp(t)
	ctx := t.Context()
	if err := app.store.Users().Upsert(ctx, domain.User{ID: "u-1", Email: "budi@example.com", Role: "USER"}); err != nil {
		t.Fatal(err)
	}
	if err := app.store.Users().BindSession(ctx, "user-sid", "u-1"); err != nil {
		t.Fatal(err)
	}
	resp := app.do(t, jsonRequest("DELETE", "/api/v1/admin/promos/promo-oli-premium", "user-sid", nil))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403, got %d", resp.StatusCode)
	}
}

func TestAdmin_ProductLifecycleFeedsSearch(t *testing.T) {
	app := newTestApp(t)
	sid := app.loginAdmin(t)

	var created domain.Product
	entries := captureLogs(t, func() {
		resp := app.do(t, jsonRequest("POST", "/api/v1/admin/products", sid, map[string]any{
			"name": "Aki GS Astra", "category": "Aki", "price": "Rp 950.000", "description": "Aki kering bebas perawatan",
		}))
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create: want 201, got %d: %s", resp.StatusCode, readBody(t, resp))
		}
		created = decode[domain.Product](t, resp)
	})
	if created.ID == "" || !created.InStock || created.CreatedAt == "" {
		t.Fatalf("create did not fill defaults: %+v", created)
	}
	e := findLog(entries, "admin.products.create")
	if e == nil || e.Fields["id"] != created.ID || e.UserID == "" {
		t.Fatalf("audit entry missing or incomplete: %+v", entries)
	}

	got := decode[[]domain.SearchResult](t, app.get(t, "/api/v1/search?q=gs%20astra"))
	if len(got) != 1 || got[0].ID != created.ID || got[0].URL != "/produk/"+created.ID {
		t.Fatalf("new product not searchable: %+v", got)
	}

	// Partial update: only inStock changes, which hides the product from search.
	resp := app.do(t, jsonRequest("PUT", "/api/v1/admin/products/"+created.ID, sid, map[string]any{"inStock": false}))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: want 200, got %d", resp.StatusCode)
	}
	updated := decode[domain.Product](t, resp)
	if updated.InStock || updated.Name != "Aki GS Astra" || updated.CreatedAt != created.CreatedAt {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if got := decode[[]domain.SearchResult](t, app.get(t, "/api/v1/search?q=gs%20astra")); len(got) != 0 {
		t.Fatalf("out-of-stock product still searchable: %+v", got)
	}

	if resp := app.do(t, jsonRequest("DELETE", "/api/v1/admin/products/"+created.ID, sid, nil)); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: want 204, got %d", resp.StatusCode)
	}
	if resp := app.get(t, "/api/v1/products/"+created.ID); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("after delete: want 404, got %d", resp.StatusCode)
	}
	if resp := app.do(t, jsonRequest("DELETE", "/api/v1/admin/products/"+created.ID, sid, nil)); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete: want 404, got %d", resp.StatusCode)
	}
}

func TestAdmin_RejectsInvalidWrites(t *testing.T) {
	app := newTestApp(t)
	sid := app.loginAdmin(t)

	cases := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{"missing title", jsonRequest("POST", "/api/v1/admin/promos", sid, map[string]any{"description": "x"}), http.StatusBadRequest},
		{"bad status", jsonRequest("PUT", "/api/v1/admin/articles/artikel-tanda-ganti-oli", sid, map[string]any{"status": "active"}), http.StatusBadRequest},
		{"rating range", jsonRequest("POST", "/api/v1/admin/products", sid, map[string]any{"name": "x", "price": "Rp 1", "rating": 9}), http.StatusBadRequest},
		{"unknown id", jsonRequest("PUT", "/api/v1/admin/sponsors/sponsor-nope", sid, map[string]any{"name": "x"}), http.StatusNotFound},
	}
	for _, tc := range cases {
		if resp := app.do(t, tc.req); resp.StatusCode != tc.status {
			t.Errorf("%s: want %d, got %d", tc.name, tc.status, resp.StatusCode)
		}
	}

	// Form posts are not accepted on the JSON API.
	req := httptest.NewRequest("POST", "/api/v1/admin/promos", strings.NewReader("title=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	if resp := app.do(t, req); resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Fatalf("form body: want 415, got %d", resp.StatusCode)
	}

	// Malformed JSON.
	req = httptest.NewRequest("POST", "/api/v1/admin/promos", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	if resp := app.do(t, req); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed body: want 400, got %d", resp.StatusCode)
	}
}

func TestAdmin_UpdateSettings(t *testing.T) {
	app := newTestApp(t)
	sid := app.loginAdmin(t)

	resp := app.do(t, jsonRequest("PUT", "/api/v1/admin/settings", sid, map[string]any{"contactPhone": "0211234567"}))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	s := decode[domain.Settings](t, app.get(t, "/api/v1/settings"))
	if s.ContactPhone != "0211234567" || s.SiteName != domain.DefaultSettings().SiteName {
		t.Fatalf("settings not merged: %+v", s)
	}

	resp = app.do(t, jsonRequest("PUT", "/api/v1/admin/settings", sid, map[string]any{"contactEmail": "nope"}))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad email: want 400, got %d", resp.StatusCode)
	}
}
