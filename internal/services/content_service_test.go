package services_test

import (
	"context"
	"errors"
	"testing"

	"shopdrive/internal/domain"
	"shopdrive/internal/filter"
	"shopdrive/internal/memstore"
	"shopdrive/internal/repos"
	"shopdrive/internal/services"
)

var ctx = context.Background()

func TestCatalog_CreateAssignsIDAndTimestamps(t *testing.T) {
	promos := services.NewPromos(memstore.New())

	p := promos.New()
	p.Title = "  Promo Aki  "
	if err := promos.Create(ctx, &p); err != nil {
		t.Fatal(err)
	}
	if p.ID == "" || p.CreatedAt == "" || p.CreatedAt != p.UpdatedAt {
		t.Fatalf("meta not assigned: %+v", p)
	}
	if p.Title != "Promo Aki" || p.Status != domain.PromoActive {
		t.Fatalf("want trimmed title and default status, got %+v", p)
	}

	got, err := promos.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Fatalf("stored %+v, want %+v", got, p)
	}
}

func TestCatalog_RejectsInvalid(t *testing.T) {
	store := memstore.New()
	cases := map[string]error{
		"promo no title":     services.NewPromos(store).Create(ctx, &domain.Promo{Status: domain.PromoActive}),
		"promo bad status":   services.NewPromos(store).Create(ctx, &domain.Promo{Title: "x", Status: "published"}),
		"article bad status": services.NewArticles(store).Create(ctx, &domain.Article{Title: "x", Content: "y", Status: "active"}),
		"article no body":    services.NewArticles(store).Create(ctx, &domain.Article{Title: "x", Status: domain.ArticleDraft}),
		"product rating":     services.NewProducts(store).Create(ctx, &domain.Product{Name: "x", Price: "Rp 1", Rating: 6}),
		"product no price":   services.NewProducts(store).Create(ctx, &domain.Product{Name: "x"}),
		"sponsor order":      services.NewSponsors(store).Create(ctx, &domain.Sponsor{Name: "x", Order: -1}),
	}
	for name, err := range cases {
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: want ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestCatalog_UpdateKeepsCreatedAt(t *testing.T) {
	products := services.NewProducts(memstore.Seeded())
	before, err := products.Get(ctx, "produk-castrol-gtx")
	if err != nil {
		t.Fatal(err)
	}

	next := before
	next.InStock = false
	next.CreatedAt = "tampered"
	if err := products.Update(ctx, "produk-castrol-gtx", &next); err != nil {
		t.Fatal(err)
	}
	after, _ := products.Get(ctx, "produk-castrol-gtx")
	if after.InStock || after.CreatedAt != before.CreatedAt || after.UpdatedAt == before.UpdatedAt {
		t.Fatalf("unexpected update result: %+v", after)
	}

	if err := products.Update(ctx, "nope", &next); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCatalog_OverSQLite(t *testing.T) {
	db, err := repos.OpenDB(repos.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	articles := services.NewArticles(repos.NewStore(db))

	a := articles.New()
	a.Title, a.Content, a.Author = "Cara Cek Aki", "Periksa tegangan aki secara rutin.", "Budi"
	if err := articles.Create(ctx, &a); err != nil {
		t.Fatal(err)
	}
	list, err := articles.List(ctx, filter.Query{}.Where("author", "Budi"))
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != a.ID {
		t.Fatalf("want new article listed, got %+v", list)
	}
	if err := articles.Delete(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if err := articles.Delete(ctx, a.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSettingsService(t *testing.T) {
	svc := &services.SettingsService{Store: memstore.New().Settings()}
	s, err := svc.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	s.ContactEmail = "not-an-email"
	if err := svc.Put(ctx, s); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
	s.ContactEmail = "halo@shopanddrive.com"
	if err := svc.Put(ctx, s); err != nil {
		t.Fatal(err)
	}
}
