package repos

import (
	"github.com/jmoiron/sqlx"

	"shopdrive/internal/content"
	"shopdrive/internal/domain"
	"shopdrive/internal/filter"
)

// Store is the relational content backend.
type Store struct {
	promos   *table[domain.Promo]
	articles *table[domain.Article]
	products *table[domain.Product]
	sponsors *table[domain.Sponsor]
	settings *SettingsRepo
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		promos: &table[domain.Promo]{
			db:   db,
			name: "promos",
			columns: []string{"id", "title", "description", "discount", "valid_until", "status", "image",
				"original_price", "discount_price", "created_at", "updated_at"},
			values: func(p *domain.Promo) []any {
				return []any{p.ID, p.Title, p.Description, p.Discount, p.ValidUntil, p.Status, p.Image,
					p.OriginalPrice, p.DiscountPrice, p.CreatedAt, p.UpdatedAt}
			},
			id: func(p *domain.Promo) string { return p.ID },
			fields: filter.Columns{
				"id": "id", "title": "title", "description": "description", "status": "status", "createdAt": "created_at",
			},
			order: content.NewestFirst,
		},
		articles: &table[domain.Article]{
			db:   db,
			name: "articles",
			columns: []string{"id", "title", "excerpt", "content", "publish_date", "author", "category",
				"read_time", "image", "status", "created_at", "updated_at"},
			values: func(a *domain.Article) []any {
				return []any{a.ID, a.Title, a.Excerpt, a.Content, a.Date, a.Author, a.Category,
					a.ReadTime, a.Image, a.Status, a.CreatedAt, a.UpdatedAt}
			},
			id: func(a *domain.Article) string { return a.ID },
			fields: filter.Columns{
				"id": "id", "title": "title", "excerpt": "excerpt", "content": "content", "author": "author",
				"category": "category", "status": "status", "createdAt": "created_at",
			},
			order: content.NewestFirst,
		},
		products: &table[domain.Product]{
			db:   db,
			name: "products",
			columns: []string{"id", "name", "category", "price", "original_price", "rating", "reviews", "image",
				"description", "in_stock", "is_promo", "created_at", "updated_at"},
			values: func(p *domain.Product) []any {
				return []any{p.ID, p.Name, p.Category, p.Price, p.OriginalPrice, p.Rating, p.Reviews, p.Image,
					p.Description, boolInt(p.InStock), boolInt(p.IsPromo), p.CreatedAt, p.UpdatedAt}
			},
			id: func(p *domain.Product) string { return p.ID },
			fields: filter.Columns{
				"id": "id", "name": "name", "description": "description", "category": "category",
				"inStock": "in_stock", "isPromo": "is_promo", "createdAt": "created_at",
			},
			order: content.NewestFirst,
		},
		sponsors: &table[domain.Sponsor]{
			db:      db,
			name:    "sponsors",
			columns: []string{"id", "name", "logo", "category", "website", "description", "is_active", "sort_order", "created_at", "updated_at"},
			values: func(s *domain.Sponsor) []any {
				return []any{s.ID, s.Name, s.Logo, s.Category, s.Website, s.Description,
					boolInt(s.IsActive), s.Order, s.CreatedAt, s.UpdatedAt}
			},
			id: func(s *domain.Sponsor) string { return s.ID },
			fields: filter.Columns{
				"id": "id", "name": "name", "category": "category", "isActive": "is_active",
				"order": "sort_order", "createdAt": "created_at",
			},
			order: content.SponsorOrder,
		},
		settings: NewSettingsRepo(db),
	}
}

func (s *Store) Promos() content.Collection[domain.Promo]     { return s.promos }
func (s *Store) Articles() content.Collection[domain.Article] { return s.articles }
func (s *Store) Products() content.Collection[domain.Product] { return s.products }
func (s *Store) Sponsors() content.Collection[domain.Sponsor] { return s.sponsors }
func (s *Store) Settings() content.SettingsStore              { return s.settings }
