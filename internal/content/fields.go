package content

import (
	"shopdrive/internal/domain"
	"shopdrive/internal/filter"
)

// Default orderings, shared by every backend so listings agree.
var (
	NewestFirst  = []filter.Order{{Field: "createdAt", Desc: true}, {Field: "id"}}
	SponsorOrder = []filter.Order{{Field: "order"}, {Field: "name"}}
)

func PromoFields(p domain.Promo) filter.Getter {
	return func(f string) (any, bool) {
		switch f {
		case "id":
			return p.ID, true
		case "title":
			return p.Title, true
		case "description":
			return p.Description, true
		case "status":
			return p.Status, true
		case "createdAt":
			return p.CreatedAt, true
		}
		return nil, false
	}
}

func ArticleFields(a domain.Article) filter.Getter {
	return func(f string) (any, bool) {
		switch f {
		case "id":
			return a.ID, true
		case "title":
			return a.Title, true
		case "excerpt":
			return a.Excerpt, true
		case "content":
			return a.Content, true
		case "author":
			return a.Author, true
		case "category":
			return a.Category, true
		case "status":
			return a.Status, true
		case "createdAt":
			return a.CreatedAt, true
		}
		return nil, false
	}
}

func ProductFields(p domain.Product) filter.Getter {
	return func(f string) (any, bool) {
		switch f {
		case "id":
			return p.ID, true
		case "name":
			return p.Name, true
		case "description":
			return p.Description, true
		case "category":
			return p.Category, true
		case "inStock":
			return p.InStock, true
		case "isPromo":
			return p.IsPromo, true
		case "createdAt":
			return p.CreatedAt, true
		}
		return nil, false
	}
}

func SponsorFields(s domain.Sponsor) filter.Getter {
	return func(f string) (any, bool) {
		switch f {
		case "id":
			return s.ID, true
		case "name":
			return s.Name, true
		case "category":
			return s.Category, true
		case "isActive":
			return s.IsActive, true
		case "order":
			return s.Order, true
		case "createdAt":
			return s.CreatedAt, true
		}
		return nil, false
	}
}
