package domain

// Kind identifies which collection a search result came from.
type Kind string

const (
	KindPromotion Kind = "promotion"
	KindArticle   Kind = "article"
	KindProduct   Kind = "product"
)

// ParseKind accepts the canonical names plus the short forms the storefront uses in URLs.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "promotion", "promo", "promos":
		return KindPromotion, true
	case "article", "artikel", "articles":
		return KindArticle, true
	case "product", "produk", "products":
		return KindProduct, true
	}
	return "", false
}

// SearchResult is the uniform shape every entity kind is projected into.
// Kind and ID together identify exactly one source record.
type SearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        Kind   `json:"type"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	Extra       string `json:"extra,omitempty"`
}
