package domain

// Promo statuses. Only active promos are ever surfaced by search.
const (
	PromoActive    = "active"
	PromoExpired   = "expired"
	PromoScheduled = "scheduled"
)

// Article statuses. Only published articles are ever surfaced by search.
const (
	ArticlePublished = "published"
	ArticleDraft     = "draft"
	ArticleArchived  = "archived"
)

type Promo struct {
	ID            string `db:"id" json:"id"`
	Title         string `db:"title" json:"title"`
	Description   string `db:"description" json:"description"`
	Discount      string `db:"discount" json:"discount"`
	ValidUntil    string `db:"valid_until" json:"validUntil"`
	Status        string `db:"status" json:"status"` // active | expired | scheduled
	Image         string `db:"image" json:"image"`
	OriginalPrice string `db:"original_price" json:"originalPrice,omitempty"`
	DiscountPrice string `db:"discount_price" json:"discountPrice"`
	CreatedAt     string `db:"created_at" json:"createdAt"`
	UpdatedAt     string `db:"updated_at" json:"updatedAt"`
}

type Article struct {
	ID        string `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	Excerpt   string `db:"excerpt" json:"excerpt"`
	Content   string `db:"content" json:"content"`
	Date      string `db:"publish_date" json:"date"`
	Author    string `db:"author" json:"author"`
	Category  string `db:"category" json:"category"`
	ReadTime  string `db:"read_time" json:"readTime"`
	Image     string `db:"image" json:"image"`
	Status    string `db:"status" json:"status"` // published | draft | archived
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}

type Product struct {
	ID            string  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Category      string  `db:"category" json:"category"`
	Price         string  `db:"price" json:"price"`
	OriginalPrice string  `db:"original_price" json:"originalPrice,omitempty"`
	Rating        float64 `db:"rating" json:"rating"`
	Reviews       int     `db:"reviews" json:"reviews"`
	Image         string  `db:"image" json:"image"`
	Description   string  `db:"description" json:"description"`
	InStock       bool    `db:"in_stock" json:"inStock"`
	IsPromo       bool    `db:"is_promo" json:"isPromo"`
	CreatedAt     string  `db:"created_at" json:"createdAt"`
	UpdatedAt     string  `db:"updated_at" json:"updatedAt"`
}

type Sponsor struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Logo        string `db:"logo" json:"logo"`
	Category    string `db:"category" json:"category"`
	Website     string `db:"website" json:"website,omitempty"`
	Description string `db:"description" json:"description,omitempty"`
	IsActive    bool   `db:"is_active" json:"isActive"`
	Order       int    `db:"sort_order" json:"order"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
	UpdatedAt   string `db:"updated_at" json:"updatedAt"`
}

type SocialMedia struct {
	WhatsApp  string `json:"whatsapp"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Settings struct {
	SiteName        string      `json:"siteName"`
	SiteDescription string      `json:"siteDescription"`
	Logo            string      `json:"logo"`
	ContactPhone    string      `json:"contactPhone"`
	ContactEmail    string      `json:"contactEmail"`
	Address         string      `json:"address"`
	SocialMedia     SocialMedia `json:"socialMedia"`
}

// DefaultSettings is served when nothing has been stored yet.
func DefaultSettings() Settings {
	return Settings{
		SiteName:        "Shop and Drive Taman Tekno",
		SiteDescription: "Solusi terpercaya untuk kebutuhan otomotif Anda",
		Logo:            "/placeholder.svg",
		ContactPhone:    "08995555095",
		ContactEmail:    "info@shopanddrive.com",
		Address:         "Jl. Rawa Buntu Raya No. 61 A, Ciater, Tangerang Selatan",
		SocialMedia:     SocialMedia{WhatsApp: "628995555095"},
	}
}

type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
	Role  string `db:"role"`
}
