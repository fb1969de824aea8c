package content

import (
	"strings"
	"time"

	"shopdrive/internal/domain"
)

// SampleData is the demo catalog every backend starts with when empty.
type SampleData struct {
	Promos   []domain.Promo
	Articles []domain.Article
	Products []domain.Product
	Sponsors []domain.Sponsor
}

// Sample returns the demo catalog with stable ids and strictly increasing
// creation times, so newest-first listings are deterministic.
func Sample() SampleData {
	base := time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC)
	n := 0
	stamp := func() string {
		n++
		return domain.Timestamp(base.Add(time.Duration(n) * time.Minute))
	}

	var d SampleData

	for _, p := range []domain.Promo{
		{
			ID: "promo-oli-premium", Title: "Promo Oli Mobil Premium",
			Description: "Dapatkan diskon 30% untuk semua jenis oli mobil premium",
			Discount:    "30%", ValidUntil: "2024-12-31", Status: domain.PromoActive, Image: "/placeholder.svg",
			OriginalPrice: "Rp 120.000", DiscountPrice: "Rp 84.000",
		},
		{
			ID: "promo-service-lengkap", Title: "Paket Service Lengkap",
			Description: "Service lengkap + ganti oli hanya 299rb",
			Discount:    "Hemat 100rb", ValidUntil: "2025-01-15", Status: domain.PromoActive, Image: "/placeholder.svg",
			OriginalPrice: "Rp 399.000", DiscountPrice: "Rp 299.000",
		},
		{
			ID: "promo-ban-berkualitas", Title: "Ban Mobil Berkualitas",
			Description: "Beli 4 ban gratis pemasangan dan balancing",
			Discount:    "Gratis Pasang", ValidUntil: "2025-02-28", Status: domain.PromoScheduled, Image: "/placeholder.svg",
			DiscountPrice: "Rp 2.500.000",
		},
	} {
		p.CreatedAt = stamp()
		p.UpdatedAt = p.CreatedAt
		d.Promos = append(d.Promos, p)
	}

	for _, a := range []domain.Article{
		{
			ID: "artikel-mesin-musim-hujan", Title: "Tips Merawat Mesin Mobil di Musim Hujan",
			Excerpt: "Musim hujan memerlukan perawatan khusus untuk menjaga performa mesin tetap optimal...",
			Content: "Musim hujan memerlukan perawatan khusus untuk menjaga performa mesin tetap optimal. " +
				"Berikut tips lengkap untuk merawat mesin mobil Anda di musim hujan...",
			Date: "15 Desember 2024", Author: "Ahmad Wijaya", Category: "Tips Perawatan", ReadTime: "5 menit",
			Image: "/placeholder.svg", Status: domain.ArticlePublished,
		},
		{
			ID: "artikel-tanda-ganti-oli", Title: "5 Tanda Oli Mobil Harus Diganti",
			Excerpt: "Mengenali tanda-tanda oli yang sudah tidak layak pakai adalah kunci perawatan mesin...",
			Content: "Mengenali tanda-tanda oli yang sudah tidak layak pakai adalah kunci perawatan mesin yang baik...",
			Date:    "12 Desember 2024", Author: "Sari Indah", Category: "Tips Perawatan", ReadTime: "3 menit",
			Image: "/placeholder.svg", Status: domain.ArticlePublished,
		},
	} {
		a.CreatedAt = stamp()
		a.UpdatedAt = a.CreatedAt
		d.Articles = append(d.Articles, a)
	}

	for _, p := range []domain.Product{
		{
			ID: "produk-castrol-gtx", Name: "Oli Mesin Castrol GTX", Category: "Oli & Pelumas", Price: "Rp 85.000",
			Rating: 4.8, Reviews: 124, Image: "/placeholder.svg",
			Description: "Oli mesin berkualitas tinggi untuk performa optimal", InStock: true, IsPromo: true,
		},
		{
			ID: "produk-michelin-primacy", Name: "Ban Michelin Primacy 4", Category: "Ban & Velg", Price: "Rp 1.250.000",
			Rating: 4.9, Reviews: 87, Image: "/placeholder.svg",
			Description: "Ban premium dengan teknologi terdepan", InStock: true,
		},
	} {
		p.CreatedAt = stamp()
		p.UpdatedAt = p.CreatedAt
		d.Products = append(d.Products, p)
	}

	for i, s := range []struct{ name, category, website, description string }{
		{"Castrol", "Oil Partner", "https://castrol.com", "Premium motor oil and lubricants"},
		{"Michelin", "Tire Partner", "https://michelin.com", "World-leading tire manufacturer"},
		{"Bosch", "Parts Partner", "https://bosch.com", "Automotive parts and technology"},
		{"Shell", "Oil Partner", "https://shell.com", "Global energy and petrochemicals company"},
		{"Pirelli", "Tire Partner", "https://pirelli.com", "Premium tire manufacturer"},
		{"NGK", "Parts Partner", "https://ngk.com", "Spark plugs and automotive components"},
	} {
		created := stamp()
		d.Sponsors = append(d.Sponsors, domain.Sponsor{
			ID: "sponsor-" + strings.ToLower(s.name), Name: s.name, Category: s.category,
			Logo:    "/sponsors/" + strings.ToLower(s.name) + ".svg",
			Website: s.website, Description: s.description,
			IsActive: true, Order: i + 1, CreatedAt: created, UpdatedAt: created,
		})
	}
	return d
}

