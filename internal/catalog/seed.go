package catalog

import "github.com/angelmondragon/threadline-backend/pkg/db/models"

// SeedProducts is the static catalog. Prices are in cents.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Organic Cotton Tee",
			PriceCents:  4800,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
			Description: "Soft, breathable organic cotton in a relaxed fit.",
			Category:    "Tops",
		},
		{
			ID:          "2",
			Name:        "Linen Blend Pants",
			PriceCents:  9800,
			Image:       "https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=400&h=400&fit=crop",
			Description: "Lightweight linen blend for effortless comfort.",
			Category:    "Bottoms",
		},
		{
			ID:          "3",
			Name:        "Merino Wool Sweater",
			PriceCents:  12800,
			Image:       "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400&h=400&fit=crop",
			Description: "Premium merino wool, naturally temperature-regulating.",
			Category:    "Tops",
		},
		{
			ID:          "4",
			Name:        "Canvas Tote Bag",
			PriceCents:  4500,
			Image:       "https://images.unsplash.com/photo-1544816155-12df9643f363?w=400&h=400&fit=crop",
			Description: "Durable canvas with reinforced handles.",
			Category:    "Accessories",
		},
		{
			ID:          "5",
			Name:        "Silk Scarf",
			PriceCents:  7800,
			Image:       "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&h=400&fit=crop",
			Description: "Hand-rolled edges, pure mulberry silk.",
			Category:    "Accessories",
		},
		{
			ID:          "6",
			Name:        "Leather Belt",
			PriceCents:  6500,
			Image:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400&h=400&fit=crop",
			Description: "Full-grain leather with brass hardware.",
			Category:    "Accessories",
		},
	}
}
