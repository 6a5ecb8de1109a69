package app

import (
	"sort"

	"storefront/pkg/format"
	"storefront/pkg/types"
)

// SampleProducts is the placeholder catalog shown until an API client is
// wired in.
func SampleProducts() []types.Product {
	products := []types.Product{
		{ID: "p-100", Name: "Classic Leather Sneakers", Price: 450000, Category: "Shoes", Stock: 24, InStock: true, Rating: 4.6, ReviewCount: 128, Featured: true},
		{ID: "p-101", Name: "Trail Running Shoes", Price: 620000, Category: "Shoes", Stock: 3, InStock: true, Rating: 4.4, ReviewCount: 57},
		{ID: "p-200", Name: "Wool Beanie", Price: 85000, Category: "Accessories", Stock: 60, InStock: true, Rating: 4.8, ReviewCount: 211},
		{ID: "p-201", Name: "Canvas Tote Bag", Price: 120000, Category: "Accessories", Stock: 0, InStock: false},
		{ID: "p-300", Name: "Organic Cotton T-Shirt", Price: 150000, Category: "Clothing", Stock: 140, InStock: true, Rating: 4.2, ReviewCount: 89},
		{ID: "p-301", Name: "Denim Jacket", Price: 780000, Category: "Clothing", Stock: 9, InStock: true, Rating: 4.7, ReviewCount: 34},
	}
	for i := range products {
		products[i].Slug = format.Slugify(products[i].Name)
		products[i].Currency = format.DefaultCurrency
	}
	return products
}

// Categories returns the distinct product categories in sorted order.
func Categories(products []types.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// SampleCart is the placeholder cart shown in the cart sheet.
func SampleCart(products []types.Product) []types.CartItem {
	var items []types.CartItem
	for _, p := range products {
		if p.Featured {
			items = append(items, types.NewCartItem(p))
		}
	}
	return items
}
