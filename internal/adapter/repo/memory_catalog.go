package repo

import (
	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/usecase"
)

// MemoryCatalog holds the product range, keyed by canonical name. The
// catalog is read-only after construction, so no locking is needed.
type MemoryCatalog struct {
	byName map[string]entity.Product
	list   []entity.Product // seed order, for stable listings
}

func NewMemoryCatalog(seed []entity.Product) *MemoryCatalog {
	c := &MemoryCatalog{byName: make(map[string]entity.Product, len(seed))}
	for _, p := range seed {
		p.Name = entity.CanonicalName(p.Name)
		if _, dup := c.byName[p.Name]; dup {
			continue
		}
		c.byName[p.Name] = p
		c.list = append(c.list, p)
	}
	return c
}

func (c *MemoryCatalog) Lookup(name string) (entity.Product, bool) {
	p, ok := c.byName[name]
	return p, ok
}

func (c *MemoryCatalog) All() []entity.Product {
	out := make([]entity.Product, len(c.list))
	copy(out, c.list)
	return out
}

func (c *MemoryCatalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range c.list {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

var _ usecase.Catalog = (*MemoryCatalog)(nil)

// DefaultCatalog is the stock product range the service ships with.
func DefaultCatalog() *MemoryCatalog {
	return NewMemoryCatalog([]entity.Product{
		// Mobiles
		{Name: "iPhone 15 Pro", Price: 1199.99, Category: "Mobiles", Stock: 20},
		{Name: "Samsung Galaxy S23", Price: 999.99, Category: "Mobiles", Stock: 25},
		{Name: "OnePlus 11", Price: 749.99, Category: "Mobiles", Stock: 30},

		// Laptops
		{Name: "MacBook Pro 16", Price: 2399.99, Category: "Laptops", Stock: 15},
		{Name: "Dell XPS 15", Price: 1899.99, Category: "Laptops", Stock: 20},
		{Name: "HP Spectre x360", Price: 1599.99, Category: "Laptops", Stock: 18},

		// Shoes
		{Name: "Nike Air Max", Price: 199.99, Category: "Shoes", Stock: 50},
		{Name: "Adidas Ultraboost", Price: 179.99, Category: "Shoes", Stock: 40},
		{Name: "Puma Classic", Price: 129.99, Category: "Shoes", Stock: 60},

		// Watches
		{Name: "Apple Watch Series 9", Price: 399.99, Category: "Watches", Stock: 25},
		{Name: "Samsung Galaxy Watch 6", Price: 349.99, Category: "Watches", Stock: 30},
		{Name: "Fitbit Versa 4", Price: 229.99, Category: "Watches", Stock: 35},

		// Audio
		{Name: "Sony WH-1000XM5", Price: 399.99, Category: "Audio", Stock: 40},
		{Name: "Bose QuietComfort 45", Price: 329.99, Category: "Audio", Stock: 35},
		{Name: "AirPods Pro 2", Price: 249.99, Category: "Audio", Stock: 50},

		// Gaming
		{Name: "PlayStation 5", Price: 499.99, Category: "Gaming", Stock: 10},
		{Name: "Xbox Series X", Price: 499.99, Category: "Gaming", Stock: 12},
		{Name: "Nintendo Switch OLED", Price: 349.99, Category: "Gaming", Stock: 18},

		// TV & Displays
		{Name: "Samsung QLED 55", Price: 1199.99, Category: "TV & Displays", Stock: 10},
		{Name: "LG OLED 65", Price: 2299.99, Category: "TV & Displays", Stock: 8},
		{Name: "Sony Bravia 75", Price: 2999.99, Category: "TV & Displays", Stock: 5},

		// Tablets
		{Name: "iPad Pro 12.9", Price: 1299.99, Category: "Tablets", Stock: 20},
		{Name: "Samsung Galaxy Tab S9", Price: 1099.99, Category: "Tablets", Stock: 22},
		{Name: "Xiaomi Pad 6", Price: 499.99, Category: "Tablets", Stock: 30},

		// Cameras
		{Name: "Canon EOS R6", Price: 2499.99, Category: "Cameras", Stock: 8},
		{Name: "Sony Alpha A7 IV", Price: 2799.99, Category: "Cameras", Stock: 7},
		{Name: "Nikon Z6 II", Price: 1999.99, Category: "Cameras", Stock: 9},
	})
}
