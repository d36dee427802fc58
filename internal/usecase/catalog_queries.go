package usecase

import (
	"sort"
	"strings"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
)

// ShowCatalog returns catalog products, filtered by category when one is
// given (case-insensitive). An empty result is not an error.
func (s *OrderService) ShowCatalog(category string) []entity.Product {
	all := s.catalog.All()
	if category == "" {
		return all
	}
	want := strings.ToLower(category)
	out := make([]entity.Product, 0, len(all))
	for _, p := range all {
		if strings.ToLower(p.Category) == want {
			out = append(out, p)
		}
	}
	return out
}

// ShowCategories returns the distinct category names, sorted.
func (s *OrderService) ShowCategories() []string {
	cats := s.catalog.Categories()
	sort.Strings(cats)
	return cats
}

// SpecialOffers is a fixed promotional payload; it is not derived from
// catalog or ledger state.
func (s *OrderService) SpecialOffers() string {
	offers := []string{
		"🔥 10% off on Smartphone X today!",
		"💻 Buy Laptop Pro and get Wireless Mouse free!",
		"🎧 20% off on all audio products.",
	}
	return "Today's special offers:\n" + strings.Join(offers, "\n")
}
