package repo_test

import (
	"testing"

	"github.com/UmmeHabiba1312/Kharedo-api/internal/adapter/repo"
	"github.com/UmmeHabiba1312/Kharedo-api/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogKeysAreCanonical(t *testing.T) {
	c := repo.DefaultCatalog()

	p, ok := c.Lookup(entity.CanonicalName("iPhone 15 Pro"))
	require.True(t, ok)
	assert.Equal(t, "Iphone 15 Pro", p.Name)
	assert.InDelta(t, 1199.99, p.Price, 1e-9)

	// same entry under any casing/whitespace of the input
	p2, ok := c.Lookup(entity.CanonicalName("  IPHONE   15   pro "))
	require.True(t, ok)
	assert.Equal(t, p, p2)

	_, ok = c.Lookup("iphone 15 pro") // non-canonical key misses
	assert.False(t, ok)
}

func TestDefaultCatalogShape(t *testing.T) {
	c := repo.DefaultCatalog()
	assert.Len(t, c.All(), 27)
	assert.Len(t, c.Categories(), 9)
}

func TestCatalogDropsDuplicateSeeds(t *testing.T) {
	c := repo.NewMemoryCatalog([]entity.Product{
		{Name: "widget one", Price: 1, Category: "Widgets"},
		{Name: "Widget  One", Price: 2, Category: "Widgets"},
	})
	require.Len(t, c.All(), 1)
	p, _ := c.Lookup("Widget One")
	assert.InDelta(t, 1.0, p.Price, 1e-9, "first seed wins")
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	c := repo.DefaultCatalog()
	out := c.All()
	out[0].Price = -1
	fresh := c.All()
	assert.NotEqual(t, -1.0, fresh[0].Price)
}
