package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "Iphone 15 Pro", "Iphone 15 Pro"},
		{"lower case", "iphone 15 pro", "Iphone 15 Pro"},
		{"mixed case", "iPHONE 15 PRO", "Iphone 15 Pro"},
		{"leading and trailing space", "  nike air max  ", "Nike Air Max"},
		{"collapsed internal whitespace", "nike   air \t max", "Nike Air Max"},
		{"single word", "playstation", "Playstation"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalName(tt.in))
		})
	}
}

func TestCanonicalNameVariantsConverge(t *testing.T) {
	variants := []string{"sony bravia 75", "SONY BRAVIA 75", " Sony  Bravia   75 "}
	want := CanonicalName(variants[0])
	for _, v := range variants {
		assert.Equal(t, want, CanonicalName(v), "variant %q", v)
	}
}

func TestOrderValidate(t *testing.T) {
	o := Order{Quantity: 1, PhoneNumber: "03001234567"}
	assert.NoError(t, o.Validate())

	o.Quantity = 0
	assert.ErrorIs(t, o.Validate(), ErrInvalidQuantity)

	o.Quantity = 2
	o.PhoneNumber = ""
	assert.ErrorIs(t, o.Validate(), ErrInvalidPhone)
}
