package entity

import "strings"

// Product is a catalog entry. Stock is advisory only; placing an order
// does not decrement it.
type Product struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// CanonicalName normalizes a user-supplied product name into the catalog
// key form: trimmed, internal whitespace collapsed, each word title-cased
// ("iphone 15 pro" -> "Iphone 15 Pro").
func CanonicalName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	lower := strings.ToLower(w)
	r := []rune(lower)
	if len(r) == 0 {
		return lower
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
