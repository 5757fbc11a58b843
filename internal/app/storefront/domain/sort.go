package domain

import (
	"cmp"
	"slices"
	"strings"
)

// SortKey selects the ordering of a product list.
type SortKey string

const (
	SortPopular    SortKey = "popular"
	SortRating     SortKey = "rating"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortDiscount   SortKey = "discount"
	SortPromoPrice SortKey = "promo-price"
)

// ParseSortKey accepts a sort key; empty means SortPopular.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "":
		return SortPopular, nil
	case SortPopular, SortRating, SortPriceAsc, SortPriceDesc, SortDiscount, SortPromoPrice:
		return k, nil
	default:
		return "", ErrInvalidSortKey
	}
}

// Sort returns a sorted copy of products. The sort is stable, so ties keep
// their fetched order. Unknown keys fall back to popularity.
func Sort(products []Product, key SortKey) []Product {
	out := slices.Clone(products)
	if out == nil {
		out = []Product{}
	}
	slices.SortStableFunc(out, comparator(key))
	return out
}

func comparator(key SortKey) func(a, b Product) int {
	switch key {
	case SortRating:
		return func(a, b Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortPriceAsc:
		return func(a, b Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortPriceDesc:
		return func(a, b Product) int { return cmp.Compare(b.Price, a.Price) }
	case SortDiscount:
		return func(a, b Product) int { return cmp.Compare(b.Discount, a.Discount) }
	case SortPromoPrice:
		return func(a, b Product) int { return cmp.Compare(PromotionalPrice(a), PromotionalPrice(b)) }
	default:
		return func(a, b Product) int { return cmp.Compare(b.Popularity, a.Popularity) }
	}
}
