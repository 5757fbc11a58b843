package domain

import (
	"math"
	"slices"
	"strings"
)

// PriceRange is an inclusive [Min, Max] price window.
type PriceRange struct {
	Min float64
	Max float64
}

// Unbounded is the range that admits every non-negative price.
var Unbounded = PriceRange{Min: 0, Max: math.MaxFloat64}

// Contains reports whether price lies in the inclusive range.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Validate rejects ranges with negative or inverted bounds.
func (r PriceRange) Validate() error {
	if r.Min < 0 || r.Max < 0 || r.Min > r.Max || math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return ErrInvalidPrice
	}
	return nil
}

// PriceWindow builds the range a shopper asked for. A nil bound stays open,
// so a window reaching past the collection's own prices is never an error.
func PriceWindow(lo, hi *float64) (PriceRange, error) {
	r := Unbounded
	if lo != nil {
		r.Min = *lo
	}
	if hi != nil {
		r.Max = *hi
	}
	if err := r.Validate(); err != nil {
		return PriceRange{}, err
	}
	return r, nil
}

// IsUnbounded reports whether the range has no upper limit.
func (r PriceRange) IsUnbounded() bool {
	return r.Max == Unbounded.Max
}

// Criteria are the shopper controlled filters for one recomputation.
// Zero values mean "no restriction" except Price, which is always applied.
type Criteria struct {
	Price           PriceRange
	Breed           string
	Size            SizeCategory
	Vendors         []string
	PromotionalOnly bool
}

// PriceBounds returns the smallest range covering every product price.
// An empty collection yields [0, 0].
func PriceBounds(products []Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{}
	}
	r := PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		r.Min = math.Min(r.Min, p.Price)
		r.Max = math.Max(r.Max, p.Price)
	}
	return r
}

// Vendors returns the distinct non-empty vendor names, sorted.
func Vendors(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if p.Vendor == "" {
			continue
		}
		if _, ok := seen[p.Vendor]; ok {
			continue
		}
		seen[p.Vendor] = struct{}{}
		out = append(out, p.Vendor)
	}
	slices.Sort(out)
	return out
}

// RecommendedFor reports whether any breed recommendation names breed.
// Names compare case-insensitively, identifiers exactly.
func (p Product) RecommendedFor(breed string) bool {
	for _, r := range p.BreedRecommendations {
		if r.BreedID == breed || (r.Breed != "" && strings.EqualFold(r.Breed, breed)) {
			return true
		}
	}
	return false
}
