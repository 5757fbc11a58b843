package domain

import "slices"

// predicate reports whether a product passes one criterion.
type predicate func(Product) bool

// Filter returns the products matching every criterion, in input order.
// The input slice is not modified. Predicates run cheapest first and none of
// them can fail on a product, since nested data is already normalized.
func Filter(products []Product, c Criteria) []Product {
	preds := c.predicates()
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if matchesAll(p, preds) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single product passes c.
func (c Criteria) Matches(p Product) bool {
	return matchesAll(p, c.predicates())
}

func matchesAll(p Product, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

func (c Criteria) predicates() []predicate {
	preds := []predicate{
		func(p Product) bool { return c.Price.Contains(p.Price) },
	}

	if len(c.Vendors) > 0 {
		vendors := slices.Clone(c.Vendors)
		preds = append(preds, func(p Product) bool {
			return slices.Contains(vendors, p.Vendor)
		})
	}

	if c.Breed != "" {
		breed := c.Breed
		preds = append(preds, func(p Product) bool {
			return p.RecommendedFor(breed)
		})
	}

	if c.Size != SizeAny {
		class := c.Size.Class()
		preds = append(preds, func(p Product) bool {
			return p.SizeSuitability.Suits(class)
		})
	}

	if c.PromotionalOnly {
		preds = append(preds, func(p Product) bool {
			return p.IsBlackFriday
		})
	}

	return preds
}
