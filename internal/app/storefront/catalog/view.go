package catalog

import "github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"

// View is a fetched base collection. It is never mutated; every Apply
// derives a fresh result from it.
type View struct {
	Base []domain.Product
}

// Result is one recomputation of the visible catalog.
type Result struct {
	Products []domain.Product
	// Empty is true when no product passed the criteria. It is a normal
	// state, not an error.
	Empty bool
	// PriceBounds and Vendors describe the base collection and feed the
	// filter controls.
	PriceBounds domain.PriceRange
	Vendors     []string
	// Total is the size of the base collection.
	Total int
}

// NewView wraps a base collection.
func NewView(base []domain.Product) View {
	return View{Base: base}
}

// DefaultCriteria admits every product of the view.
func (v View) DefaultCriteria() domain.Criteria {
	return domain.Criteria{Price: domain.Unbounded}
}

// Apply filters then sorts the base collection.
func (v View) Apply(c domain.Criteria, key domain.SortKey) Result {
	products := domain.Sort(domain.Filter(v.Base, c), key)
	return Result{
		Products:    products,
		Empty:       len(products) == 0,
		PriceBounds: domain.PriceBounds(v.Base),
		Vendors:     domain.Vendors(v.Base),
		Total:       len(v.Base),
	}
}
