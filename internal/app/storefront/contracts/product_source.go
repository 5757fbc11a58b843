package contracts

import (
	"context"
	"strings"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// AllCategories is the category id that selects every product.
const AllCategories = "all"

// ProductSelection picks the base collection of a catalog page.
type ProductSelection struct {
	// CategoryID restricts to one category, compared lowercased.
	// Empty or AllCategories selects everything.
	CategoryID string
	// BlackFridayOnly selects promoted products, highest discount first.
	BlackFridayOnly bool
}

// Category returns the lowercased category filter, or "" for every category.
func (s ProductSelection) Category() string {
	c := strings.ToLower(strings.TrimSpace(s.CategoryID))
	if c == AllCategories {
		return ""
	}
	return c
}

// ProductSource reads denormalized product rows with their nested relations.
// Rows are returned raw; normalization happens in the catalog fetcher.
type ProductSource interface {
	FetchProducts(ctx context.Context, sel ProductSelection) ([]domain.RawProduct, error)
	// GetProduct returns domain.ErrProductNotFound for unknown ids.
	GetProduct(ctx context.Context, productID string) (domain.RawProduct, error)
	// FetchAdminProducts returns every product, newest first.
	FetchAdminProducts(ctx context.Context) ([]domain.RawProduct, error)
}
