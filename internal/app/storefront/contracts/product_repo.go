package contracts

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// ProductRepository writes products for the admin editor.
// Every write covers the product row and its nested relation rows atomically.
type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) error
	// Update replaces the product row and all nested rows.
	// Returns domain.ErrProductNotFound when the product does not exist.
	Update(ctx context.Context, product domain.Product) error
	// Delete removes a product with its relations and reviews.
	// Returns domain.ErrProductNotFound when the product does not exist.
	Delete(ctx context.Context, productID string) error
}

// CategoryRepository stores storefront categories.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) error
}
