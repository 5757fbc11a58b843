package list_categories

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Query lists storefront categories.
type Query struct {
	categories contracts.CategoryRepository
}

// NewQuery creates a new list categories query.
func NewQuery(categories contracts.CategoryRepository) *Query {
	return &Query{categories: categories}
}

// Execute returns every category ordered by name.
func (q *Query) Execute(ctx context.Context) ([]domain.Category, error) {
	return q.categories.ListCategories(ctx)
}
