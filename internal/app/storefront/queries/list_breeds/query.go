package list_breeds

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Query lists the breed reference table.
type Query struct {
	reference contracts.ReferenceData
}

// NewQuery creates a new list breeds query.
func NewQuery(reference contracts.ReferenceData) *Query {
	return &Query{reference: reference}
}

// Execute returns every breed ordered by name.
func (q *Query) Execute(ctx context.Context) ([]domain.Breed, error) {
	return q.reference.ListBreeds(ctx)
}
