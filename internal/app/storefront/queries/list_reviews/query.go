package list_reviews

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Request identifies the product.
type Request struct {
	ProductID string
}

// Query lists the reviews of a product.
type Query struct {
	reviews contracts.ReviewRepository
}

// NewQuery creates a new list reviews query.
func NewQuery(reviews contracts.ReviewRepository) *Query {
	return &Query{reviews: reviews}
}

// Execute returns the product's reviews, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.Review, error) {
	return q.reviews.ListReviews(ctx, req.ProductID)
}
