package list_dogs

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Request identifies the owner.
type Request struct {
	UserID string
}

// Query lists a user's dogs.
type Query struct {
	dogs contracts.DogRepository
}

// NewQuery creates a new list dogs query.
func NewQuery(dogs contracts.DogRepository) *Query {
	return &Query{dogs: dogs}
}

// Execute returns the user's dogs, newest first. The first dog is the
// active profile.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.Dog, error) {
	if req.UserID == "" {
		return nil, domain.ErrMissingUser
	}
	return q.dogs.ListDogs(ctx, req.UserID)
}
