package recommend_for_dog

import (
	"context"
	"fmt"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Limit is the number of recommended products shown for a dog.
const Limit = 6

// Request identifies the dog.
type Request struct {
	UserID string
	DogID  string
}

// Response is the dog and the products recommended for its breed.
type Response struct {
	Dog      domain.Dog
	Products []domain.Product
}

// Query handles product recommendations for a dog profile.
type Query struct {
	fetcher *catalog.Fetcher
	dogs    contracts.DogRepository
}

// NewQuery creates a new recommend for dog query.
func NewQuery(fetcher *catalog.Fetcher, dogs contracts.DogRepository) *Query {
	return &Query{
		fetcher: fetcher,
		dogs:    dogs,
	}
}

// Execute returns the most popular products recommended for the dog's breed.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.UserID == "" {
		return nil, domain.ErrMissingUser
	}

	dog, err := q.dogs.GetDog(ctx, req.UserID, req.DogID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dog: %w", err)
	}

	products, err := q.fetcher.Fetch(ctx, contracts.ProductSelection{CategoryID: contracts.AllCategories})
	if err != nil {
		return nil, err
	}

	forBreed := domain.Criteria{Price: domain.Unbounded, Breed: dog.Breed}
	matched := make([]domain.Product, 0)
	for _, p := range products {
		if forBreed.Matches(p) {
			matched = append(matched, p)
		}
	}
	matched = domain.Sort(matched, domain.SortPopular)
	if len(matched) > Limit {
		matched = matched[:Limit]
	}

	return &Response{Dog: dog, Products: matched}, nil
}
