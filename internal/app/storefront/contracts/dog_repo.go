package contracts

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// DogRepository stores dog profiles. Every method is scoped to the owning
// user; another user's dog is reported as domain.ErrDogNotFound.
type DogRepository interface {
	// ListDogs returns the user's dogs, newest first.
	ListDogs(ctx context.Context, userID string) ([]domain.Dog, error)
	GetDog(ctx context.Context, userID, dogID string) (domain.Dog, error)
	CreateDog(ctx context.Context, dog domain.Dog) error
	UpdateDog(ctx context.Context, dog domain.Dog) error
	DeleteDog(ctx context.Context, userID, dogID string) error
}

// ReviewRepository stores product reviews.
type ReviewRepository interface {
	// ListReviews returns the reviews of a product, newest first.
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
	// CreateReview returns domain.ErrProductNotFound for unknown products.
	CreateReview(ctx context.Context, review domain.Review) error
}
