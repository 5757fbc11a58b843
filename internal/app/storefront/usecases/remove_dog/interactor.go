package remove_dog

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Request identifies the dog and its owner.
type Request struct {
	UserID string
	DogID  string
}

// Interactor handles the remove dog use case.
type Interactor struct {
	dogs contracts.DogRepository
}

// NewInteractor creates a new remove dog interactor.
func NewInteractor(dogs contracts.DogRepository) *Interactor {
	return &Interactor{dogs: dogs}
}

// Execute deletes one of the user's dogs.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.UserID == "" {
		return domain.ErrMissingUser
	}
	return i.dogs.DeleteDog(ctx, req.UserID, req.DogID)
}
