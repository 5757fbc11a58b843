package update_dog

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/add_dog"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

// Request contains the owner, the dog and the full dog form.
type Request struct {
	UserID string
	DogID  string
	Input  domain.DogInput
}

// Interactor handles the update dog use case.
type Interactor struct {
	dogs      contracts.DogRepository
	reference contracts.ReferenceData
	clock     clock.Clock
}

// NewInteractor creates a new update dog interactor.
func NewInteractor(dogs contracts.DogRepository, reference contracts.ReferenceData, clock clock.Clock) *Interactor {
	return &Interactor{
		dogs:      dogs,
		reference: reference,
		clock:     clock,
	}
}

// Execute overwrites the editable fields of one of the user's dogs.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Dog, error) {
	if req.UserID == "" {
		return domain.Dog{}, domain.ErrMissingUser
	}

	dog, err := i.dogs.GetDog(ctx, req.UserID, req.DogID)
	if err != nil {
		return domain.Dog{}, err
	}

	in := req.Input.Trimmed()
	breed, err := add_dog.LookupBreed(ctx, i.reference, in.Breed)
	if err != nil {
		return domain.Dog{}, err
	}
	if err := domain.ValidateDog(in, breed); err != nil {
		return domain.Dog{}, err
	}

	dog.Name = in.Name
	dog.Breed = in.Breed
	dog.SizeVariation = in.SizeVariation
	dog.Age = in.Age
	dog.Weight = in.Weight
	dog.ActivityLevel = in.ActivityLevel
	dog.Image = in.Image
	dog.HealthConditions = append([]string{}, in.HealthConditions...)
	dog.UpdatedAt = i.clock.Now()

	if err := i.dogs.UpdateDog(ctx, dog); err != nil {
		return domain.Dog{}, err
	}
	return dog, nil
}
