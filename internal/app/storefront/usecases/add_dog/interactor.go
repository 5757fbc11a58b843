package add_dog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

// Request contains the owner and the dog form.
type Request struct {
	UserID string
	Input  domain.DogInput
}

// Interactor handles the add dog use case.
type Interactor struct {
	dogs      contracts.DogRepository
	reference contracts.ReferenceData
	clock     clock.Clock
}

// NewInteractor creates a new add dog interactor.
func NewInteractor(dogs contracts.DogRepository, reference contracts.ReferenceData, clock clock.Clock) *Interactor {
	return &Interactor{
		dogs:      dogs,
		reference: reference,
		clock:     clock,
	}
}

// Execute validates the form against the breed table and stores the dog.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Dog, error) {
	if req.UserID == "" {
		return domain.Dog{}, domain.ErrMissingUser
	}

	in := req.Input.Trimmed()
	breed, err := LookupBreed(ctx, i.reference, in.Breed)
	if err != nil {
		return domain.Dog{}, err
	}
	if err := domain.ValidateDog(in, breed); err != nil {
		return domain.Dog{}, err
	}

	now := i.clock.Now()
	dog := domain.Dog{
		ID:               uuid.New().String(),
		UserID:           req.UserID,
		Name:             in.Name,
		Breed:            in.Breed,
		SizeVariation:    in.SizeVariation,
		Age:              in.Age,
		Weight:           in.Weight,
		ActivityLevel:    in.ActivityLevel,
		Image:            in.Image,
		HealthConditions: append([]string{}, in.HealthConditions...),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := i.dogs.CreateDog(ctx, dog); err != nil {
		return domain.Dog{}, err
	}
	return dog, nil
}

// LookupBreed finds a breed by name. A breed missing from the reference
// table is not an error; it returns nil and no size variation is required.
func LookupBreed(ctx context.Context, reference contracts.ReferenceData, name string) (*domain.Breed, error) {
	if name == "" {
		return nil, nil
	}
	b, err := reference.FindBreedByName(ctx, name)
	if errors.Is(err, domain.ErrBreedNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up breed: %w", err)
	}
	return &b, nil
}
