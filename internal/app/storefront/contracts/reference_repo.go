package contracts

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// ReferenceData holds the breed and health condition lookup tables.
type ReferenceData interface {
	// ListBreeds returns every breed with its size variations, by name.
	ListBreeds(ctx context.Context) ([]domain.Breed, error)
	// FindBreedByName matches case-insensitively and returns
	// domain.ErrBreedNotFound when nothing matches.
	FindBreedByName(ctx context.Context, name string) (domain.Breed, error)
	UpsertBreed(ctx context.Context, breed domain.Breed) error
	UpsertHealthCondition(ctx context.Context, id, name string) error
}

// SuggestionSource finds search box suggestions by case-insensitive
// substring match on the name.
type SuggestionSource interface {
	SuggestBreeds(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
	SuggestProducts(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
}
