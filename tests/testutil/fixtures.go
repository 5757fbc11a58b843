package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// ProductOption customizes a test product.
type ProductOption func(*domain.Product)

func WithCategory(id string) ProductOption {
	return func(p *domain.Product) { p.CategoryID = id }
}

func WithPrice(price float64) ProductOption {
	return func(p *domain.Product) { p.Price = price }
}

func WithBlackFriday(discount int64) ProductOption {
	return func(p *domain.Product) {
		p.IsBlackFriday = true
		p.Discount = discount
	}
}

func WithBreedRecommendation(breedID string, strength int64) ProductOption {
	return func(p *domain.Product) {
		p.BreedRecommendations = append(p.BreedRecommendations, domain.BreedRecommendation{
			BreedID:  breedID,
			Strength: strength,
			Reason:   "test recommendation",
		})
	}
}

func WithHealthBenefit(conditionID string) ProductOption {
	return func(p *domain.Product) {
		p.HealthBenefits = append(p.HealthBenefits, domain.HealthBenefit{
			HealthConditionID: conditionID,
			Description:       "test benefit",
		})
	}
}

// NewTestProduct builds a valid product with every nested relation set.
func NewTestProduct(name string, opts ...ProductOption) domain.Product {
	minAge := int64(2)
	p := domain.Product{
		ID:               uuid.New().String(),
		Name:             name,
		Description:      "Test product description",
		Price:            19.99,
		Rating:           4.5,
		Popularity:       50,
		Vendor:           "Test Vendor",
		CategoryID:       "food",
		Image:            "https://images.pawfect.example/test.jpg",
		AdditionalImages: []string{},
		Tags:             []string{"test"},
		Ingredients:      []string{},
		Features:         []string{},
		SafetyWarnings:   []string{},
		LifeStages:       domain.LifeStages{Puppy: true, Adult: true, MinAgeMonths: &minAge},
		SizeSuitability:  domain.SizeSuitability{Small: true, Medium: true},
		HealthBenefits:   []domain.HealthBenefit{},
		CreatedAt:        SeedTime,
		UpdatedAt:        SeedTime,
	}
	p.BreedRecommendations = []domain.BreedRecommendation{}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// CreateTestProduct stores a product through the repository.
func CreateTestProduct(t *testing.T, repo contracts.ProductRepository, name string, opts ...ProductOption) domain.Product {
	t.Helper()
	p := NewTestProduct(name, opts...)
	require.NoError(t, repo.Create(context.Background(), p), "failed to create test product")
	return p
}

// SeedReference stores a breed with two size variations and one health
// condition.
func SeedReference(t *testing.T, ref contracts.ReferenceData) domain.Breed {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, ref.UpsertHealthCondition(ctx, "joint-health", "Joint Health"))

	breed := domain.Breed{
		ID:                "poodle",
		Name:              "Poodle",
		SizeCategory:      domain.SizeMedium,
		HasSizeVariations: true,
		SizeVariations: []domain.SizeVariation{
			{ID: "poodle-standard", SizeCategory: "large", Description: "Standard"},
			{ID: "poodle-toy", SizeCategory: "toy", Description: "Toy"},
		},
	}
	require.NoError(t, ref.UpsertBreed(ctx, breed))
	return breed
}
