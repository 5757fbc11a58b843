package seed_catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/repo"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_category"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_product"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/update_product"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

const fixturesYAML = `
health_conditions:
  - id: joints
    name: Joint Health
breeds:
  - id: poodle
    name: Poodle
    size_category: medium
    size_variations:
      - id: toy
        size_category: toy
        description: Under 10 lbs
  - id: beagle
    name: Beagle
    size_category: small
categories:
  - id: food
    name: Food
    icon: Bone
products:
  - id: kibble-1
    name: Salmon Kibble
    description: Grain free salmon recipe
    price: 42.5
    category_id: food
    image: https://cdn.example.com/kibble.png
    size_suitability:
      small: true
    health_benefits:
      - health_condition_id: joints
        description: Glucosamine
    breed_recommendations:
      - breed_id: poodle
        strength: 5
        reason: Small kibble
`

func TestLoadFixtures(t *testing.T) {
	t.Run("decodes every section", func(t *testing.T) {
		f, err := LoadFixtures(strings.NewReader(fixturesYAML))
		require.NoError(t, err)

		assert.Len(t, f.HealthConditions, 1)
		require.Len(t, f.Breeds, 2)
		assert.True(t, f.Breeds[0].Breed().HasSizeVariations)
		assert.False(t, f.Breeds[1].Breed().HasSizeVariations)
		require.Len(t, f.Products, 1)
		in := f.Products[0].Input()
		assert.Equal(t, 42.5, in.Price)
		assert.True(t, in.SizeSuitability.Small)
		assert.Equal(t, "poodle", in.BreedRecommendations[0].BreedID)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := LoadFixtures(strings.NewReader("dogs: []\n"))
		assert.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		f, err := LoadFixtures(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, f.Products)
	})
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewSteppingClock(time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC), time.Second)
	store := repo.NewMemoryStore(clk)
	uc := NewInteractor(
		store,
		create_category.NewInteractor(store),
		create_product.NewInteractor(store, clk),
		update_product.NewInteractor(store, clk),
		zap.NewNop(),
	)

	f, err := LoadFixtures(strings.NewReader(fixturesYAML))
	require.NoError(t, err)

	summary, err := uc.Execute(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, Summary{HealthConditions: 1, Breeds: 2, Categories: 1, Products: 1}, summary)

	t.Run("products are joined with lookups", func(t *testing.T) {
		raw, err := store.GetProduct(ctx, "kibble-1")
		require.NoError(t, err)
		assert.Equal(t, "Poodle", raw.BreedRecommendations[0].Breed)
		assert.Equal(t, "Joint Health", raw.HealthBenefits[0].HealthCondition)
	})

	t.Run("second run is idempotent", func(t *testing.T) {
		summary, err := uc.Execute(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Categories)
		assert.Equal(t, 1, summary.Products)

		products, err := store.FetchProducts(ctx, contracts.ProductSelection{})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})
}
