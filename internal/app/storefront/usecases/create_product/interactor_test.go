package create_product

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/repo"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

func validInput() domain.ProductInput {
	return domain.ProductInput{
		Name:        " Salmon Kibble ",
		Description: "Grain free",
		Price:       42,
		CategoryID:  "Food",
		Image:       "https://cdn.example.com/kibble.png",
		BreedRecommendations: []domain.BreedRecommendation{
			{BreedID: "beagle", Strength: 2},
			{BreedID: "poodle", Strength: 5},
		},
	}
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore(clock.NewMockClock(time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC)))
	uc := NewInteractor(store, clock.NewMockClock(time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC)))

	t.Run("creates with generated id", func(t *testing.T) {
		p, err := uc.Execute(ctx, &Request{Input: validInput()})
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "Salmon Kibble", p.Name)
		assert.Equal(t, "food", p.CategoryID)
		assert.Equal(t, "poodle", p.BreedRecommendations[0].BreedID)

		stored, err := store.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Salmon Kibble", *stored.Name)
		require.NotNil(t, stored.LifeStages)
	})

	t.Run("keeps an explicit id", func(t *testing.T) {
		p, err := uc.Execute(ctx, &Request{ProductID: "kibble-1", Input: validInput()})
		require.NoError(t, err)
		assert.Equal(t, "kibble-1", p.ID)
	})

	t.Run("invalid form stores nothing", func(t *testing.T) {
		in := validInput()
		in.Name = ""
		in.Discount = 120

		_, err := uc.Execute(ctx, &Request{ProductID: "bad", Input: in})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "name")
		assert.Contains(t, verr.Fields, "discount")
		_, err = store.GetProduct(ctx, "bad")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
