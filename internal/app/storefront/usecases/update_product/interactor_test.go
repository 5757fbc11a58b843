package update_product

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

func input(name string, recs ...domain.BreedRecommendation) domain.ProductInput {
	return domain.ProductInput{
		Name:                 name,
		Description:          "desc",
		Price:                10,
		CategoryID:           "toys",
		Image:                "img.png",
		BreedRecommendations: recs,
	}
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewSteppingClock(time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC), time.Minute)
	store := repo.NewMemoryStore(clk)
	require.NoError(t, store.Create(ctx, input("Rope", domain.BreedRecommendation{BreedID: "beagle"}).ToProduct("p1", time.Time{}, time.Time{})))
	before, err := store.GetProduct(ctx, "p1")
	require.NoError(t, err)

	uc := NewInteractor(store, clk)

	t.Run("replaces row and nested rows", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{
			ProductID: "p1",
			Input:     input("Tough Rope", domain.BreedRecommendation{BreedID: "husky", Strength: 4}),
		})
		require.NoError(t, err)

		got, err := store.GetProduct(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Tough Rope", *got.Name)
		require.Len(t, got.BreedRecommendations, 1)
		assert.Equal(t, "husky", got.BreedRecommendations[0].BreedID)
		assert.Equal(t, before.CreatedAt, got.CreatedAt)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{ProductID: "nope", Input: input("X")})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("validation runs first", func(t *testing.T) {
		_, err := uc.Execute(ctx, &Request{ProductID: "nope", Input: domain.ProductInput{}})
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}
