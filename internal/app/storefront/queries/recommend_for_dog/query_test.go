package recommend_for_dog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/repo"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

func ptr[T any](v T) *T { return &v }

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore(clock.NewMockClock(time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC)))

	for i := 1; i <= 8; i++ {
		store.InsertRaw(domain.RawProduct{
			ID:                   fmt.Sprintf("beagle-%d", i),
			Popularity:           ptr(float64(i)),
			BreedRecommendations: []domain.BreedRecommendation{{BreedID: "b-beagle", Breed: "Beagle", Strength: 3}},
		})
	}
	store.InsertRaw(domain.RawProduct{
		ID:                   "husky-only",
		Popularity:           ptr(100.0),
		BreedRecommendations: []domain.BreedRecommendation{{BreedID: "b-husky", Breed: "Husky"}},
	})
	require.NoError(t, store.CreateDog(ctx, domain.Dog{ID: "d1", UserID: "u1", Breed: "beagle"}))

	q := NewQuery(catalog.NewFetcher(store, zap.NewNop(), ""), store)

	t.Run("top six by popularity", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{UserID: "u1", DogID: "d1"})
		require.NoError(t, err)

		got := make([]string, 0, len(res.Products))
		for _, p := range res.Products {
			got = append(got, p.ID)
		}
		assert.Equal(t, []string{"beagle-8", "beagle-7", "beagle-6", "beagle-5", "beagle-4", "beagle-3"}, got)
		assert.Equal(t, "d1", res.Dog.ID)
	})

	t.Run("unknown dog", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{UserID: "u1", DogID: "nope"})
		assert.ErrorIs(t, err, domain.ErrDogNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{DogID: "d1"})
		assert.ErrorIs(t, err, domain.ErrMissingUser)
	})
}
