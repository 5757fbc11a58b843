package browse_catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/repo"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

func ptr[T any](v T) *T { return &v }

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func small() *domain.RawSizeSuitability {
	return &domain.RawSizeSuitability{Small: ptr(true)}
}

func setup(t *testing.T) (*Query, *repo.MemoryStore) {
	t.Helper()
	start := time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC)
	store := repo.NewMemoryStore(clock.NewSteppingClock(start, time.Minute))

	store.InsertRaw(domain.RawProduct{
		ID: "poodle-food", CategoryID: ptr("food"), Price: ptr(30.0), Popularity: ptr(80.0), Vendor: ptr("Acme"),
		BreedRecommendations: []domain.BreedRecommendation{{BreedID: "poodle", Breed: "Poodle", Strength: 5}},
		SizeSuitability:      small(),
	})
	store.InsertRaw(domain.RawProduct{
		ID: "big-food", CategoryID: ptr("food"), Price: ptr(60.0), Popularity: ptr(90.0), Vendor: ptr("Bark Co"),
		SizeSuitability: &domain.RawSizeSuitability{Giant: ptr(true)},
	})
	store.InsertRaw(domain.RawProduct{
		ID: "chew", CategoryID: ptr("toys"), Price: ptr(10.0), Popularity: ptr(20.0), Discount: ptr(int64(50)),
		IsBlackFriday: ptr(true),
	})
	store.InsertRaw(domain.RawProduct{
		ID: "ball", CategoryID: ptr("toys"), Price: ptr(5.0), Popularity: ptr(70.0), Discount: ptr(int64(10)),
		IsBlackFriday: ptr(true),
	})

	require.NoError(t, store.CreateDog(context.Background(), domain.Dog{
		ID: "d1", UserID: "u1", Name: "Coco", Breed: "poodle", SizeVariation: "toy", Weight: 6,
	}))

	fetcher := catalog.NewFetcher(store, zap.NewNop(), "")
	return NewQuery(fetcher, store), store
}

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()
	q, _ := setup(t)

	t.Run("category with default criteria", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{CategoryID: "Food"})
		require.NoError(t, err)

		assert.Equal(t, []string{"big-food", "poodle-food"}, ids(res.Products))
		assert.Equal(t, domain.PriceRange{Min: 30, Max: 60}, res.PriceBounds)
		assert.Equal(t, domain.SortPopular, res.Sort)
		assert.Equal(t, 2, res.Total)
	})

	t.Run("all categories", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{CategoryID: contracts.AllCategories, Sort: domain.SortPriceAsc})
		require.NoError(t, err)
		assert.Equal(t, []string{"ball", "chew", "poodle-food", "big-food"}, ids(res.Products))
	})

	t.Run("price bounds from the request", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{MaxPrice: ptr(12.0)})
		require.NoError(t, err)
		assert.Equal(t, []string{"ball", "chew"}, ids(res.Products))
		assert.Equal(t, domain.PriceRange{Min: 0, Max: 12}, res.Criteria.Price)
	})

	t.Run("bounds beyond the collection give no results", func(t *testing.T) {
		tests := []struct {
			name string
			req  *Request
		}{
			{"max below cheapest", &Request{CategoryID: "food", MaxPrice: ptr(20.0)}},
			{"min above dearest", &Request{CategoryID: "food", MinPrice: ptr(100.0)}},
			{"min on empty category", &Request{CategoryID: "beds", MinPrice: ptr(5.0)}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res, err := q.Execute(ctx, tt.req)
				require.NoError(t, err)
				assert.True(t, res.Empty)
				assert.Empty(t, res.Products)
			})
		}
	})

	t.Run("negative bound", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{CategoryID: "food", MinPrice: ptr(-1.0)})
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})

	t.Run("inverted price range", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{MinPrice: ptr(50.0), MaxPrice: ptr(10.0)})
		assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	})

	t.Run("dog pre-fills breed and size", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{CategoryID: "food", UserID: "u1", DogID: "d1"})
		require.NoError(t, err)

		assert.Equal(t, "poodle", res.Criteria.Breed)
		assert.Equal(t, domain.SizeToy, res.Criteria.Size)
		assert.Equal(t, []string{"poodle-food"}, ids(res.Products))
	})

	t.Run("explicit size overrides the dog", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{CategoryID: "food", UserID: "u1", DogID: "d1", Size: domain.SizeGiant})
		require.NoError(t, err)
		assert.True(t, res.Empty)
	})

	t.Run("another user's dog", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{UserID: "u2", DogID: "d1"})
		assert.ErrorIs(t, err, domain.ErrDogNotFound)
	})

	t.Run("dog without user", func(t *testing.T) {
		_, err := q.Execute(ctx, &Request{DogID: "d1"})
		assert.ErrorIs(t, err, domain.ErrMissingUser)
	})

	t.Run("black friday sorts by discount by default", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{BlackFridayOnly: true})
		require.NoError(t, err)
		assert.Equal(t, domain.SortDiscount, res.Sort)
		assert.Equal(t, []string{"chew", "ball"}, ids(res.Products))
	})

	t.Run("promotional only on a non promotional set is empty", func(t *testing.T) {
		res, err := q.Execute(ctx, &Request{CategoryID: "food", PromotionalOnly: true})
		require.NoError(t, err)
		assert.True(t, res.Empty)
		assert.Empty(t, res.Products)
	})
}

type failingSource struct{ contracts.ProductSource }

func (failingSource) FetchProducts(context.Context, contracts.ProductSelection) ([]domain.RawProduct, error) {
	return nil, errors.New("unavailable")
}

func TestQuery_FetchFailure(t *testing.T) {
	q := NewQuery(catalog.NewFetcher(failingSource{}, zap.NewNop(), ""), nil)

	_, err := q.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
