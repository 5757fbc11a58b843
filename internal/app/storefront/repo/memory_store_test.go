package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

var epoch = time.Date(2024, 11, 29, 9, 0, 0, 0, time.UTC)

func newTestStore() *MemoryStore {
	return NewMemoryStore(clock.NewSteppingClock(epoch, time.Second))
}

func ptr[T any](v T) *T { return &v }

func rawIDs(raws []domain.RawProduct) []string {
	out := make([]string, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.ID)
	}
	return out
}

func TestMemoryStore_FetchProducts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	s.InsertRaw(domain.RawProduct{ID: "old-toy", CategoryID: ptr("toys"), Discount: ptr(int64(10)), IsBlackFriday: ptr(true)})
	s.InsertRaw(domain.RawProduct{ID: "food", CategoryID: ptr("food")})
	s.InsertRaw(domain.RawProduct{ID: "new-toy", CategoryID: ptr("toys"), Discount: ptr(int64(40)), IsBlackFriday: ptr(true)})
	s.InsertRaw(domain.RawProduct{ID: "bare"})

	t.Run("all categories newest first", func(t *testing.T) {
		got, err := s.FetchProducts(ctx, contracts.ProductSelection{CategoryID: contracts.AllCategories})
		require.NoError(t, err)
		assert.Equal(t, []string{"bare", "new-toy", "food", "old-toy"}, rawIDs(got))
	})

	t.Run("category is compared lowercased", func(t *testing.T) {
		got, err := s.FetchProducts(ctx, contracts.ProductSelection{CategoryID: "Toys"})
		require.NoError(t, err)
		assert.Equal(t, []string{"new-toy", "old-toy"}, rawIDs(got))
	})

	t.Run("black friday by discount", func(t *testing.T) {
		got, err := s.FetchProducts(ctx, contracts.ProductSelection{BlackFridayOnly: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"new-toy", "old-toy"}, rawIDs(got))
	})

	t.Run("empty category", func(t *testing.T) {
		got, err := s.FetchProducts(ctx, contracts.ProductSelection{CategoryID: "beds"})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("nulls reach the caller", func(t *testing.T) {
		got, err := s.GetProduct(ctx, "bare")
		require.NoError(t, err)
		assert.Nil(t, got.Price)
		assert.Nil(t, got.LifeStages)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.FetchProducts(cctx, contracts.ProductSelection{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryStore_JoinsLookupNames(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	require.NoError(t, s.UpsertBreed(ctx, domain.Breed{ID: "b1", Name: "Beagle"}))
	require.NoError(t, s.UpsertHealthCondition(ctx, "hc1", "Joint Health"))
	s.InsertRaw(domain.RawProduct{
		ID:                   "p1",
		BreedRecommendations: []domain.BreedRecommendation{{BreedID: "b1", Strength: 4}, {BreedID: "gone", Breed: "Kept"}},
		HealthBenefits:       []domain.HealthBenefit{{HealthConditionID: "hc1", Description: "Supports hips"}},
	})

	got, err := s.GetProduct(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, "Beagle", got.BreedRecommendations[0].Breed)
	assert.Equal(t, "Kept", got.BreedRecommendations[1].Breed)
	assert.Equal(t, "Joint Health", got.HealthBenefits[0].HealthCondition)
}

func TestMemoryStore_ProductWrites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	p := domain.ProductInput{Name: "Kibble", Price: 20, CategoryID: "food"}.ToProduct("p1", time.Time{}, time.Time{})
	require.NoError(t, s.Create(ctx, p))
	assert.Error(t, s.Create(ctx, p))

	created, err := s.GetProduct(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	t.Run("update keeps creation time", func(t *testing.T) {
		p.Name = "Better Kibble"
		require.NoError(t, s.Update(ctx, p))

		got, err := s.GetProduct(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Better Kibble", *got.Name)
		assert.Equal(t, created.CreatedAt, got.CreatedAt)
		assert.True(t, got.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("update unknown", func(t *testing.T) {
		unknown := p
		unknown.ID = "nope"
		assert.ErrorIs(t, s.Update(ctx, unknown), domain.ErrProductNotFound)
	})

	t.Run("delete removes reviews", func(t *testing.T) {
		require.NoError(t, s.CreateReview(ctx, domain.Review{ID: "r1", ProductID: "p1", Rating: 5}))
		require.NoError(t, s.Delete(ctx, "p1"))

		_, err := s.GetProduct(ctx, "p1")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		reviews, err := s.ListReviews(ctx, "p1")
		require.NoError(t, err)
		assert.Empty(t, reviews)
		assert.ErrorIs(t, s.Delete(ctx, "p1"), domain.ErrProductNotFound)
	})
}

func TestMemoryStore_Dogs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	first := domain.Dog{ID: "d1", UserID: "u1", Name: "Rex", CreatedAt: epoch}
	second := domain.Dog{ID: "d2", UserID: "u1", Name: "Fido", CreatedAt: epoch.Add(time.Hour)}
	other := domain.Dog{ID: "d3", UserID: "u2", Name: "Spot", CreatedAt: epoch}
	for _, d := range []domain.Dog{first, second, other} {
		require.NoError(t, s.CreateDog(ctx, d))
	}

	t.Run("list is per user and newest first", func(t *testing.T) {
		dogs, err := s.ListDogs(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, dogs, 2)
		assert.Equal(t, "d2", dogs[0].ID)
		assert.Equal(t, "d1", dogs[1].ID)
	})

	t.Run("another user's dog is not found", func(t *testing.T) {
		_, err := s.GetDog(ctx, "u1", "d3")
		assert.ErrorIs(t, err, domain.ErrDogNotFound)

		stolen := other
		stolen.UserID = "u1"
		assert.ErrorIs(t, s.UpdateDog(ctx, stolen), domain.ErrDogNotFound)
		assert.ErrorIs(t, s.DeleteDog(ctx, "u1", "d3"), domain.ErrDogNotFound)
	})

	t.Run("update keeps creation time", func(t *testing.T) {
		renamed := first
		renamed.Name = "Rexy"
		renamed.CreatedAt = time.Time{}
		require.NoError(t, s.UpdateDog(ctx, renamed))

		got, err := s.GetDog(ctx, "u1", "d1")
		require.NoError(t, err)
		assert.Equal(t, "Rexy", got.Name)
		assert.Equal(t, epoch, got.CreatedAt)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeleteDog(ctx, "u1", "d1"))
		_, err := s.GetDog(ctx, "u1", "d1")
		assert.ErrorIs(t, err, domain.ErrDogNotFound)
	})
}

func TestMemoryStore_ReferenceData(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	require.NoError(t, s.UpsertBreed(ctx, domain.Breed{
		ID: "poodle", Name: "Poodle", HasSizeVariations: true,
		SizeVariations: []domain.SizeVariation{{ID: "toy", SizeCategory: "toy"}},
	}))
	require.NoError(t, s.UpsertBreed(ctx, domain.Breed{
		ID: "poodle", Name: "Poodle", HasSizeVariations: true,
		SizeVariations: []domain.SizeVariation{{ID: "standard", SizeCategory: "large"}},
	}))
	require.NoError(t, s.UpsertBreed(ctx, domain.Breed{ID: "labrador", Name: "Labrador Retriever"}))

	t.Run("breeds by name with merged variations", func(t *testing.T) {
		breeds, err := s.ListBreeds(ctx)
		require.NoError(t, err)
		require.Len(t, breeds, 2)
		assert.Equal(t, "Labrador Retriever", breeds[0].Name)
		assert.Len(t, breeds[1].SizeVariations, 2)
	})

	t.Run("find is case-insensitive", func(t *testing.T) {
		b, err := s.FindBreedByName(ctx, "pOODLE")
		require.NoError(t, err)
		assert.Equal(t, "poodle", b.ID)

		_, err = s.FindBreedByName(ctx, "Wolf")
		assert.ErrorIs(t, err, domain.ErrBreedNotFound)
	})

	t.Run("suggestions", func(t *testing.T) {
		s.InsertRaw(domain.RawProduct{ID: "p1", Name: ptr("Poodle Shampoo")})
		s.InsertRaw(domain.RawProduct{ID: "p2", Name: ptr("Chew Rope")})

		breeds, err := s.SuggestBreeds(ctx, "oo", 5)
		require.NoError(t, err)
		assert.Equal(t, []domain.Suggestion{{Kind: domain.SuggestionBreed, ID: "poodle", Name: "Poodle"}}, breeds)

		products, err := s.SuggestProducts(ctx, "O", 1)
		require.NoError(t, err)
		assert.Equal(t, []domain.Suggestion{{Kind: domain.SuggestionProduct, ID: "p2", Name: "Chew Rope"}}, products)
	})
}

func TestMemoryStore_Categories(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	require.NoError(t, s.CreateCategory(ctx, domain.Category{ID: "toys", Name: "Toys", Icon: "Ball"}))
	require.NoError(t, s.CreateCategory(ctx, domain.Category{ID: "food", Name: "Food", Icon: "Bone"}))

	var verr *domain.ValidationError
	assert.ErrorAs(t, s.CreateCategory(ctx, domain.Category{ID: "toys", Name: "Again"}), &verr)

	got, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "food", got[0].ID)
}

func TestMemoryStore_Reviews(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	s.InsertRaw(domain.RawProduct{ID: "p1"})

	assert.ErrorIs(t, s.CreateReview(ctx, domain.Review{ID: "r0", ProductID: "nope"}), domain.ErrProductNotFound)

	require.NoError(t, s.CreateReview(ctx, domain.Review{ID: "r1", ProductID: "p1", CreatedAt: epoch}))
	require.NoError(t, s.CreateReview(ctx, domain.Review{ID: "r2", ProductID: "p1", CreatedAt: epoch}))

	got, err := s.ListReviews(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
}
