package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productOpt func(*RawProduct)

func withPrice(v float64) productOpt  { return func(r *RawProduct) { r.Price = ptr(v) } }
func withVendor(v string) productOpt  { return func(r *RawProduct) { r.Vendor = ptr(v) } }
func withRating(v float64) productOpt { return func(r *RawProduct) { r.Rating = ptr(v) } }
func withPopularity(v float64) productOpt {
	return func(r *RawProduct) { r.Popularity = ptr(v) }
}
func withDiscount(v int64) productOpt { return func(r *RawProduct) { r.Discount = ptr(v) } }
func withBlackFriday() productOpt     { return func(r *RawProduct) { r.IsBlackFriday = ptr(true) } }

func withBreeds(names ...string) productOpt {
	return func(r *RawProduct) {
		for i, n := range names {
			r.BreedRecommendations = append(r.BreedRecommendations, BreedRecommendation{
				BreedID: "breed-" + n, Breed: n, Strength: int64(len(names) - i),
			})
		}
	}
}

func withSizes(small, medium, large, giant bool) productOpt {
	return func(r *RawProduct) {
		r.SizeSuitability = &RawSizeSuitability{
			Small: ptr(small), Medium: ptr(medium), Large: ptr(large), Giant: ptr(giant),
		}
	}
}

func newProduct(id string, opts ...productOpt) Product {
	raw := RawProduct{ID: id}
	for _, opt := range opts {
		opt(&raw)
	}
	return Normalize(raw)
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func sampleCatalog() []Product {
	return []Product{
		newProduct("kibble", withPrice(42), withVendor("Acme"), withRating(4.5), withPopularity(90),
			withBreeds("Poodle", "Beagle"), withSizes(true, true, false, false)),
		newProduct("chew", withPrice(8.5), withVendor("Bark Co"), withRating(3.9), withPopularity(40),
			withDiscount(25), withBlackFriday(), withSizes(false, false, true, true)),
		newProduct("bed", withPrice(120), withVendor("Acme"), withRating(4.8), withPopularity(70),
			withBreeds("Great Dane"), withSizes(false, false, false, true)),
		newProduct("toy", withPrice(15), withVendor("Chewy Things"), withPopularity(10)),
	}
}

func TestFilter_Scenarios(t *testing.T) {
	t.Run("breed selects only recommended products", func(t *testing.T) {
		products := []Product{
			newProduct("first", withPrice(10), withVendor("A"), withBreeds("Poodle")),
			newProduct("second", withPrice(50), withVendor("B"), withBreeds("Beagle")),
		}
		c := Criteria{Price: PriceBounds(products), Breed: "Poodle"}

		got := Filter(products, c)

		assert.Equal(t, []string{"first"}, ids(got))
	})

	t.Run("promotional only with no promotions is empty", func(t *testing.T) {
		products := []Product{
			newProduct("a", withPrice(10)),
			newProduct("b", withPrice(20)),
		}
		c := Criteria{Price: PriceBounds(products), PromotionalOnly: true}

		got := Filter(products, c)

		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("toy size matches small suitability", func(t *testing.T) {
		small := newProduct("small", withPrice(5), withSizes(true, false, false, false))
		defaulted := newProduct("defaulted", withPrice(5))
		c := Criteria{Price: Unbounded, Size: SizeToy}

		assert.True(t, c.Matches(small))
		assert.False(t, c.Matches(defaulted))
	})

	t.Run("breed name compares case-insensitively", func(t *testing.T) {
		c := Criteria{Price: Unbounded, Breed: "poodle"}
		assert.Equal(t, []string{"kibble"}, ids(Filter(sampleCatalog(), c)))
	})

	t.Run("breed id matches", func(t *testing.T) {
		c := Criteria{Price: Unbounded, Breed: "breed-Great Dane"}
		assert.Equal(t, []string{"bed"}, ids(Filter(sampleCatalog(), c)))
	})

	t.Run("unknown size matches nothing", func(t *testing.T) {
		c := Criteria{Price: Unbounded, Size: SizeCategory("standard")}
		assert.Empty(t, Filter(sampleCatalog(), c))
	})
}

func TestFilter_Predicates(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"price range inclusive", Criteria{Price: PriceRange{Min: 8.5, Max: 42}}, []string{"kibble", "chew", "toy"}},
		{"single vendor", Criteria{Price: Unbounded, Vendors: []string{"Acme"}}, []string{"kibble", "bed"}},
		{"vendor set", Criteria{Price: Unbounded, Vendors: []string{"Bark Co", "Chewy Things"}}, []string{"chew", "toy"}},
		{"medium size", Criteria{Price: Unbounded, Size: SizeMedium}, []string{"kibble"}},
		{"mini maps to small", Criteria{Price: Unbounded, Size: SizeMini}, []string{"kibble"}},
		{"large size", Criteria{Price: Unbounded, Size: SizeLarge}, []string{"chew"}},
		{"giant size", Criteria{Price: Unbounded, Size: SizeGiant}, []string{"chew", "bed"}},
		{"promotional only", Criteria{Price: Unbounded, PromotionalOnly: true}, []string{"chew"}},
		{"combined", Criteria{Price: PriceRange{Min: 0, Max: 100}, Vendors: []string{"Acme"}, Breed: "Beagle", Size: SizeSmall}, []string{"kibble"}},
		{"no match", Criteria{Price: PriceRange{Min: 500, Max: 900}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(catalog, tt.criteria))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_Properties(t *testing.T) {
	catalog := sampleCatalog()

	t.Run("empty criteria over the full range is identity", func(t *testing.T) {
		c := Criteria{Price: PriceBounds(catalog)}
		if diff := cmp.Diff(catalog, Filter(catalog, c)); diff != "" {
			t.Errorf("Filter() changed the collection (-want +got):\n%s", diff)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		all := []Criteria{
			{Price: Unbounded},
			{Price: PriceRange{Min: 10, Max: 50}},
			{Price: Unbounded, Vendors: []string{"Acme"}},
			{Price: Unbounded, Breed: "Poodle", Size: SizeToy},
			{Price: Unbounded, PromotionalOnly: true, Size: SizeGiant},
		}
		for _, c := range all {
			once := Filter(catalog, c)
			twice := Filter(once, c)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("Filter() not idempotent for %+v (-once +twice):\n%s", c, diff)
			}
		}
	})

	t.Run("predicate order does not matter", func(t *testing.T) {
		full := Criteria{Price: PriceRange{Min: 0, Max: 200}, Vendors: []string{"Acme", "Bark Co"}, Size: SizeGiant}
		stepwise := Filter(Filter(Filter(catalog,
			Criteria{Price: Unbounded, Size: SizeGiant}),
			Criteria{Price: Unbounded, Vendors: []string{"Acme", "Bark Co"}}),
			Criteria{Price: PriceRange{Min: 0, Max: 200}})
		assert.Equal(t, ids(Filter(catalog, full)), ids(stepwise))
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := ids(catalog)
		_ = Filter(catalog, Criteria{Price: Unbounded, Vendors: []string{"Acme"}})
		assert.Equal(t, before, ids(catalog))
	})
}

func TestPriceBoundsAndVendors(t *testing.T) {
	catalog := sampleCatalog()

	assert.Equal(t, PriceRange{Min: 8.5, Max: 120}, PriceBounds(catalog))
	assert.Equal(t, PriceRange{}, PriceBounds(nil))
	assert.Equal(t, []string{"Acme", "Bark Co", "Chewy Things"}, Vendors(catalog))
	assert.Empty(t, Vendors(nil))
}

func TestPriceRange_Validate(t *testing.T) {
	assert.NoError(t, PriceRange{Min: 0, Max: 10}.Validate())
	assert.NoError(t, Unbounded.Validate())
	assert.ErrorIs(t, PriceRange{Min: 10, Max: 5}.Validate(), ErrInvalidPrice)
	assert.ErrorIs(t, PriceRange{Min: -1, Max: 5}.Validate(), ErrInvalidPrice)
}

func TestPriceWindow(t *testing.T) {
	tests := []struct {
		name    string
		min     *float64
		max     *float64
		want    PriceRange
		wantErr bool
	}{
		{name: "no bounds", want: Unbounded},
		{name: "max only", max: ptr(20.0), want: PriceRange{Min: 0, Max: 20}},
		{name: "min only", min: ptr(100.0), want: PriceRange{Min: 100, Max: Unbounded.Max}},
		{name: "both", min: ptr(5.0), max: ptr(10.0), want: PriceRange{Min: 5, Max: 10}},
		{name: "inverted", min: ptr(10.0), max: ptr(5.0), wantErr: true},
		{name: "negative min", min: ptr(-1.0), wantErr: true},
		{name: "negative max", max: ptr(-1.0), wantErr: true},
		{name: "nan", max: ptr(math.NaN()), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PriceWindow(tt.min, tt.max)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, Unbounded.IsUnbounded())
	assert.False(t, PriceRange{Max: 20}.IsUnbounded())
}
