package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromotionalPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProduct
		want float64
	}{
		{
			name: "explicit price only",
			raw:  RawProduct{Price: ptr(50.0), BlackFridayPrice: ptr(29.99)},
			want: 29.99,
		},
		{
			name: "discount only",
			raw:  RawProduct{Price: ptr(50.0), Discount: ptr(int64(20))},
			want: 40,
		},
		{
			// Both present: the explicit promotional price wins over the discount.
			name: "explicit price and discount",
			raw:  RawProduct{Price: ptr(50.0), Discount: ptr(int64(50)), BlackFridayPrice: ptr(35.0)},
			want: 35,
		},
		{
			name: "zero explicit price falls back to discount",
			raw:  RawProduct{Price: ptr(50.0), Discount: ptr(int64(10)), BlackFridayPrice: ptr(0.0)},
			want: 45,
		},
		{
			name: "neither present is the regular price",
			raw:  RawProduct{Price: ptr(19.99)},
			want: 19.99,
		},
		{
			name: "rounds to cents",
			raw:  RawProduct{Price: ptr(19.99), Discount: ptr(int64(20))},
			want: 15.99,
		},
		{
			name: "rounds half up",
			raw:  RawProduct{Price: ptr(8.5), Discount: ptr(int64(25))},
			want: 6.38,
		},
		{
			name: "full discount",
			raw:  RawProduct{Price: ptr(12.0), Discount: ptr(int64(100))},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PromotionalPrice(Normalize(tt.raw)))
		})
	}
}

func TestSavings(t *testing.T) {
	assert.Equal(t, 10.0, Savings(Normalize(RawProduct{Price: ptr(50.0), Discount: ptr(int64(20))})))
	assert.Equal(t, 0.0, Savings(Normalize(RawProduct{Price: ptr(50.0)})))
	// A promotional price above the regular price saves nothing.
	assert.Equal(t, 0.0, Savings(Normalize(RawProduct{Price: ptr(10.0), BlackFridayPrice: ptr(15.0)})))
}

func TestWithAffiliateTag(t *testing.T) {
	amazon := Product{AffiliateType: AffiliateAmazon, AffiliateLink: "https://www.amazon.com/dp/B000123"}

	t.Run("adds tag", func(t *testing.T) {
		got := WithAffiliateTag(amazon, "pawfect-20")
		assert.Equal(t, "https://www.amazon.com/dp/B000123?tag=pawfect-20", got.AffiliateLink)
		assert.Equal(t, "https://www.amazon.com/dp/B000123", amazon.AffiliateLink)
	})

	t.Run("keeps existing tag", func(t *testing.T) {
		p := amazon
		p.AffiliateLink = "https://www.amazon.com/dp/B000123?tag=other-20"
		assert.Equal(t, p.AffiliateLink, WithAffiliateTag(p, "pawfect-20").AffiliateLink)
	})

	t.Run("ignores other affiliates", func(t *testing.T) {
		p := Product{AffiliateType: "chewy", AffiliateLink: "https://www.chewy.com/x"}
		assert.Equal(t, p.AffiliateLink, WithAffiliateTag(p, "pawfect-20").AffiliateLink)
	})

	t.Run("empty tag is a no-op", func(t *testing.T) {
		assert.Equal(t, amazon.AffiliateLink, WithAffiliateTag(amazon, "").AffiliateLink)
	})
}

func TestMoney(t *testing.T) {
	t.Run("from float rejects negatives", func(t *testing.T) {
		assert.True(t, NewMoneyFromFloat(-1).IsZero())
	})

	t.Run("round half away from zero", func(t *testing.T) {
		assert.Equal(t, "0.13", NewMoneyFromFloat(0.125).RoundToCents().String())
		assert.Equal(t, "0.12", NewMoneyFromFloat(0.124).RoundToCents().String())
	})

	t.Run("percent off clamps", func(t *testing.T) {
		m := NewMoneyFromCents(1000)
		assert.Equal(t, "10.00", m.PercentOff(-5).String())
		assert.True(t, m.PercentOff(150).IsZero())
		assert.Equal(t, "7.50", m.PercentOff(25).String())
	})

	t.Run("comparisons", func(t *testing.T) {
		a := NewMoneyFromCents(500)
		b := NewMoneyFromFloat(5)
		assert.True(t, a.Equals(b))
		assert.True(t, NewMoneyFromCents(499).LessThan(a))
		assert.True(t, a.IsPositive())
		assert.Equal(t, "1.00", a.Subtract(NewMoneyFromCents(400)).String())
	})
}
