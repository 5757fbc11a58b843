package domain

import (
	"net/url"
	"strings"
)

// PromotionalPrice is the price shown on the promotions page.
// An explicit positive promotional price always wins, even when a discount is
// also set. Otherwise the discount is applied to the regular price and the
// result is rounded to cents.
func PromotionalPrice(p Product) float64 {
	if p.BlackFridayPrice != nil && *p.BlackFridayPrice > 0 {
		return *p.BlackFridayPrice
	}
	return NewMoneyFromFloat(p.Price).PercentOff(p.Discount).RoundToCents().Float64()
}

// Savings is the amount saved against the regular price, never negative.
func Savings(p Product) float64 {
	regular := NewMoneyFromFloat(p.Price).RoundToCents()
	promo := NewMoneyFromFloat(PromotionalPrice(p)).RoundToCents()
	if !promo.LessThan(regular) {
		return 0
	}
	return regular.Subtract(promo).Float64()
}

// WithAffiliateTag adds the associate tag to amazon affiliate links.
// Links that already carry a tag, unparsable links and non amazon products
// are returned unchanged.
func WithAffiliateTag(p Product, tag string) Product {
	if tag == "" || p.AffiliateType != AffiliateAmazon || p.AffiliateLink == "" {
		return p
	}
	u, err := url.Parse(p.AffiliateLink)
	if err != nil || u.Host == "" || !strings.Contains(strings.ToLower(u.Host), "amazon.") {
		return p
	}
	q := u.Query()
	if q.Get("tag") != "" {
		return p
	}
	q.Set("tag", tag)
	u.RawQuery = q.Encode()
	p.AffiliateLink = u.String()
	return p
}
