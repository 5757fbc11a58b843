package domain

import (
	"cmp"
	"math"
	"slices"
)

// Normalize turns a fetched row into a Product.
// It is the only place where missing columns and relations get their defaults:
// numbers become zero, flags become false, lists become empty and nested
// structures become all-false values. Price and discount are forced to be
// non-negative, discount and rating are clamped to their ranges.
func Normalize(raw RawProduct) Product {
	p := Product{
		ID:               raw.ID,
		Name:             str(raw.Name),
		Description:      str(raw.Description),
		Price:            nonNegative(raw.Price),
		Rating:           clampFloat(deref(raw.Rating), 0, 5),
		Popularity:       finite(deref(raw.Popularity)),
		Discount:         clampInt(deref(raw.Discount), 0, 100),
		Vendor:           str(raw.Vendor),
		CategoryID:       str(raw.CategoryID),
		Image:            str(raw.Image),
		AdditionalImages: list(raw.AdditionalImages),
		Tags:             list(raw.Tags),
		Ingredients:      list(raw.Ingredients),
		NutritionalInfo:  str(raw.NutritionalInfo),
		Features:         list(raw.Features),
		SafetyWarnings:   list(raw.SafetyWarnings),
		AffiliateType:    str(raw.AffiliateType),
		AffiliateLink:    str(raw.AffiliateLink),
		IsBlackFriday:    deref(raw.IsBlackFriday),
		PromotionType:    str(raw.PromotionType),
		LifeStages:       normalizeLifeStages(raw.LifeStages),
		SizeSuitability:  normalizeSizeSuitability(raw.SizeSuitability),
		HealthBenefits:   list(raw.HealthBenefits),
		CreatedAt:        raw.CreatedAt,
		UpdatedAt:        raw.UpdatedAt,
	}

	if raw.BlackFridayPrice != nil {
		if v := nonNegative(raw.BlackFridayPrice); v > 0 {
			p.BlackFridayPrice = &v
		}
	}

	recs := list(raw.BreedRecommendations)
	slices.SortStableFunc(recs, func(a, b BreedRecommendation) int {
		return cmp.Compare(b.Strength, a.Strength)
	})
	p.BreedRecommendations = recs

	return p
}

// NormalizeAll normalizes a fetched collection into a new slice.
func NormalizeAll(raws []RawProduct) []Product {
	out := make([]Product, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}

// Raw returns p as a fully populated row. Normalize(p.Raw()) equals p for
// any normalized p.
func (p Product) Raw() RawProduct {
	ls, ss := p.LifeStages, p.SizeSuitability
	return RawProduct{
		ID:               p.ID,
		Name:             ptr(p.Name),
		Description:      ptr(p.Description),
		Price:            ptr(p.Price),
		Rating:           ptr(p.Rating),
		Popularity:       ptr(p.Popularity),
		Discount:         ptr(p.Discount),
		Vendor:           ptr(p.Vendor),
		CategoryID:       ptr(p.CategoryID),
		Image:            ptr(p.Image),
		AdditionalImages: list(p.AdditionalImages),
		Tags:             list(p.Tags),
		Ingredients:      list(p.Ingredients),
		NutritionalInfo:  ptr(p.NutritionalInfo),
		Features:         list(p.Features),
		SafetyWarnings:   list(p.SafetyWarnings),
		AffiliateType:    ptr(p.AffiliateType),
		AffiliateLink:    ptr(p.AffiliateLink),
		IsBlackFriday:    ptr(p.IsBlackFriday),
		BlackFridayPrice: copyPtr(p.BlackFridayPrice),
		PromotionType:    ptr(p.PromotionType),
		LifeStages: &RawLifeStages{
			Puppy:        ptr(ls.Puppy),
			Adult:        ptr(ls.Adult),
			Senior:       ptr(ls.Senior),
			MinAgeMonths: copyPtr(ls.MinAgeMonths),
			MaxAgeMonths: copyPtr(ls.MaxAgeMonths),
		},
		SizeSuitability: &RawSizeSuitability{
			Small:       ptr(ss.Small),
			Medium:      ptr(ss.Medium),
			Large:       ptr(ss.Large),
			Giant:       ptr(ss.Giant),
			MinWeightKg: copyPtr(ss.MinWeightKg),
			MaxWeightKg: copyPtr(ss.MaxWeightKg),
		},
		HealthBenefits:       list(p.HealthBenefits),
		BreedRecommendations: list(p.BreedRecommendations),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func normalizeLifeStages(raw *RawLifeStages) LifeStages {
	if raw == nil {
		return LifeStages{}
	}
	return LifeStages{
		Puppy:        deref(raw.Puppy),
		Adult:        deref(raw.Adult),
		Senior:       deref(raw.Senior),
		MinAgeMonths: copyPtr(raw.MinAgeMonths),
		MaxAgeMonths: copyPtr(raw.MaxAgeMonths),
	}
}

func normalizeSizeSuitability(raw *RawSizeSuitability) SizeSuitability {
	if raw == nil {
		return SizeSuitability{}
	}
	return SizeSuitability{
		Small:       deref(raw.Small),
		Medium:      deref(raw.Medium),
		Large:       deref(raw.Large),
		Giant:       deref(raw.Giant),
		MinWeightKg: copyPtr(raw.MinWeightKg),
		MaxWeightKg: copyPtr(raw.MaxWeightKg),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func str(p *string) string {
	return deref(p)
}

// list copies src so that the normalized product never shares a backing
// array with the raw row, and never returns nil.
func list[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func nonNegative(p *float64) float64 {
	v := finite(deref(p))
	if v < 0 {
		return 0
	}
	return v
}
