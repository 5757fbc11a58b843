package domain

import "time"

// AffiliateAmazon is the affiliate type that requires an affiliate link.
const AffiliateAmazon = "amazon"

// Product is a normalized catalog entry.
// Every nested structure is always present; absence in the store has already
// been replaced by defaults in Normalize. Products are values and are never
// mutated after normalization.
type Product struct {
	ID               string
	Name             string
	Description      string
	Price            float64
	Rating           float64
	Popularity       float64
	Discount         int64
	Vendor           string
	CategoryID       string
	Image            string
	AdditionalImages []string
	Tags             []string
	Ingredients      []string
	NutritionalInfo  string
	Features         []string
	SafetyWarnings   []string
	AffiliateType    string
	AffiliateLink    string

	IsBlackFriday bool
	// BlackFridayPrice is nil when no explicit promotional price is set.
	BlackFridayPrice *float64
	PromotionType    string

	LifeStages           LifeStages
	SizeSuitability      SizeSuitability
	HealthBenefits       []HealthBenefit
	BreedRecommendations []BreedRecommendation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LifeStages describes which ages a product suits.
// Age bounds are in months; nil means unbounded.
type LifeStages struct {
	Puppy        bool
	Adult        bool
	Senior       bool
	MinAgeMonths *int64
	MaxAgeMonths *int64
}

// SizeSuitability describes which dog sizes a product suits.
// Weight bounds are in kilograms; nil means unbounded.
type SizeSuitability struct {
	Small       bool
	Medium      bool
	Large       bool
	Giant       bool
	MinWeightKg *float64
	MaxWeightKg *float64
}

// Suits reports whether the suitability flag for the given size class is set.
func (s SizeSuitability) Suits(class SizeClass) bool {
	switch class {
	case SizeClassSmall:
		return s.Small
	case SizeClassMedium:
		return s.Medium
	case SizeClassLarge:
		return s.Large
	case SizeClassGiant:
		return s.Giant
	default:
		return false
	}
}

// BreedRecommendation links a product to a breed it is recommended for.
type BreedRecommendation struct {
	BreedID  string
	Breed    string
	Strength int64
	Reason   string
}

// HealthBenefit links a product to a health condition it helps with.
type HealthBenefit struct {
	HealthConditionID string
	HealthCondition   string
	Description       string
}

// RawProduct is a product as fetched from the store, before normalization.
// Nil fields were NULL or missing in the source row.
type RawProduct struct {
	ID               string
	Name             *string
	Description      *string
	Price            *float64
	Rating           *float64
	Popularity       *float64
	Discount         *int64
	Vendor           *string
	CategoryID       *string
	Image            *string
	AdditionalImages []string
	Tags             []string
	Ingredients      []string
	NutritionalInfo  *string
	Features         []string
	SafetyWarnings   []string
	AffiliateType    *string
	AffiliateLink    *string
	IsBlackFriday    *bool
	BlackFridayPrice *float64
	PromotionType    *string

	LifeStages           *RawLifeStages
	SizeSuitability      *RawSizeSuitability
	HealthBenefits       []HealthBenefit
	BreedRecommendations []BreedRecommendation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RawLifeStages is the nullable life stage row.
type RawLifeStages struct {
	Puppy        *bool
	Adult        *bool
	Senior       *bool
	MinAgeMonths *int64
	MaxAgeMonths *int64
}

// RawSizeSuitability is the nullable size suitability row.
type RawSizeSuitability struct {
	Small       *bool
	Medium      *bool
	Large       *bool
	Giant       *bool
	MinWeightKg *float64
	MaxWeightKg *float64
}
