package domain

import (
	"strings"
	"time"
)

// ProductInput is the admin editable part of a product, including the
// nested relations that are replaced wholesale on every save.
type ProductInput struct {
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
	IsBlackFriday    bool
	BlackFridayPrice *float64
	PromotionType    string

	LifeStages           LifeStages
	SizeSuitability      SizeSuitability
	HealthBenefits       []HealthBenefit
	BreedRecommendations []BreedRecommendation
}

// ValidateProductInput checks the admin product form.
func ValidateProductInput(in ProductInput) error {
	verr := NewValidationError()

	if strings.TrimSpace(in.Name) == "" {
		verr.Add("name", "Product name is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		verr.Add("description", "Description is required")
	}
	if in.Price < 0 {
		verr.Add("price", "Price cannot be negative")
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		verr.Add("category_id", "Category is required")
	}
	if strings.TrimSpace(in.Image) == "" {
		verr.Add("image", "Product image is required")
	}
	if in.AffiliateType == AffiliateAmazon && strings.TrimSpace(in.AffiliateLink) == "" {
		verr.Add("affiliate_link", "Affiliate link is required for Amazon products")
	}
	if in.Discount < 0 || in.Discount > 100 {
		verr.Add("discount", "Discount must be between 0 and 100")
	}
	if in.BlackFridayPrice != nil && *in.BlackFridayPrice < 0 {
		verr.Add("black_friday_price", "Black Friday price cannot be negative")
	}
	if in.Rating < 0 || in.Rating > 5 {
		verr.Add("rating", "Rating must be between 0 and 5")
	}

	return verr.OrNil()
}

// ToProduct builds the stored product for id. Text fields are trimmed, the
// category id is lowercased to match how the storefront looks it up.
func (in ProductInput) ToProduct(id string, createdAt, updatedAt time.Time) Product {
	raw := RawProduct{
		ID:                   id,
		Name:                 ptr(strings.TrimSpace(in.Name)),
		Description:          ptr(strings.TrimSpace(in.Description)),
		Price:                ptr(in.Price),
		Rating:               ptr(in.Rating),
		Popularity:           ptr(in.Popularity),
		Discount:             ptr(in.Discount),
		Vendor:               ptr(strings.TrimSpace(in.Vendor)),
		CategoryID:           ptr(strings.ToLower(strings.TrimSpace(in.CategoryID))),
		Image:                ptr(strings.TrimSpace(in.Image)),
		AdditionalImages:     in.AdditionalImages,
		Tags:                 in.Tags,
		Ingredients:          in.Ingredients,
		NutritionalInfo:      ptr(in.NutritionalInfo),
		Features:             in.Features,
		SafetyWarnings:       in.SafetyWarnings,
		AffiliateType:        ptr(in.AffiliateType),
		AffiliateLink:        ptr(strings.TrimSpace(in.AffiliateLink)),
		IsBlackFriday:        ptr(in.IsBlackFriday),
		BlackFridayPrice:     copyPtr(in.BlackFridayPrice),
		PromotionType:        ptr(in.PromotionType),
		LifeStages:           &RawLifeStages{Puppy: ptr(in.LifeStages.Puppy), Adult: ptr(in.LifeStages.Adult), Senior: ptr(in.LifeStages.Senior), MinAgeMonths: in.LifeStages.MinAgeMonths, MaxAgeMonths: in.LifeStages.MaxAgeMonths},
		SizeSuitability:      &RawSizeSuitability{Small: ptr(in.SizeSuitability.Small), Medium: ptr(in.SizeSuitability.Medium), Large: ptr(in.SizeSuitability.Large), Giant: ptr(in.SizeSuitability.Giant), MinWeightKg: in.SizeSuitability.MinWeightKg, MaxWeightKg: in.SizeSuitability.MaxWeightKg},
		HealthBenefits:       in.HealthBenefits,
		BreedRecommendations: in.BreedRecommendations,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
	return Normalize(raw)
}

// MatchesAdminSearch reports whether the admin list search matches p.
// The query is matched case-insensitively against name, description and vendor.
func MatchesAdminSearch(p Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Vendor), q)
}

func ptr[T any](v T) *T {
	return &v
}
