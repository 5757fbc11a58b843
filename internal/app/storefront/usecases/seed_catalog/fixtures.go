package seed_catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Fixtures is the YAML document loaded by `migrate seed`.
type Fixtures struct {
	HealthConditions []HealthConditionFixture `yaml:"health_conditions"`
	Breeds           []BreedFixture           `yaml:"breeds"`
	Categories       []CategoryFixture        `yaml:"categories"`
	Products         []ProductFixture         `yaml:"products"`
}

type HealthConditionFixture struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type BreedFixture struct {
	ID             string                 `yaml:"id"`
	Name           string                 `yaml:"name"`
	SizeCategory   string                 `yaml:"size_category"`
	SizeVariations []SizeVariationFixture `yaml:"size_variations"`
}

type SizeVariationFixture struct {
	ID           string `yaml:"id"`
	SizeCategory string `yaml:"size_category"`
	Description  string `yaml:"description"`
}

type CategoryFixture struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type ProductFixture struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Description      string   `yaml:"description"`
	Price            float64  `yaml:"price"`
	Rating           float64  `yaml:"rating"`
	Popularity       float64  `yaml:"popularity"`
	Discount         int64    `yaml:"discount"`
	Vendor           string   `yaml:"vendor"`
	CategoryID       string   `yaml:"category_id"`
	Image            string   `yaml:"image"`
	AdditionalImages []string `yaml:"additional_images"`
	Tags             []string `yaml:"tags"`
	Ingredients      []string `yaml:"ingredients"`
	NutritionalInfo  string   `yaml:"nutritional_info"`
	Features         []string `yaml:"features"`
	SafetyWarnings   []string `yaml:"safety_warnings"`
	AffiliateType    string   `yaml:"affiliate_type"`
	AffiliateLink    string   `yaml:"affiliate_link"`
	IsBlackFriday    bool     `yaml:"is_black_friday"`
	BlackFridayPrice *float64 `yaml:"black_friday_price"`
	PromotionType    string   `yaml:"promotion_type"`

	LifeStages struct {
		Puppy        bool   `yaml:"puppy"`
		Adult        bool   `yaml:"adult"`
		Senior       bool   `yaml:"senior"`
		MinAgeMonths *int64 `yaml:"min_age_months"`
		MaxAgeMonths *int64 `yaml:"max_age_months"`
	} `yaml:"life_stages"`

	SizeSuitability struct {
		Small       bool     `yaml:"small"`
		Medium      bool     `yaml:"medium"`
		Large       bool     `yaml:"large"`
		Giant       bool     `yaml:"giant"`
		MinWeightKg *float64 `yaml:"min_weight_kg"`
		MaxWeightKg *float64 `yaml:"max_weight_kg"`
	} `yaml:"size_suitability"`

	HealthBenefits []struct {
		HealthConditionID string `yaml:"health_condition_id"`
		Description       string `yaml:"description"`
	} `yaml:"health_benefits"`

	BreedRecommendations []struct {
		BreedID  string `yaml:"breed_id"`
		Strength int64  `yaml:"strength"`
		Reason   string `yaml:"reason"`
	} `yaml:"breed_recommendations"`
}

// LoadFixtures decodes a fixtures document. Unknown keys are rejected.
func LoadFixtures(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &f, nil
}

// Breed converts the fixture to a domain breed.
func (b BreedFixture) Breed() domain.Breed {
	out := domain.Breed{
		ID:                b.ID,
		Name:              b.Name,
		SizeCategory:      domain.SizeCategory(b.SizeCategory),
		HasSizeVariations: len(b.SizeVariations) > 0,
		SizeVariations:    make([]domain.SizeVariation, 0, len(b.SizeVariations)),
	}
	for _, v := range b.SizeVariations {
		out.SizeVariations = append(out.SizeVariations, domain.SizeVariation{
			ID:           v.ID,
			SizeCategory: v.SizeCategory,
			Description:  v.Description,
		})
	}
	return out
}

// Input converts the fixture to the admin product form.
func (p ProductFixture) Input() domain.ProductInput {
	in := domain.ProductInput{
		Name:             p.Name,
		Description:      p.Description,
		Price:            p.Price,
		Rating:           p.Rating,
		Popularity:       p.Popularity,
		Discount:         p.Discount,
		Vendor:           p.Vendor,
		CategoryID:       p.CategoryID,
		Image:            p.Image,
		AdditionalImages: p.AdditionalImages,
		Tags:             p.Tags,
		Ingredients:      p.Ingredients,
		NutritionalInfo:  p.NutritionalInfo,
		Features:         p.Features,
		SafetyWarnings:   p.SafetyWarnings,
		AffiliateType:    p.AffiliateType,
		AffiliateLink:    p.AffiliateLink,
		IsBlackFriday:    p.IsBlackFriday,
		BlackFridayPrice: p.BlackFridayPrice,
		PromotionType:    p.PromotionType,
		LifeStages: domain.LifeStages{
			Puppy:        p.LifeStages.Puppy,
			Adult:        p.LifeStages.Adult,
			Senior:       p.LifeStages.Senior,
			MinAgeMonths: p.LifeStages.MinAgeMonths,
			MaxAgeMonths: p.LifeStages.MaxAgeMonths,
		},
		SizeSuitability: domain.SizeSuitability{
			Small:       p.SizeSuitability.Small,
			Medium:      p.SizeSuitability.Medium,
			Large:       p.SizeSuitability.Large,
			Giant:       p.SizeSuitability.Giant,
			MinWeightKg: p.SizeSuitability.MinWeightKg,
			MaxWeightKg: p.SizeSuitability.MaxWeightKg,
		},
	}
	for _, hb := range p.HealthBenefits {
		in.HealthBenefits = append(in.HealthBenefits, domain.HealthBenefit{
			HealthConditionID: hb.HealthConditionID,
			Description:       hb.Description,
		})
	}
	for _, br := range p.BreedRecommendations {
		in.BreedRecommendations = append(in.BreedRecommendations, domain.BreedRecommendation{
			BreedID:  br.BreedID,
			Strength: br.Strength,
			Reason:   br.Reason,
		})
	}
	return in
}
