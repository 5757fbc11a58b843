package http

import (
	"time"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/browse_catalog"
)

type lifeStagesJSON struct {
	Puppy        bool   `json:"puppy"`
	Adult        bool   `json:"adult"`
	Senior       bool   `json:"senior"`
	MinAgeMonths *int64 `json:"min_age_months,omitempty"`
	MaxAgeMonths *int64 `json:"max_age_months,omitempty"`
}

type sizeSuitabilityJSON struct {
	Small       bool     `json:"small"`
	Medium      bool     `json:"medium"`
	Large       bool     `json:"large"`
	Giant       bool     `json:"giant"`
	MinWeightKg *float64 `json:"min_weight_kg,omitempty"`
	MaxWeightKg *float64 `json:"max_weight_kg,omitempty"`
}

type healthBenefitJSON struct {
	HealthConditionID string `json:"health_condition_id"`
	HealthCondition   string `json:"health_condition,omitempty"`
	Description       string `json:"description"`
}

type breedRecommendationJSON struct {
	BreedID  string `json:"breed_id"`
	Breed    string `json:"breed,omitempty"`
	Strength int64  `json:"strength"`
	Reason   string `json:"reason"`
}

// productJSON is the editable product shape, shared by admin requests and
// every product response.
type productJSON struct {
	Name                 string                    `json:"name"`
	Description          string                    `json:"description"`
	Price                float64                   `json:"price"`
	Rating               float64                   `json:"rating"`
	Popularity           float64                   `json:"popularity"`
	Discount             int64                     `json:"discount"`
	Vendor               string                    `json:"vendor"`
	CategoryID           string                    `json:"category_id"`
	Image                string                    `json:"image"`
	AdditionalImages     []string                  `json:"additional_images"`
	Tags                 []string                  `json:"tags"`
	Ingredients          []string                  `json:"ingredients"`
	NutritionalInfo      string                    `json:"nutritional_info"`
	Features             []string                  `json:"features"`
	SafetyWarnings       []string                  `json:"safety_warnings"`
	AffiliateType        string                    `json:"affiliate_type"`
	AffiliateLink        string                    `json:"affiliate_link"`
	IsBlackFriday        bool                      `json:"is_black_friday"`
	BlackFridayPrice     *float64                  `json:"black_friday_price,omitempty"`
	PromotionType        string                    `json:"promotion_type"`
	LifeStages           lifeStagesJSON            `json:"life_stages"`
	SizeSuitability      sizeSuitabilityJSON       `json:"size_suitability"`
	HealthBenefits       []healthBenefitJSON       `json:"health_benefits"`
	BreedRecommendations []breedRecommendationJSON `json:"breed_recommendations"`
}

type productResponse struct {
	ID string `json:"id"`
	productJSON
	PromotionalPrice float64   `json:"promotional_price"`
	Savings          float64   `json:"savings"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type priceRangeJSON struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// criteriaPriceJSON reports an open upper bound as null.
type criteriaPriceJSON struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max"`
}

type criteriaJSON struct {
	Price           criteriaPriceJSON `json:"price"`
	Breed           string            `json:"breed,omitempty"`
	Size            string            `json:"size,omitempty"`
	Vendors         []string          `json:"vendors"`
	PromotionalOnly bool              `json:"promotional_only"`
}

type catalogResponse struct {
	Products    []productResponse `json:"products"`
	Empty       bool              `json:"empty"`
	Total       int               `json:"total"`
	PriceBounds priceRangeJSON    `json:"price_bounds"`
	Vendors     []string          `json:"vendors"`
	Criteria    criteriaJSON      `json:"criteria"`
	Sort        string            `json:"sort"`
}

type suggestionJSON struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type sizeVariationJSON struct {
	ID           string `json:"id"`
	SizeCategory string `json:"size_category"`
	Description  string `json:"description"`
}

type breedJSON struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	SizeCategory      string              `json:"size_category"`
	HasSizeVariations bool                `json:"has_size_variations"`
	SizeVariations    []sizeVariationJSON `json:"size_variations"`
}

type categoryJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// dogRequest accepts the age either as fractional years or as years and
// months, and the weight as fractional pounds or pounds and ounces.
type dogRequest struct {
	Name             string   `json:"name"`
	Breed            string   `json:"breed"`
	SizeVariation    string   `json:"breed_size_variation"`
	Age              *float64 `json:"age,omitempty"`
	AgeYears         int      `json:"age_years"`
	AgeMonths        int      `json:"age_months"`
	Weight           *float64 `json:"weight,omitempty"`
	WeightPounds     int      `json:"weight_lbs"`
	WeightOunces     int      `json:"weight_oz"`
	ActivityLevel    *int64   `json:"activity_level,omitempty"`
	Image            string   `json:"image"`
	HealthConditions []string `json:"health_conditions"`
}

type dogResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Breed            string    `json:"breed"`
	SizeVariation    string    `json:"breed_size_variation,omitempty"`
	Age              float64   `json:"age"`
	AgeYears         int       `json:"age_years"`
	AgeMonths        int       `json:"age_months"`
	Weight           float64   `json:"weight"`
	WeightPounds     int       `json:"weight_lbs"`
	WeightOunces     int       `json:"weight_oz"`
	ActivityLevel    int64     `json:"activity_level"`
	Image            string    `json:"image,omitempty"`
	HealthConditions []string  `json:"health_conditions"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type recommendationsResponse struct {
	Dog      dogResponse       `json:"dog"`
	Products []productResponse `json:"products"`
}

type reviewRequest struct {
	UserName string `json:"user_name"`
	Rating   int64  `json:"rating"`
	Title    string `json:"title"`
	Comment  string `json:"comment"`
}

type reviewResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	UserName         string    `json:"user_name"`
	Rating           int64     `json:"rating"`
	Title            string    `json:"title"`
	Comment          string    `json:"comment"`
	HelpfulCount     int64     `json:"helpful_count"`
	VerifiedPurchase bool      `json:"verified_purchase"`
	CreatedAt        time.Time `json:"created_at"`
}

type productRequest struct {
	ID string `json:"id,omitempty"`
	productJSON
}

type categoryRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func productToJSON(p domain.Product) productResponse {
	benefits := make([]healthBenefitJSON, 0, len(p.HealthBenefits))
	for _, b := range p.HealthBenefits {
		benefits = append(benefits, healthBenefitJSON{
			HealthConditionID: b.HealthConditionID,
			HealthCondition:   b.HealthCondition,
			Description:       b.Description,
		})
	}
	recs := make([]breedRecommendationJSON, 0, len(p.BreedRecommendations))
	for _, r := range p.BreedRecommendations {
		recs = append(recs, breedRecommendationJSON{
			BreedID:  r.BreedID,
			Breed:    r.Breed,
			Strength: r.Strength,
			Reason:   r.Reason,
		})
	}

	return productResponse{
		ID: p.ID,
		productJSON: productJSON{
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
			LifeStages: lifeStagesJSON{
				Puppy:        p.LifeStages.Puppy,
				Adult:        p.LifeStages.Adult,
				Senior:       p.LifeStages.Senior,
				MinAgeMonths: p.LifeStages.MinAgeMonths,
				MaxAgeMonths: p.LifeStages.MaxAgeMonths,
			},
			SizeSuitability: sizeSuitabilityJSON{
				Small:       p.SizeSuitability.Small,
				Medium:      p.SizeSuitability.Medium,
				Large:       p.SizeSuitability.Large,
				Giant:       p.SizeSuitability.Giant,
				MinWeightKg: p.SizeSuitability.MinWeightKg,
				MaxWeightKg: p.SizeSuitability.MaxWeightKg,
			},
			HealthBenefits:       benefits,
			BreedRecommendations: recs,
		},
		PromotionalPrice: domain.PromotionalPrice(p),
		Savings:          domain.Savings(p),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func productsToJSON(products []domain.Product) []productResponse {
	return mapSlice(products, productToJSON)
}

func (p productJSON) toInput() domain.ProductInput {
	benefits := make([]domain.HealthBenefit, 0, len(p.HealthBenefits))
	for _, b := range p.HealthBenefits {
		benefits = append(benefits, domain.HealthBenefit{
			HealthConditionID: b.HealthConditionID,
			HealthCondition:   b.HealthCondition,
			Description:       b.Description,
		})
	}
	recs := make([]domain.BreedRecommendation, 0, len(p.BreedRecommendations))
	for _, r := range p.BreedRecommendations {
		recs = append(recs, domain.BreedRecommendation{
			BreedID:  r.BreedID,
			Breed:    r.Breed,
			Strength: r.Strength,
			Reason:   r.Reason,
		})
	}

	return domain.ProductInput{
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
		HealthBenefits:       benefits,
		BreedRecommendations: recs,
	}
}

func catalogToJSON(resp *browse_catalog.Response) catalogResponse {
	return catalogResponse{
		Products:    productsToJSON(resp.Products),
		Empty:       resp.Empty,
		Total:       resp.Total,
		PriceBounds: priceRangeToJSON(resp.PriceBounds),
		Vendors:     nonNil(resp.Vendors),
		Criteria: criteriaJSON{
			Price:           criteriaPriceToJSON(resp.Criteria.Price),
			Breed:           resp.Criteria.Breed,
			Size:            string(resp.Criteria.Size),
			Vendors:         nonNil(resp.Criteria.Vendors),
			PromotionalOnly: resp.Criteria.PromotionalOnly,
		},
		Sort: string(resp.Sort),
	}
}

func priceRangeToJSON(r domain.PriceRange) priceRangeJSON {
	return priceRangeJSON{Min: r.Min, Max: r.Max}
}

func criteriaPriceToJSON(r domain.PriceRange) criteriaPriceJSON {
	out := criteriaPriceJSON{Min: r.Min}
	if !r.IsUnbounded() {
		out.Max = &r.Max
	}
	return out
}

func (d dogRequest) toInput() (domain.DogInput, error) {
	if err := domain.ValidateDogParts(d.AgeMonths, d.WeightOunces); err != nil {
		return domain.DogInput{}, err
	}
	in := domain.DogInput{
		Name:             d.Name,
		Breed:            d.Breed,
		SizeVariation:    d.SizeVariation,
		Age:              domain.AgeFromParts(d.AgeYears, d.AgeMonths),
		Weight:           domain.WeightFromParts(d.WeightPounds, d.WeightOunces),
		ActivityLevel:    domain.DefaultActivityLevel,
		Image:            d.Image,
		HealthConditions: d.HealthConditions,
	}
	if d.Age != nil {
		in.Age = *d.Age
	}
	if d.Weight != nil {
		in.Weight = *d.Weight
	}
	if d.ActivityLevel != nil {
		in.ActivityLevel = *d.ActivityLevel
	}
	return in, nil
}

func dogToJSON(d domain.Dog) dogResponse {
	years, months := domain.SplitAge(d.Age)
	pounds, ounces := domain.SplitWeight(d.Weight)
	return dogResponse{
		ID:               d.ID,
		Name:             d.Name,
		Breed:            d.Breed,
		SizeVariation:    d.SizeVariation,
		Age:              d.Age,
		AgeYears:         years,
		AgeMonths:        months,
		Weight:           d.Weight,
		WeightPounds:     pounds,
		WeightOunces:     ounces,
		ActivityLevel:    d.ActivityLevel,
		Image:            d.Image,
		HealthConditions: nonNil(d.HealthConditions),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func reviewToJSON(r domain.Review) reviewResponse {
	return reviewResponse{
		ID:               r.ID,
		ProductID:        r.ProductID,
		UserName:         r.UserName,
		Rating:           r.Rating,
		Title:            r.Title,
		Comment:          r.Comment,
		HelpfulCount:     r.HelpfulCount,
		VerifiedPurchase: r.VerifiedPurchase,
		CreatedAt:        r.CreatedAt,
	}
}

func breedToJSON(b domain.Breed) breedJSON {
	variations := make([]sizeVariationJSON, 0, len(b.SizeVariations))
	for _, v := range b.SizeVariations {
		variations = append(variations, sizeVariationJSON{
			ID:           v.ID,
			SizeCategory: v.SizeCategory,
			Description:  v.Description,
		})
	}
	return breedJSON{
		ID:                b.ID,
		Name:              b.Name,
		SizeCategory:      string(b.SizeCategory),
		HasSizeVariations: b.HasSizeVariations,
		SizeVariations:    variations,
	}
}

func categoryToJSON(c domain.Category) categoryJSON {
	return categoryJSON{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}

func suggestionToJSON(s domain.Suggestion) suggestionJSON {
	return suggestionJSON{Type: string(s.Kind), ID: s.ID, Name: s.Name}
}

func mapSlice[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
