package repo

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_breed"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_breed_recommendation"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_health_benefit"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_health_condition"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_life_stage"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_product"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_size_suitability"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/query"
)

// Aliases of the embedded relation columns in product reads.
const (
	relLifeStages           = "life_stages"
	relSizeSuitability      = "size_suitability"
	relHealthBenefits       = "health_benefits"
	relBreedRecommendations = "breed_recommendations"
)

// productRow is a products row with its relations embedded as arrays.
type productRow struct {
	ProductID        string              `spanner:"product_id"`
	Name             spanner.NullString  `spanner:"name"`
	Description      spanner.NullString  `spanner:"description"`
	Price            spanner.NullNumeric `spanner:"price"`
	Rating           spanner.NullFloat64 `spanner:"rating"`
	Popularity       spanner.NullFloat64 `spanner:"popularity"`
	Discount         spanner.NullInt64   `spanner:"discount"`
	Vendor           spanner.NullString  `spanner:"vendor"`
	CategoryID       spanner.NullString  `spanner:"category_id"`
	Image            spanner.NullString  `spanner:"image"`
	AdditionalImages []string            `spanner:"additional_images"`
	Tags             []string            `spanner:"tags"`
	Ingredients      []string            `spanner:"ingredients"`
	NutritionalInfo  spanner.NullString  `spanner:"nutritional_info"`
	Features         []string            `spanner:"features"`
	SafetyWarnings   []string            `spanner:"safety_warnings"`
	AffiliateType    spanner.NullString  `spanner:"affiliate_type"`
	AffiliateLink    spanner.NullString  `spanner:"affiliate_link"`
	IsBlackFriday    spanner.NullBool    `spanner:"is_black_friday"`
	BlackFridayPrice spanner.NullNumeric `spanner:"black_friday_price"`
	PromotionType    spanner.NullString  `spanner:"promotion_type"`
	CreatedAt        time.Time           `spanner:"created_at"`
	UpdatedAt        time.Time           `spanner:"updated_at"`

	LifeStages           []*lifeStageRow       `spanner:"life_stages"`
	SizeSuitability      []*sizeSuitabilityRow `spanner:"size_suitability"`
	HealthBenefits       []*healthBenefitRow   `spanner:"health_benefits"`
	BreedRecommendations []*breedRecRow        `spanner:"breed_recommendations"`
}

type lifeStageRow struct {
	SuitableForPuppy  spanner.NullBool  `spanner:"suitable_for_puppy"`
	SuitableForAdult  spanner.NullBool  `spanner:"suitable_for_adult"`
	SuitableForSenior spanner.NullBool  `spanner:"suitable_for_senior"`
	MinAgeMonths      spanner.NullInt64 `spanner:"min_age_months"`
	MaxAgeMonths      spanner.NullInt64 `spanner:"max_age_months"`
}

type sizeSuitabilityRow struct {
	SuitableForSmall  spanner.NullBool    `spanner:"suitable_for_small"`
	SuitableForMedium spanner.NullBool    `spanner:"suitable_for_medium"`
	SuitableForLarge  spanner.NullBool    `spanner:"suitable_for_large"`
	SuitableForGiant  spanner.NullBool    `spanner:"suitable_for_giant"`
	MinWeightKg       spanner.NullFloat64 `spanner:"min_weight_kg"`
	MaxWeightKg       spanner.NullFloat64 `spanner:"max_weight_kg"`
}

type healthBenefitRow struct {
	HealthConditionID  string             `spanner:"health_condition_id"`
	BenefitDescription spanner.NullString `spanner:"benefit_description"`
	HealthCondition    spanner.NullString `spanner:"health_condition"`
}

type breedRecRow struct {
	BreedID                string             `spanner:"breed_id"`
	RecommendationStrength spanner.NullInt64  `spanner:"recommendation_strength"`
	RecommendationReason   spanner.NullString `spanner:"recommendation_reason"`
	BreedName              spanner.NullString `spanner:"breed_name"`
}

// productQuery selects products with every nested relation embedded.
func productQuery() *query.Builder {
	lifeStages := query.Nested(relLifeStages, m_life_stage.TableName, m_life_stage.ProductID).
		Select(m_life_stage.NewModel().ReadColumns()...)

	sizes := query.Nested(relSizeSuitability, m_size_suitability.TableName, m_size_suitability.ProductID).
		Select(m_size_suitability.NewModel().ReadColumns()...)

	benefits := query.Nested(relHealthBenefits, m_health_benefit.TableName, m_health_benefit.ProductID).
		Select(m_health_benefit.NewModel().ReadColumns()...).
		LeftJoin(m_health_condition.TableName, m_health_condition.HealthConditionID, m_health_condition.Name+" AS health_condition")

	breeds := query.Nested(relBreedRecommendations, m_breed_recommendation.TableName, m_breed_recommendation.ProductID).
		Select(m_breed_recommendation.NewModel().ReadColumns()...).
		LeftJoin(m_breed.TableName, m_breed.BreedID, m_breed.Name+" AS breed_name").
		OrderBy(m_breed_recommendation.RecommendationStrength, query.Desc)

	return query.From(m_product.TableName).
		Select(m_product.Columns...).
		Embed(lifeStages).
		Embed(sizes).
		Embed(benefits).
		Embed(breeds)
}

func decodeProduct(row *spanner.Row) (domain.RawProduct, error) {
	var r productRow
	if err := row.ToStruct(&r); err != nil {
		return domain.RawProduct{}, err
	}
	return r.toRaw(), nil
}

// toRaw keeps NULLs as nil; defaults are applied later by domain.Normalize.
func (r *productRow) toRaw() domain.RawProduct {
	raw := domain.RawProduct{
		ID:               r.ProductID,
		Name:             strPtr(r.Name),
		Description:      strPtr(r.Description),
		Price:            numericPtr(r.Price),
		Rating:           floatPtr(r.Rating),
		Popularity:       floatPtr(r.Popularity),
		Discount:         intPtr(r.Discount),
		Vendor:           strPtr(r.Vendor),
		CategoryID:       strPtr(r.CategoryID),
		Image:            strPtr(r.Image),
		AdditionalImages: r.AdditionalImages,
		Tags:             r.Tags,
		Ingredients:      r.Ingredients,
		NutritionalInfo:  strPtr(r.NutritionalInfo),
		Features:         r.Features,
		SafetyWarnings:   r.SafetyWarnings,
		AffiliateType:    strPtr(r.AffiliateType),
		AffiliateLink:    strPtr(r.AffiliateLink),
		IsBlackFriday:    boolPtr(r.IsBlackFriday),
		BlackFridayPrice: numericPtr(r.BlackFridayPrice),
		PromotionType:    strPtr(r.PromotionType),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}

	if len(r.LifeStages) > 0 && r.LifeStages[0] != nil {
		ls := r.LifeStages[0]
		raw.LifeStages = &domain.RawLifeStages{
			Puppy:        boolPtr(ls.SuitableForPuppy),
			Adult:        boolPtr(ls.SuitableForAdult),
			Senior:       boolPtr(ls.SuitableForSenior),
			MinAgeMonths: intPtr(ls.MinAgeMonths),
			MaxAgeMonths: intPtr(ls.MaxAgeMonths),
		}
	}

	if len(r.SizeSuitability) > 0 && r.SizeSuitability[0] != nil {
		ss := r.SizeSuitability[0]
		raw.SizeSuitability = &domain.RawSizeSuitability{
			Small:       boolPtr(ss.SuitableForSmall),
			Medium:      boolPtr(ss.SuitableForMedium),
			Large:       boolPtr(ss.SuitableForLarge),
			Giant:       boolPtr(ss.SuitableForGiant),
			MinWeightKg: floatPtr(ss.MinWeightKg),
			MaxWeightKg: floatPtr(ss.MaxWeightKg),
		}
	}

	for _, hb := range r.HealthBenefits {
		if hb == nil {
			continue
		}
		raw.HealthBenefits = append(raw.HealthBenefits, domain.HealthBenefit{
			HealthConditionID: hb.HealthConditionID,
			HealthCondition:   hb.HealthCondition.StringVal,
			Description:       hb.BenefitDescription.StringVal,
		})
	}

	for _, br := range r.BreedRecommendations {
		if br == nil {
			continue
		}
		raw.BreedRecommendations = append(raw.BreedRecommendations, domain.BreedRecommendation{
			BreedID:  br.BreedID,
			Breed:    br.BreedName.StringVal,
			Strength: br.RecommendationStrength.Int64,
			Reason:   br.RecommendationReason.StringVal,
		})
	}

	return raw
}

// productToData maps a normalized product to the products row.
func productToData(p domain.Product) *m_product.Data {
	price := p.Price
	rating := p.Rating
	popularity := p.Popularity
	return &m_product.Data{
		ProductID:        p.ID,
		Name:             nullString(p.Name),
		Description:      nullString(p.Description),
		Price:            nullNumeric(&price),
		Rating:           nullFloat(&rating),
		Popularity:       nullFloat(&popularity),
		Discount:         spanner.NullInt64{Int64: p.Discount, Valid: true},
		Vendor:           nullString(p.Vendor),
		CategoryID:       nullString(p.CategoryID),
		Image:            nullString(p.Image),
		AdditionalImages: p.AdditionalImages,
		Tags:             p.Tags,
		Ingredients:      p.Ingredients,
		NutritionalInfo:  nullString(p.NutritionalInfo),
		Features:         p.Features,
		SafetyWarnings:   p.SafetyWarnings,
		AffiliateType:    nullString(p.AffiliateType),
		AffiliateLink:    nullString(p.AffiliateLink),
		IsBlackFriday:    spanner.NullBool{Bool: p.IsBlackFriday, Valid: true},
		BlackFridayPrice: nullNumeric(p.BlackFridayPrice),
		PromotionType:    nullString(p.PromotionType),
	}
}

// relationMuts returns the inserts for every nested row of p.
func relationMuts(p domain.Product) []*spanner.Mutation {
	muts := []*spanner.Mutation{
		m_life_stage.NewModel().InsertMut(&m_life_stage.Data{
			ProductID:         p.ID,
			SuitableForPuppy:  spanner.NullBool{Bool: p.LifeStages.Puppy, Valid: true},
			SuitableForAdult:  spanner.NullBool{Bool: p.LifeStages.Adult, Valid: true},
			SuitableForSenior: spanner.NullBool{Bool: p.LifeStages.Senior, Valid: true},
			MinAgeMonths:      nullInt(p.LifeStages.MinAgeMonths),
			MaxAgeMonths:      nullInt(p.LifeStages.MaxAgeMonths),
		}),
		m_size_suitability.NewModel().InsertMut(&m_size_suitability.Data{
			ProductID:         p.ID,
			SuitableForSmall:  spanner.NullBool{Bool: p.SizeSuitability.Small, Valid: true},
			SuitableForMedium: spanner.NullBool{Bool: p.SizeSuitability.Medium, Valid: true},
			SuitableForLarge:  spanner.NullBool{Bool: p.SizeSuitability.Large, Valid: true},
			SuitableForGiant:  spanner.NullBool{Bool: p.SizeSuitability.Giant, Valid: true},
			MinWeightKg:       nullFloat(p.SizeSuitability.MinWeightKg),
			MaxWeightKg:       nullFloat(p.SizeSuitability.MaxWeightKg),
		}),
	}

	benefits := m_health_benefit.NewModel()
	for _, hb := range p.HealthBenefits {
		muts = append(muts, benefits.InsertMut(&m_health_benefit.Data{
			ProductID:          p.ID,
			HealthConditionID:  hb.HealthConditionID,
			BenefitDescription: nullString(hb.Description),
		}))
	}

	recs := m_breed_recommendation.NewModel()
	for _, br := range p.BreedRecommendations {
		muts = append(muts, recs.InsertMut(&m_breed_recommendation.Data{
			ProductID:              p.ID,
			BreedID:                br.BreedID,
			RecommendationStrength: spanner.NullInt64{Int64: br.Strength, Valid: true},
			RecommendationReason:   nullString(br.Reason),
		}))
	}

	return muts
}

// clearRelationMuts deletes every nested row of a product.
func clearRelationMuts(productID string) []*spanner.Mutation {
	return []*spanner.Mutation{
		m_life_stage.NewModel().DeleteForProductMut(productID),
		m_size_suitability.NewModel().DeleteForProductMut(productID),
		m_health_benefit.NewModel().DeleteForProductMut(productID),
		m_breed_recommendation.NewModel().DeleteForProductMut(productID),
	}
}
