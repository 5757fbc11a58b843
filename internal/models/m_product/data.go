package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
// Nullable columns use the spanner Null types so that a missing value
// survives the read and reaches normalization as "absent".
type Data struct {
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
}
