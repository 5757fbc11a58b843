package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID        = "product_id"
	Name             = "name"
	Description      = "description"
	Price            = "price"
	Rating           = "rating"
	Popularity       = "popularity"
	Discount         = "discount"
	Vendor           = "vendor"
	CategoryID       = "category_id"
	Image            = "image"
	AdditionalImages = "additional_images"
	Tags             = "tags"
	Ingredients      = "ingredients"
	NutritionalInfo  = "nutritional_info"
	Features         = "features"
	SafetyWarnings   = "safety_warnings"
	AffiliateType    = "affiliate_type"
	AffiliateLink    = "affiliate_link"
	IsBlackFriday    = "is_black_friday"
	BlackFridayPrice = "black_friday_price"
	PromotionType    = "promotion_type"
	CreatedAt        = "created_at"
	UpdatedAt        = "updated_at"
)

// Columns lists every products column in table order.
var Columns = []string{
	ProductID,
	Name,
	Description,
	Price,
	Rating,
	Popularity,
	Discount,
	Vendor,
	CategoryID,
	Image,
	AdditionalImages,
	Tags,
	Ingredients,
	NutritionalInfo,
	Features,
	SafetyWarnings,
	AffiliateType,
	AffiliateLink,
	IsBlackFriday,
	BlackFridayPrice,
	PromotionType,
	CreatedAt,
	UpdatedAt,
}
