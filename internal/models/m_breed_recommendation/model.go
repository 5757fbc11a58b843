package m_breed_recommendation

import "cloud.google.com/go/spanner"

// Table and field name constants for product_breed_recommendations.
const (
	TableName = "product_breed_recommendations"

	ProductID              = "product_id"
	BreedID                = "breed_id"
	RecommendationStrength = "recommendation_strength"
	RecommendationReason   = "recommendation_reason"
)

// Data is one breed recommendation row.
type Data struct {
	ProductID              string             `spanner:"product_id"`
	BreedID                string             `spanner:"breed_id"`
	RecommendationStrength spanner.NullInt64  `spanner:"recommendation_strength"`
	RecommendationReason   spanner.NullString `spanner:"recommendation_reason"`
}

// Model provides mutations for product_breed_recommendations.
type Model struct{}

// NewModel creates a new breed recommendation model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a breed recommendation row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// DeleteForProductMut removes every breed recommendation row of a product.
func (m *Model) DeleteForProductMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID}.AsPrefix())
}

// ReadColumns returns the columns embedded into product reads.
func (m *Model) ReadColumns() []string {
	return []string{BreedID, RecommendationStrength, RecommendationReason}
}
