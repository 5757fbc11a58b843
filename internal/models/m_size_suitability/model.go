package m_size_suitability

import "cloud.google.com/go/spanner"

// Table and field name constants for product_size_suitability.
const (
	TableName = "product_size_suitability"

	ProductID         = "product_id"
	SuitableForSmall  = "suitable_for_small"
	SuitableForMedium = "suitable_for_medium"
	SuitableForLarge  = "suitable_for_large"
	SuitableForGiant  = "suitable_for_giant"
	MinWeightKg       = "min_weight_kg"
	MaxWeightKg       = "max_weight_kg"
)

// Data is one size suitability row. A product has at most one.
type Data struct {
	ProductID         string              `spanner:"product_id"`
	SuitableForSmall  spanner.NullBool    `spanner:"suitable_for_small"`
	SuitableForMedium spanner.NullBool    `spanner:"suitable_for_medium"`
	SuitableForLarge  spanner.NullBool    `spanner:"suitable_for_large"`
	SuitableForGiant  spanner.NullBool    `spanner:"suitable_for_giant"`
	MinWeightKg       spanner.NullFloat64 `spanner:"min_weight_kg"`
	MaxWeightKg       spanner.NullFloat64 `spanner:"max_weight_kg"`
}

// Model provides mutations for product_size_suitability.
type Model struct{}

// NewModel creates a new size suitability model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a size suitability row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// DeleteForProductMut removes the size suitability row of a product.
func (m *Model) DeleteForProductMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID}.AsPrefix())
}

// ReadColumns returns the columns embedded into product reads.
func (m *Model) ReadColumns() []string {
	return []string{SuitableForSmall, SuitableForMedium, SuitableForLarge, SuitableForGiant, MinWeightKg, MaxWeightKg}
}
