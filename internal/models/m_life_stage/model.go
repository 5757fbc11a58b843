package m_life_stage

import "cloud.google.com/go/spanner"

// Table and field name constants for product_life_stages.
const (
	TableName = "product_life_stages"

	ProductID         = "product_id"
	SuitableForPuppy  = "suitable_for_puppy"
	SuitableForAdult  = "suitable_for_adult"
	SuitableForSenior = "suitable_for_senior"
	MinAgeMonths      = "min_age_months"
	MaxAgeMonths      = "max_age_months"
)

// Data is one life stage row. A product has at most one.
type Data struct {
	ProductID         string            `spanner:"product_id"`
	SuitableForPuppy  spanner.NullBool  `spanner:"suitable_for_puppy"`
	SuitableForAdult  spanner.NullBool  `spanner:"suitable_for_adult"`
	SuitableForSenior spanner.NullBool  `spanner:"suitable_for_senior"`
	MinAgeMonths      spanner.NullInt64 `spanner:"min_age_months"`
	MaxAgeMonths      spanner.NullInt64 `spanner:"max_age_months"`
}

// Model provides mutations for product_life_stages.
type Model struct{}

// NewModel creates a new life stage model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a life stage row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// DeleteForProductMut removes the life stage row of a product.
func (m *Model) DeleteForProductMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID}.AsPrefix())
}

// ReadColumns returns the columns embedded into product reads.
func (m *Model) ReadColumns() []string {
	return []string{SuitableForPuppy, SuitableForAdult, SuitableForSenior, MinAgeMonths, MaxAgeMonths}
}
