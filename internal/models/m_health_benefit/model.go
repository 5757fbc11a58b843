package m_health_benefit

import "cloud.google.com/go/spanner"

// Table and field name constants for product_health_benefits.
const (
	TableName = "product_health_benefits"

	ProductID          = "product_id"
	HealthConditionID  = "health_condition_id"
	BenefitDescription = "benefit_description"
)

// Data is one health benefit row.
type Data struct {
	ProductID          string             `spanner:"product_id"`
	HealthConditionID  string             `spanner:"health_condition_id"`
	BenefitDescription spanner.NullString `spanner:"benefit_description"`
}

// Model provides mutations for product_health_benefits.
type Model struct{}

// NewModel creates a new health benefit model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a health benefit row.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// DeleteForProductMut removes every health benefit row of a product.
func (m *Model) DeleteForProductMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID}.AsPrefix())
}

// ReadColumns returns the columns embedded into product reads.
func (m *Model) ReadColumns() []string {
	return []string{HealthConditionID, BenefitDescription}
}
