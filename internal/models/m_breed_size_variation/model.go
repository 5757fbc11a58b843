package m_breed_size_variation

import "cloud.google.com/go/spanner"

// Table and field name constants for breed_size_variations.
const (
	TableName = "breed_size_variations"

	BreedID         = "breed_id"
	VariationID     = "variation_id"
	SizeCategory    = "size_category"
	SizeDescription = "size_description"
)

// Data is one size variation of a breed.
type Data struct {
	BreedID         string             `spanner:"breed_id"`
	VariationID     string             `spanner:"variation_id"`
	SizeCategory    string             `spanner:"size_category"`
	SizeDescription spanner.NullString `spanner:"size_description"`
}

// Model provides mutations for breed_size_variations.
type Model struct{}

// NewModel creates a new size variation model.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut inserts or replaces a size variation.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the columns embedded into breed reads.
func (m *Model) ReadColumns() []string {
	return []string{VariationID, SizeCategory, SizeDescription}
}
