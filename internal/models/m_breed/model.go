package m_breed

import "cloud.google.com/go/spanner"

// Table and field name constants for dog_breeds.
const (
	TableName = "dog_breeds"

	BreedID           = "breed_id"
	Name              = "name"
	SizeCategory      = "size_category"
	HasSizeVariations = "has_size_variations"
)

// Data is one breed row.
type Data struct {
	BreedID           string             `spanner:"breed_id"`
	Name              string             `spanner:"name"`
	SizeCategory      spanner.NullString `spanner:"size_category"`
	HasSizeVariations bool               `spanner:"has_size_variations"`
}

// Model provides mutations for dog_breeds.
type Model struct{}

// NewModel creates a new breed model.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut inserts or replaces a breed.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertOrUpdateStruct(TableName, data)
	return mut
}

// ReadColumns returns the breed columns.
func (m *Model) ReadColumns() []string {
	return []string{BreedID, Name, SizeCategory, HasSizeVariations}
}
