package m_dog

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the dogs table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a dog.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// UpdateMut overwrites the editable columns of a dog.
// Ownership and creation time are never changed.
func (m *Model) UpdateMut(data *Data) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{DogID, Name, Breed, BreedSizeVariation, Age, Weight, ActivityLevel, Image, HealthConditions, UpdatedAt},
		[]interface{}{
			data.DogID,
			data.Name,
			data.Breed,
			data.BreedSizeVariation,
			data.Age,
			data.Weight,
			data.ActivityLevel,
			data.Image,
			data.HealthConditions,
			data.UpdatedAt,
		},
	)
}

// DeleteMut creates a mutation for deleting a dog.
func (m *Model) DeleteMut(dogID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{dogID})
}

// ReadColumns returns every dogs column.
func (m *Model) ReadColumns() []string {
	return []string{
		DogID, UserID, Name, Breed, BreedSizeVariation, Age, Weight,
		ActivityLevel, Image, HealthConditions, CreatedAt, UpdatedAt,
	}
}
