package m_dog

// Field name constants for the dogs table.
const (
	TableName = "dogs"

	DogID              = "dog_id"
	UserID             = "user_id"
	Name               = "name"
	Breed              = "breed"
	BreedSizeVariation = "breed_size_variation"
	Age                = "age"
	Weight             = "weight"
	ActivityLevel      = "activity_level"
	Image              = "image"
	HealthConditions   = "health_conditions"
	CreatedAt          = "created_at"
	UpdatedAt          = "updated_at"
)
