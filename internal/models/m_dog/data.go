package m_dog

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the dogs table.
type Data struct {
	DogID              string             `spanner:"dog_id"`
	UserID             string             `spanner:"user_id"`
	Name               string             `spanner:"name"`
	Breed              string             `spanner:"breed"`
	BreedSizeVariation spanner.NullString `spanner:"breed_size_variation"`
	Age                float64            `spanner:"age"`
	Weight             float64            `spanner:"weight"`
	ActivityLevel      int64              `spanner:"activity_level"`
	Image              spanner.NullString `spanner:"image"`
	HealthConditions   []string           `spanner:"health_conditions"`
	CreatedAt          time.Time          `spanner:"created_at"`
	UpdatedAt          time.Time          `spanner:"updated_at"`
}
