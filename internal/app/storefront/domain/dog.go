package domain

import (
	"strings"
	"time"
)

// Dog validation bounds.
const (
	MinDogAge            = 0.0
	MaxDogAge            = 30.0
	MinDogWeight         = 0.5
	MaxDogWeight         = 200.0
	MinActivityLevel     = 1
	MaxActivityLevel     = 10
	DefaultActivityLevel = 5
	MaxAgeMonths         = monthsPerYear - 1
	MaxWeightOunces      = ouncesPerPound - 1
)

// Dog is a pet profile owned by one user.
// Age is in fractional years and Weight in fractional pounds.
type Dog struct {
	ID               string
	UserID           string
	Name             string
	Breed            string
	SizeVariation    string
	Age              float64
	Weight           float64
	ActivityLevel    int64
	Image            string
	HealthConditions []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DogInput is the editable part of a dog profile.
type DogInput struct {
	Name             string
	Breed            string
	SizeVariation    string
	Age              float64
	Weight           float64
	ActivityLevel    int64
	Image            string
	HealthConditions []string
}

// Trimmed returns a copy with surrounding whitespace removed from text fields.
func (in DogInput) Trimmed() DogInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.SizeVariation = strings.TrimSpace(in.SizeVariation)
	in.Image = strings.TrimSpace(in.Image)
	return in
}

// ValidateDogParts checks the months and ounces of an age and weight entered
// as parts. Out of range parts are rejected rather than carried over.
func ValidateDogParts(months, ounces int) error {
	verr := NewValidationError()
	if months < 0 || months > MaxAgeMonths {
		verr.Add("age_months", "Months must be between 0 and 11")
	}
	if ounces < 0 || ounces > MaxWeightOunces {
		verr.Add("weight_oz", "Ounces must be between 0 and 15")
	}
	return verr.OrNil()
}

// ValidateDog checks a dog form. breed may be nil when the breed is not in
// the reference table; the size variation requirement only applies to known
// breeds that come in several sizes.
func ValidateDog(in DogInput, breed *Breed) error {
	verr := NewValidationError()

	if strings.TrimSpace(in.Name) == "" {
		verr.Add("name", "Name is required")
	}
	if strings.TrimSpace(in.Breed) == "" {
		verr.Add("breed", "Breed is required")
	}
	if breed != nil && breed.HasSizeVariations && strings.TrimSpace(in.SizeVariation) == "" {
		verr.Add("breed_size_variation", "Size variation is required for this breed")
	}
	if in.Age < MinDogAge || in.Age > MaxDogAge {
		verr.Add("age", "Age must be between 0 and 30 years")
	}
	if in.Weight < MinDogWeight || in.Weight > MaxDogWeight {
		verr.Add("weight", "Weight must be between 0.5 and 200 lbs")
	}
	if in.ActivityLevel < MinActivityLevel || in.ActivityLevel > MaxActivityLevel {
		verr.Add("activity_level", "Activity level must be between 1 and 10")
	}

	return verr.OrNil()
}

// CriteriaForDog pre-fills the breed and size filters from a dog profile.
// The breed's size variation wins when it names a known size; otherwise the
// size comes from the dog's weight. The price range is left unbounded.
func CriteriaForDog(d Dog) Criteria {
	size, err := ParseSizeCategory(d.SizeVariation)
	if err != nil || size == SizeAny {
		size = SizeCategoryForWeight(d.Weight)
	}
	return Criteria{
		Price: Unbounded,
		Breed: d.Breed,
		Size:  size,
	}
}
