package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDogInput() DogInput {
	return DogInput{
		Name:          "Biscuit",
		Breed:         "Beagle",
		Age:           AgeFromParts(3, 4),
		Weight:        WeightFromParts(22, 8),
		ActivityLevel: DefaultActivityLevel,
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Fields
}

func TestValidateDog(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateDog(validDogInput(), nil))
	})

	tests := []struct {
		name   string
		mutate func(*DogInput)
		field  string
	}{
		{"missing name", func(in *DogInput) { in.Name = "  " }, "name"},
		{"missing breed", func(in *DogInput) { in.Breed = "" }, "breed"},
		{"negative age", func(in *DogInput) { in.Age = -0.1 }, "age"},
		{"age over 30", func(in *DogInput) { in.Age = 30.5 }, "age"},
		{"weight too low", func(in *DogInput) { in.Weight = 0.4 }, "weight"},
		{"weight too high", func(in *DogInput) { in.Weight = 201 }, "weight"},
		{"activity level zero", func(in *DogInput) { in.ActivityLevel = 0 }, "activity_level"},
		{"activity level over 10", func(in *DogInput) { in.ActivityLevel = 11 }, "activity_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validDogInput()
			tt.mutate(&in)

			fields := fieldErrors(t, ValidateDog(in, nil))
			assert.Contains(t, fields, tt.field)
			assert.Len(t, fields, 1)
		})
	}

	t.Run("bounds are inclusive", func(t *testing.T) {
		in := validDogInput()
		in.Age, in.Weight, in.ActivityLevel = 30, 0.5, 10
		assert.NoError(t, ValidateDog(in, nil))

		in.Age, in.Weight, in.ActivityLevel = 0, 200, 1
		assert.NoError(t, ValidateDog(in, nil))
	})

	t.Run("size variation required for breeds with variations", func(t *testing.T) {
		poodle := &Breed{Name: "Poodle", HasSizeVariations: true}
		in := validDogInput()
		in.Breed = "Poodle"

		fields := fieldErrors(t, ValidateDog(in, poodle))
		assert.Equal(t, "Size variation is required for this breed", fields["breed_size_variation"])

		in.SizeVariation = "toy"
		assert.NoError(t, ValidateDog(in, poodle))
	})

	t.Run("collects every failing field", func(t *testing.T) {
		fields := fieldErrors(t, ValidateDog(DogInput{}, nil))
		assert.ElementsMatch(t, []string{"name", "breed", "weight", "activity_level"}, keys(fields))
	})
}

func TestValidateDogParts(t *testing.T) {
	assert.NoError(t, ValidateDogParts(0, 0))
	assert.NoError(t, ValidateDogParts(11, 15))

	tests := []struct {
		name   string
		months int
		ounces int
		fields []string
	}{
		{"months over 11", 30, 0, []string{"age_months"}},
		{"negative months", -1, 0, []string{"age_months"}},
		{"ounces over 15", 0, 16, []string{"weight_oz"}},
		{"negative ounces", 0, -8, []string{"weight_oz"}},
		{"both", 12, -1, []string{"age_months", "weight_oz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := fieldErrors(t, ValidateDogParts(tt.months, tt.ounces))
			assert.Len(t, fields, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, fields, f)
			}
		})
	}
}

func TestDogInput_Trimmed(t *testing.T) {
	in := DogInput{Name: "  Rex ", Breed: " Boxer", SizeVariation: " ", Image: " img.png "}.Trimmed()
	assert.Equal(t, "Rex", in.Name)
	assert.Equal(t, "Boxer", in.Breed)
	assert.Equal(t, "", in.SizeVariation)
	assert.Equal(t, "img.png", in.Image)
}

func TestCriteriaForDog(t *testing.T) {
	t.Run("size from weight", func(t *testing.T) {
		c := CriteriaForDog(Dog{Breed: "Beagle", Weight: 22})
		assert.Equal(t, "Beagle", c.Breed)
		assert.Equal(t, SizeSmall, c.Size)
		assert.Equal(t, Unbounded, c.Price)
		assert.False(t, c.PromotionalOnly)
	})

	t.Run("size variation wins", func(t *testing.T) {
		c := CriteriaForDog(Dog{Breed: "Poodle", SizeVariation: "toy", Weight: 60})
		assert.Equal(t, SizeToy, c.Size)
	})

	t.Run("unknown size variation falls back to weight", func(t *testing.T) {
		c := CriteriaForDog(Dog{Breed: "Poodle", SizeVariation: "standard", Weight: 60})
		assert.Equal(t, SizeLarge, c.Size)
	})
}

func TestValidateReview(t *testing.T) {
	assert.NoError(t, ValidateReview(5, "Great", "My dog loves it"))

	fields := fieldErrors(t, ValidateReview(0, "", " "))
	assert.ElementsMatch(t, []string{"rating", "title", "comment"}, keys(fields))

	fields = fieldErrors(t, ValidateReview(6, "ok", "ok"))
	assert.Contains(t, fields, "rating")
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("c1", "  Toys ", " Chew toys ", "")
	require.NoError(t, err)
	assert.Equal(t, Category{ID: "c1", Name: "Toys", Description: "Chew toys", Icon: DefaultCategoryIcon}, c)

	_, err = NewCategory("c2", " ", "", "Bone")
	assert.Contains(t, fieldErrors(t, err), "name")
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError()
	assert.NoError(t, verr.OrNil())

	verr.Add("name", "first")
	verr.Add("name", "second")
	verr.Add("age", "bad")

	assert.True(t, verr.HasErrors())
	assert.Equal(t, "first", verr.Fields["name"])
	assert.Equal(t, "validation failed: age: bad; name: first", verr.Error())
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
