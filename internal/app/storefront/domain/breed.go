package domain

import "strings"

// Breed is a dog breed from the reference table.
type Breed struct {
	ID                string
	Name              string
	SizeCategory      SizeCategory
	HasSizeVariations bool
	SizeVariations    []SizeVariation
}

// SizeVariation is one size a breed comes in, e.g. toy or standard poodle.
type SizeVariation struct {
	ID           string
	SizeCategory string
	Description  string
}

// Category groups products on the storefront.
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// DefaultCategoryIcon is used when a category is saved without an icon.
const DefaultCategoryIcon = "Package"

// NewCategory trims the category form and applies the default icon.
func NewCategory(id, name, description, icon string) (Category, error) {
	c := Category{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Icon:        strings.TrimSpace(icon),
	}
	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}
	if c.Name == "" {
		verr := NewValidationError()
		verr.Add("name", "Category name is required")
		return Category{}, verr
	}
	return c, nil
}
