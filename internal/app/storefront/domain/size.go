package domain

import "strings"

// SizeCategory is the size a shopper selects for their dog.
type SizeCategory string

const (
	SizeAny    SizeCategory = ""
	SizeToy    SizeCategory = "toy"
	SizeMini   SizeCategory = "mini"
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
	SizeGiant  SizeCategory = "giant"
)

// SizeClass is the coarser grouping products declare suitability for.
type SizeClass string

const (
	SizeClassNone   SizeClass = ""
	SizeClassSmall  SizeClass = "small"
	SizeClassMedium SizeClass = "medium"
	SizeClassLarge  SizeClass = "large"
	SizeClassGiant  SizeClass = "giant"
)

// ParseSizeCategory accepts a size name case-insensitively.
// An empty string is SizeAny.
func ParseSizeCategory(s string) (SizeCategory, error) {
	c := SizeCategory(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case SizeAny, SizeToy, SizeMini, SizeSmall, SizeMedium, SizeLarge, SizeGiant:
		return c, nil
	default:
		return SizeAny, ErrInvalidSize
	}
}

// Class maps a size category to the suitability flag it is checked against.
// Toy and mini dogs shop in the small class.
func (c SizeCategory) Class() SizeClass {
	switch c {
	case SizeToy, SizeMini, SizeSmall:
		return SizeClassSmall
	case SizeMedium:
		return SizeClassMedium
	case SizeLarge:
		return SizeClassLarge
	case SizeGiant:
		return SizeClassGiant
	default:
		return SizeClassNone
	}
}

// SizeCategoryForWeight picks the size category for a weight in pounds.
func SizeCategoryForWeight(pounds float64) SizeCategory {
	switch {
	case pounds <= 4:
		return SizeToy
	case pounds <= 12:
		return SizeMini
	case pounds <= 25:
		return SizeSmall
	case pounds <= 50:
		return SizeMedium
	case pounds <= 90:
		return SizeLarge
	default:
		return SizeGiant
	}
}
