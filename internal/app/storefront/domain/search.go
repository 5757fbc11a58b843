package domain

import "strings"

// SuggestionKind tells the search box what a suggestion links to.
type SuggestionKind string

const (
	SuggestionAll     SuggestionKind = "all"
	SuggestionBreed   SuggestionKind = "breed"
	SuggestionProduct SuggestionKind = "product"
)

// Search suggestion limits.
const (
	MinSuggestionQueryLength = 2
	SuggestionsPerKind       = 5
)

// Suggestion is one entry of the search box dropdown.
type Suggestion struct {
	Kind SuggestionKind
	ID   string
	Name string
}

// ParseSuggestionKind accepts all, breed or product; empty means all.
func ParseSuggestionKind(s string) (SuggestionKind, error) {
	k := SuggestionKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "":
		return SuggestionAll, nil
	case SuggestionAll, SuggestionBreed, SuggestionProduct:
		return k, nil
	default:
		return "", ErrInvalidSuggestionType
	}
}

// SuggestionQuery trims q and reports whether it is long enough to search.
func SuggestionQuery(q string) (string, bool) {
	q = strings.TrimSpace(q)
	return q, len([]rune(q)) >= MinSuggestionQueryLength
}
