package domain

import (
	"errors"
	"sort"
	"strings"
)

// Domain errors as sentinel values
var (
	// Catalog errors
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrFetchFailed      = errors.New("failed to load products")
	ErrInvalidSortKey   = errors.New("unknown sort key")
	ErrInvalidSize      = errors.New("unknown size category")
	ErrInvalidPrice     = errors.New("price range is invalid")

	// Dog profile errors
	ErrDogNotFound   = errors.New("dog not found")
	ErrBreedNotFound = errors.New("breed not found")
	ErrMissingUser   = errors.New("user id is required")

	// Review errors
	ErrReviewNotFound = errors.New("review not found")

	// Search errors
	ErrInvalidSuggestionType = errors.New("suggestion type must be all, breed or product")
)

// ValidationError collects per-field form errors.
// Keys are the form field names, values are user facing messages.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns an empty ValidationError ready to collect fields.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for field. The first message for a field wins.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = message
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns nil when nothing failed, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
