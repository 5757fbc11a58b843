package create_category

import (
	"context"
	"strings"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Request contains the category form. ID is derived from the name when empty.
type Request struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// Interactor handles the create category use case.
type Interactor struct {
	categories contracts.CategoryRepository
}

// NewInteractor creates a new create category interactor.
func NewInteractor(categories contracts.CategoryRepository) *Interactor {
	return &Interactor{categories: categories}
}

// Execute validates and stores a category.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Category, error) {
	id := Slug(req.ID)
	if id == "" {
		id = Slug(req.Name)
	}

	category, err := domain.NewCategory(id, req.Name, req.Description, req.Icon)
	if err != nil {
		return domain.Category{}, err
	}

	if err := i.categories.CreateCategory(ctx, category); err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

// Slug lowercases s and joins its words with dashes, e.g. "Toys & Fun" -> "toys-fun".
func Slug(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	return strings.Join(words, "-")
}
