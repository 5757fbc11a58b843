package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_category"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/committer"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/query"
)

// CategoryRepo implements contracts.CategoryRepository for Spanner.
type CategoryRepo struct {
	reader    *Reader
	committer *committer.Committer
	model     *m_category.Model
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(reader *Reader, c *committer.Committer) contracts.CategoryRepository {
	return &CategoryRepo{
		reader:    reader,
		committer: c,
		model:     m_category.NewModel(),
	}
}

// ListCategories returns every category ordered by name.
func (r *CategoryRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	stmt := query.From(m_category.TableName).
		Select(r.model.ReadColumns()...).
		OrderBy(m_category.Name, query.Asc).
		Build()

	categories, err := queryAll(ctx, r.reader, stmt, decodeCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a category. A duplicate id is a validation error.
func (r *CategoryRepo) CreateCategory(ctx context.Context, category domain.Category) error {
	plan := committer.NewPlan()
	plan.Add(r.model.InsertMut(&m_category.Data{
		CategoryID:  category.ID,
		Name:        category.Name,
		Description: nullString(category.Description),
		Icon:        category.Icon,
	}))

	if err := r.committer.Apply(ctx, plan); err != nil {
		if spanner.ErrCode(err) == codes.AlreadyExists {
			verr := domain.NewValidationError()
			verr.Add("id", "Category already exists")
			return verr
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func decodeCategory(row *spanner.Row) (domain.Category, error) {
	var d m_category.Data
	if err := row.ToStruct(&d); err != nil {
		return domain.Category{}, err
	}
	return domain.Category{
		ID:          d.CategoryID,
		Name:        d.Name,
		Description: d.Description.StringVal,
		Icon:        d.Icon,
	}, nil
}
