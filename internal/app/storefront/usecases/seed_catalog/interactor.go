package seed_catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_category"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_product"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/update_product"
)

// Summary counts what a seed run wrote.
type Summary struct {
	HealthConditions int
	Breeds           int
	Categories       int
	Products         int
}

// Interactor loads fixtures through the admin use cases. Running it twice
// leaves the store in the same state.
type Interactor struct {
	reference      contracts.ReferenceData
	createCategory *create_category.Interactor
	createProduct  *create_product.Interactor
	updateProduct  *update_product.Interactor
	logger         *zap.Logger
}

// NewInteractor creates a new seed interactor.
func NewInteractor(
	reference contracts.ReferenceData,
	createCategory *create_category.Interactor,
	createProduct *create_product.Interactor,
	updateProduct *update_product.Interactor,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		reference:      reference,
		createCategory: createCategory,
		createProduct:  createProduct,
		updateProduct:  updateProduct,
		logger:         logger,
	}
}

// Execute writes lookup rows first, then categories, then products.
func (i *Interactor) Execute(ctx context.Context, f *Fixtures) (Summary, error) {
	var s Summary

	for _, hc := range f.HealthConditions {
		if err := i.reference.UpsertHealthCondition(ctx, hc.ID, hc.Name); err != nil {
			return s, err
		}
		s.HealthConditions++
	}

	for _, b := range f.Breeds {
		if err := i.reference.UpsertBreed(ctx, b.Breed()); err != nil {
			return s, err
		}
		s.Breeds++
	}

	for _, c := range f.Categories {
		_, err := i.createCategory.Execute(ctx, &create_category.Request{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
		})
		var verr *domain.ValidationError
		if errors.As(err, &verr) && verr.Fields["id"] != "" {
			i.logger.Info("category already exists", zap.String("category_id", c.ID))
			continue
		}
		if err != nil {
			return s, fmt.Errorf("category %q: %w", c.ID, err)
		}
		s.Categories++
	}

	for _, p := range f.Products {
		if err := i.upsertProduct(ctx, p); err != nil {
			return s, fmt.Errorf("product %q: %w", p.ID, err)
		}
		s.Products++
	}

	i.logger.Info("catalog seeded",
		zap.Int("health_conditions", s.HealthConditions),
		zap.Int("breeds", s.Breeds),
		zap.Int("categories", s.Categories),
		zap.Int("products", s.Products),
	)
	return s, nil
}

func (i *Interactor) upsertProduct(ctx context.Context, p ProductFixture) error {
	if p.ID == "" {
		_, err := i.createProduct.Execute(ctx, &create_product.Request{Input: p.Input()})
		return err
	}

	_, err := i.updateProduct.Execute(ctx, &update_product.Request{ProductID: p.ID, Input: p.Input()})
	if !errors.Is(err, domain.ErrProductNotFound) {
		return err
	}
	_, err = i.createProduct.Execute(ctx, &create_product.Request{ProductID: p.ID, Input: p.Input()})
	return err
}
