package update_product

import (
	"context"
	"time"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

// Request contains the product to overwrite and the full admin form.
type Request struct {
	ProductID string
	Input     domain.ProductInput
}

// Interactor handles the update product use case.
type Interactor struct {
	repo  contracts.ProductRepository
	clock clock.Clock
}

// NewInteractor creates a new update product interactor.
func NewInteractor(repo contracts.ProductRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		repo:  repo,
		clock: clock,
	}
}

// Execute replaces the product row and every nested row in one commit.
// The creation time is kept by the store.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Product, error) {
	if err := domain.ValidateProductInput(req.Input); err != nil {
		return domain.Product{}, err
	}

	product := req.Input.ToProduct(req.ProductID, time.Time{}, i.clock.Now())
	if err := i.repo.Update(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}
