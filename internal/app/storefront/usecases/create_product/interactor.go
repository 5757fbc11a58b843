package create_product

import (
	"context"

	"github.com/google/uuid"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

// Request contains the admin product form. ProductID is optional and is
// generated when empty.
type Request struct {
	ProductID string
	Input     domain.ProductInput
}

// Interactor handles the create product use case.
type Interactor struct {
	repo  contracts.ProductRepository
	clock clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(repo contracts.ProductRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		repo:  repo,
		clock: clock,
	}
}

// Execute validates the form and stores the product with its nested rows.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Product, error) {
	if err := domain.ValidateProductInput(req.Input); err != nil {
		return domain.Product{}, err
	}

	id := req.ProductID
	if id == "" {
		id = uuid.New().String()
	}
	now := i.clock.Now()
	product := req.Input.ToProduct(id, now, now)

	if err := i.repo.Create(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}
