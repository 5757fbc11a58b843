package delete_product

import (
	"context"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
)

// Request identifies the product to delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo contracts.ProductRepository
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(repo contracts.ProductRepository) *Interactor {
	return &Interactor{repo: repo}
}

// Execute removes the product; nested rows and reviews go with it.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	return i.repo.Delete(ctx, req.ProductID)
}
