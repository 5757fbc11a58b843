package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_product"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/committer"
)

// ProductRepo implements contracts.ProductRepository for Spanner.
// The product row and its nested rows are always written in one commit.
type ProductRepo struct {
	committer *committer.Committer
	model     *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(c *committer.Committer) contracts.ProductRepository {
	return &ProductRepo{
		committer: c,
		model:     m_product.NewModel(),
	}
}

// Create inserts a product with its nested rows.
func (r *ProductRepo) Create(ctx context.Context, product domain.Product) error {
	plan := committer.NewPlan()
	plan.Add(r.model.InsertMut(productToData(product)))
	plan.AddMultiple(relationMuts(product))

	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites the product row and replaces every nested row.
func (r *ProductRepo) Update(ctx context.Context, product domain.Product) error {
	err := r.committer.ApplyAfterRead(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) (*committer.CommitPlan, error) {
		ok, err := productExists(ctx, txn, product.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrProductNotFound
		}

		// Mutations apply in order, so nested rows are cleared before reinsert.
		plan := committer.NewPlan()
		plan.Add(r.model.UpdateMut(productToData(product)))
		plan.AddMultiple(clearRelationMuts(product.ID))
		plan.AddMultiple(relationMuts(product))
		return plan, nil
	})
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes a product. Nested rows and reviews cascade.
func (r *ProductRepo) Delete(ctx context.Context, productID string) error {
	err := r.committer.ApplyAfterRead(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) (*committer.CommitPlan, error) {
		ok, err := productExists(ctx, txn, productID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrProductNotFound
		}

		plan := committer.NewPlan()
		plan.Add(r.model.DeleteMut(productID))
		return plan, nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
