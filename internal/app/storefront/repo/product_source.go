package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_product"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/query"
)

// ProductSource implements contracts.ProductSource for Spanner.
type ProductSource struct {
	reader *Reader
}

// NewProductSource creates a new ProductSource.
func NewProductSource(reader *Reader) contracts.ProductSource {
	return &ProductSource{reader: reader}
}

// FetchProducts reads the products of a selection with all nested relations.
func (s *ProductSource) FetchProducts(ctx context.Context, sel contracts.ProductSelection) ([]domain.RawProduct, error) {
	q := productQuery()

	if c := sel.Category(); c != "" {
		q = q.Where(query.Eq(m_product.CategoryID, c))
	}

	if sel.BlackFridayOnly {
		q = q.Where(query.Eq(m_product.IsBlackFriday, true)).
			OrderBy(m_product.Discount, query.Desc)
	} else {
		q = q.OrderBy(m_product.CreatedAt, query.Desc)
	}

	products, err := queryAll(ctx, s.reader, q.Build(), decodeProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

// GetProduct reads a single product by id.
func (s *ProductSource) GetProduct(ctx context.Context, productID string) (domain.RawProduct, error) {
	stmt := productQuery().
		Where(query.Eq(m_product.ProductID, productID)).
		Limit(1).
		Build()

	products, err := queryAll(ctx, s.reader, stmt, decodeProduct)
	if err != nil {
		return domain.RawProduct{}, fmt.Errorf("failed to read product: %w", err)
	}
	if len(products) == 0 {
		return domain.RawProduct{}, domain.ErrProductNotFound
	}
	return products[0], nil
}

// FetchAdminProducts returns every product, newest first.
func (s *ProductSource) FetchAdminProducts(ctx context.Context) ([]domain.RawProduct, error) {
	stmt := productQuery().
		OrderBy(m_product.CreatedAt, query.Desc).
		Build()

	products, err := queryAll(ctx, s.reader, stmt, decodeProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	return products, nil
}

// productExists is used inside write transactions.
func productExists(ctx context.Context, txn *spanner.ReadWriteTransaction, productID string) (bool, error) {
	return existsInTxn(ctx, txn, m_product.TableName, spanner.Key{productID}, m_product.ProductID)
}
