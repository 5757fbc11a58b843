// Package catalog turns stored product rows into the storefront catalog:
// the Fetcher loads and normalizes a base collection, and a View recomputes
// the visible list from it for every change of criteria.
package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Fetcher loads base collections through a ProductSource.
// Retrying transient failures is the source's concern, not the fetcher's.
type Fetcher struct {
	source       contracts.ProductSource
	logger       *zap.Logger
	affiliateTag string
}

// NewFetcher creates a Fetcher. affiliateTag is added to amazon affiliate
// links; empty disables tagging.
func NewFetcher(source contracts.ProductSource, logger *zap.Logger, affiliateTag string) *Fetcher {
	return &Fetcher{
		source:       source,
		logger:       logger,
		affiliateTag: affiliateTag,
	}
}

// Fetch returns the normalized base collection of a selection.
// Any source failure is returned wrapped in domain.ErrFetchFailed.
func (f *Fetcher) Fetch(ctx context.Context, sel contracts.ProductSelection) ([]domain.Product, error) {
	raws, err := f.source.FetchProducts(ctx, sel)
	if err != nil {
		f.logger.Error("failed to fetch products",
			zap.String("category", sel.Category()),
			zap.Bool("black_friday", sel.BlackFridayOnly),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	return f.normalize(raws), nil
}

// FetchAdmin returns every product for the admin editor, newest first.
func (f *Fetcher) FetchAdmin(ctx context.Context) ([]domain.Product, error) {
	raws, err := f.source.FetchAdminProducts(ctx)
	if err != nil {
		f.logger.Error("failed to fetch admin products", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	return f.normalize(raws), nil
}

// FetchProduct returns one normalized product.
func (f *Fetcher) FetchProduct(ctx context.Context, productID string) (domain.Product, error) {
	raw, err := f.source.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.WithAffiliateTag(domain.Normalize(raw), f.affiliateTag), nil
}

func (f *Fetcher) normalize(raws []domain.RawProduct) []domain.Product {
	products := domain.NormalizeAll(raws)
	for i := range products {
		products[i] = domain.WithAffiliateTag(products[i], f.affiliateTag)
	}
	return products
}
