package list_admin_products

import (
	"context"
	"strings"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Request carries the admin list filters. Both are optional.
type Request struct {
	Search     string
	CategoryID string
}

// Query handles the admin product list.
type Query struct {
	fetcher *catalog.Fetcher
}

// NewQuery creates a new admin product list query.
func NewQuery(fetcher *catalog.Fetcher) *Query {
	return &Query{fetcher: fetcher}
}

// Execute returns every product, newest first, narrowed by a case-insensitive
// search over name, description and vendor and by category.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.Product, error) {
	products, err := q.fetcher.FetchAdmin(ctx)
	if err != nil {
		return nil, err
	}

	category := strings.ToLower(strings.TrimSpace(req.CategoryID))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != contracts.AllCategories && p.CategoryID != category {
			continue
		}
		if !domain.MatchesAdminSearch(p, req.Search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
