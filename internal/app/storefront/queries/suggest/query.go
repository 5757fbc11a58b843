package suggest

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Request is the raw search box input.
type Request struct {
	Query string
	Kind  domain.SuggestionKind
}

// Query handles search box suggestions.
type Query struct {
	source contracts.SuggestionSource
}

// NewQuery creates a new suggest query.
func NewQuery(source contracts.SuggestionSource) *Query {
	return &Query{source: source}
}

// Execute returns up to five breeds then up to five products matching the
// query. Queries shorter than two characters return nothing without
// touching the store. With kind all, both lookups run concurrently.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.Suggestion, error) {
	text, ok := domain.SuggestionQuery(req.Query)
	if !ok {
		return []domain.Suggestion{}, nil
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.SuggestionAll
	}

	var breeds, products []domain.Suggestion
	g, gctx := errgroup.WithContext(ctx)

	if kind == domain.SuggestionAll || kind == domain.SuggestionBreed {
		g.Go(func() error {
			var err error
			breeds, err = q.source.SuggestBreeds(gctx, text, domain.SuggestionsPerKind)
			if err != nil {
				return fmt.Errorf("failed to suggest breeds: %w", err)
			}
			return nil
		})
	}
	if kind == domain.SuggestionAll || kind == domain.SuggestionProduct {
		g.Go(func() error {
			var err error
			products, err = q.source.SuggestProducts(gctx, text, domain.SuggestionsPerKind)
			if err != nil {
				return fmt.Errorf("failed to suggest products: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Suggestion, 0, len(breeds)+len(products))
	out = append(out, breeds...)
	out = append(out, products...)
	return out, nil
}
