package browse_catalog

import (
	"context"
	"fmt"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
)

// Request selects a base collection and the shopper's criteria.
// A nil price bound leaves that side of the range open. When DogID is set the
// breed and size are pre-filled from that dog; explicit values still win.
type Request struct {
	CategoryID      string
	BlackFridayOnly bool

	MinPrice        *float64
	MaxPrice        *float64
	Breed           string
	Size            domain.SizeCategory
	Vendors         []string
	PromotionalOnly bool
	Sort            domain.SortKey

	UserID string
	DogID  string
}

// Response is the visible catalog and the criteria that produced it.
type Response struct {
	catalog.Result
	Criteria domain.Criteria
	Sort     domain.SortKey
}

// Query handles the catalog and promotions pages.
type Query struct {
	fetcher *catalog.Fetcher
	dogs    contracts.DogRepository
}

// NewQuery creates a new browse catalog query.
func NewQuery(fetcher *catalog.Fetcher, dogs contracts.DogRepository) *Query {
	return &Query{
		fetcher: fetcher,
		dogs:    dogs,
	}
}

// Execute fetches the base collection and applies the criteria to it.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	products, err := q.fetcher.Fetch(ctx, contracts.ProductSelection{
		CategoryID:      req.CategoryID,
		BlackFridayOnly: req.BlackFridayOnly,
	})
	if err != nil {
		return nil, err
	}
	view := catalog.NewView(products)

	criteria, err := q.criteria(ctx, view, req)
	if err != nil {
		return nil, err
	}

	key := req.Sort
	if key == "" {
		key = domain.SortPopular
		if req.BlackFridayOnly {
			key = domain.SortDiscount
		}
	}

	return &Response{
		Result:   view.Apply(criteria, key),
		Criteria: criteria,
		Sort:     key,
	}, nil
}

func (q *Query) criteria(ctx context.Context, view catalog.View, req *Request) (domain.Criteria, error) {
	c := view.DefaultCriteria()

	if req.DogID != "" {
		if req.UserID == "" {
			return domain.Criteria{}, domain.ErrMissingUser
		}
		dog, err := q.dogs.GetDog(ctx, req.UserID, req.DogID)
		if err != nil {
			return domain.Criteria{}, fmt.Errorf("failed to load dog: %w", err)
		}
		fromDog := domain.CriteriaForDog(dog)
		c.Breed = fromDog.Breed
		c.Size = fromDog.Size
	}

	price, err := domain.PriceWindow(req.MinPrice, req.MaxPrice)
	if err != nil {
		return domain.Criteria{}, err
	}
	c.Price = price

	if req.Breed != "" {
		c.Breed = req.Breed
	}
	if req.Size != domain.SizeAny {
		c.Size = req.Size
	}
	c.Vendors = req.Vendors
	c.PromotionalOnly = req.PromotionalOnly

	return c, nil
}
