package submit_review

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

// Request contains the review form.
type Request struct {
	ProductID string
	UserID    string
	UserName  string
	Rating    int64
	Title     string
	Comment   string
}

// Interactor handles the submit review use case.
type Interactor struct {
	reviews contracts.ReviewRepository
	clock   clock.Clock
}

// NewInteractor creates a new submit review interactor.
func NewInteractor(reviews contracts.ReviewRepository, clock clock.Clock) *Interactor {
	return &Interactor{
		reviews: reviews,
		clock:   clock,
	}
}

// Execute validates and stores a review under an existing product.
func (i *Interactor) Execute(ctx context.Context, req *Request) (domain.Review, error) {
	if req.UserID == "" {
		return domain.Review{}, domain.ErrMissingUser
	}
	if err := domain.ValidateReview(req.Rating, req.Title, req.Comment); err != nil {
		return domain.Review{}, err
	}

	review := domain.Review{
		ID:        uuid.New().String(),
		ProductID: req.ProductID,
		UserID:    req.UserID,
		UserName:  strings.TrimSpace(req.UserName),
		Rating:    req.Rating,
		Title:     strings.TrimSpace(req.Title),
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: i.clock.Now(),
	}

	if err := i.reviews.CreateReview(ctx, review); err != nil {
		return domain.Review{}, err
	}
	return review, nil
}
