package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_review"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/committer"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/query"
)

// ReviewRepo implements contracts.ReviewRepository for Spanner.
type ReviewRepo struct {
	reader    *Reader
	committer *committer.Committer
	model     *m_review.Model
}

// NewReviewRepo creates a new ReviewRepo.
func NewReviewRepo(reader *Reader, c *committer.Committer) contracts.ReviewRepository {
	return &ReviewRepo{
		reader:    reader,
		committer: c,
		model:     m_review.NewModel(),
	}
}

// ListReviews returns the reviews of a product, newest first.
func (r *ReviewRepo) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	stmt := query.From(m_review.TableName).
		Select(r.model.ReadColumns()...).
		Where(query.Eq(m_review.ProductID, productID)).
		OrderBy(m_review.CreatedAt, query.Desc).
		Build()

	reviews, err := queryAll(ctx, r.reader, stmt, decodeReview)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview inserts a review under an existing product.
func (r *ReviewRepo) CreateReview(ctx context.Context, review domain.Review) error {
	err := r.committer.ApplyAfterRead(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) (*committer.CommitPlan, error) {
		ok, err := productExists(ctx, txn, review.ProductID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrProductNotFound
		}

		plan := committer.NewPlan()
		plan.Add(r.model.InsertMut(&m_review.Data{
			ProductID:        review.ProductID,
			ReviewID:         review.ID,
			UserID:           review.UserID,
			UserName:         nullString(review.UserName),
			Rating:           review.Rating,
			Title:            review.Title,
			Comment:          review.Comment,
			HelpfulCount:     review.HelpfulCount,
			VerifiedPurchase: review.VerifiedPurchase,
			CreatedAt:        review.CreatedAt,
		}))
		return plan, nil
	})
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func decodeReview(row *spanner.Row) (domain.Review, error) {
	var d m_review.Data
	if err := row.ToStruct(&d); err != nil {
		return domain.Review{}, err
	}
	return domain.Review{
		ID:               d.ReviewID,
		ProductID:        d.ProductID,
		UserID:           d.UserID,
		UserName:         d.UserName.StringVal,
		Rating:           d.Rating,
		Title:            d.Title,
		Comment:          d.Comment,
		HelpfulCount:     d.HelpfulCount,
		VerifiedPurchase: d.VerifiedPurchase,
		CreatedAt:        d.CreatedAt,
	}, nil
}
