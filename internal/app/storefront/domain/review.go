package domain

import (
	"strings"
	"time"
)

// Review is a shopper's rating of a product.
type Review struct {
	ID               string
	ProductID        string
	UserID           string
	UserName         string
	Rating           int64
	Title            string
	Comment          string
	HelpfulCount     int64
	VerifiedPurchase bool
	CreatedAt        time.Time
}

// ValidateReview checks a review form: 1 to 5 paws, title and comment required.
func ValidateReview(rating int64, title, comment string) error {
	verr := NewValidationError()
	if rating < 1 || rating > 5 {
		verr.Add("rating", "Please select a rating")
	}
	if strings.TrimSpace(title) == "" {
		verr.Add("title", "Title is required")
	}
	if strings.TrimSpace(comment) == "" {
		verr.Add("comment", "Review is required")
	}
	return verr.OrNil()
}
