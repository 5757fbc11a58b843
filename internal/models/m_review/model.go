package m_review

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Table and field name constants for product_reviews.
const (
	TableName = "product_reviews"

	ProductID        = "product_id"
	ReviewID         = "review_id"
	UserID           = "user_id"
	UserName         = "user_name"
	Rating           = "rating"
	Title            = "title"
	Comment          = "comment"
	HelpfulCount     = "helpful_count"
	VerifiedPurchase = "verified_purchase"
	CreatedAt        = "created_at"
)

// Data is one review row, interleaved under its product.
type Data struct {
	ProductID        string             `spanner:"product_id"`
	ReviewID         string             `spanner:"review_id"`
	UserID           string             `spanner:"user_id"`
	UserName         spanner.NullString `spanner:"user_name"`
	Rating           int64              `spanner:"rating"`
	Title            string             `spanner:"title"`
	Comment          string             `spanner:"comment"`
	HelpfulCount     int64              `spanner:"helpful_count"`
	VerifiedPurchase bool               `spanner:"verified_purchase"`
	CreatedAt        time.Time          `spanner:"created_at"`
}

// Model provides mutations for product_reviews.
type Model struct{}

// NewModel creates a new review model.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a mutation for inserting a review.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	mut, _ := spanner.InsertStruct(TableName, data)
	return mut
}

// ReadColumns returns every review column.
func (m *Model) ReadColumns() []string {
	return []string{ProductID, ReviewID, UserID, UserName, Rating, Title, Comment, HelpfulCount, VerifiedPurchase, CreatedAt}
}
