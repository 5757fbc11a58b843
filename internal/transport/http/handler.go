// Package http exposes the storefront over a JSON HTTP API.
// Handlers are thin coordinators that decode requests, call one query or
// use case and encode the result.
package http

import (
	"go.uber.org/zap"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/browse_catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_admin_products"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_breeds"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_categories"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_dogs"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_reviews"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/recommend_for_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/suggest"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/add_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_category"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_product"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/delete_product"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/remove_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/submit_review"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/update_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/update_product"
)

// Queries are the read side of the API.
type Queries struct {
	BrowseCatalog     *browse_catalog.Query
	Suggest           *suggest.Query
	ListBreeds        *list_breeds.Query
	ListCategories    *list_categories.Query
	ListDogs          *list_dogs.Query
	RecommendForDog   *recommend_for_dog.Query
	ListReviews       *list_reviews.Query
	ListAdminProducts *list_admin_products.Query
}

// Commands are the write side of the API.
type Commands struct {
	AddDog         *add_dog.Interactor
	UpdateDog      *update_dog.Interactor
	RemoveDog      *remove_dog.Interactor
	SubmitReview   *submit_review.Interactor
	CreateProduct  *create_product.Interactor
	UpdateProduct  *update_product.Interactor
	DeleteProduct  *delete_product.Interactor
	CreateCategory *create_category.Interactor
}

// Handler serves every storefront endpoint.
type Handler struct {
	queries  Queries
	commands Commands
	logger   *zap.Logger
}

// NewHandler creates a new HTTP storefront handler.
func NewHandler(queries Queries, commands Commands, logger *zap.Logger) *Handler {
	return &Handler{
		queries:  queries,
		commands: commands,
		logger:   logger,
	}
}
