package services

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/browse_catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_admin_products"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_breeds"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_categories"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_dogs"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/list_reviews"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/recommend_for_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/queries/suggest"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/repo"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/add_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_category"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/create_product"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/delete_product"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/remove_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/seed_catalog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/submit_review"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/update_dog"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/usecases/update_product"
	"github.com/light-bringer/pawfect-catalog/internal/config"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/committer"
	httpapi "github.com/light-bringer/pawfect-catalog/internal/transport/http"
)

// Stores is one backend's implementation of every storage contract.
type Stores struct {
	Products    contracts.ProductSource
	ProductRepo contracts.ProductRepository
	Categories  contracts.CategoryRepository
	Reference   contracts.ReferenceData
	Suggestions contracts.SuggestionSource
	Dogs        contracts.DogRepository
	Reviews     contracts.ReviewRepository
}

// MemoryStores backs every contract with one in-process store.
func MemoryStores(store *repo.MemoryStore) Stores {
	return Stores{
		Products:    store,
		ProductRepo: store,
		Categories:  store,
		Reference:   store,
		Suggestions: store,
		Dogs:        store,
		Reviews:     store,
	}
}

// SpannerStores backs every contract with Spanner.
func SpannerStores(client *spanner.Client, cfg config.Fetch) Stores {
	reader := repo.NewReader(client, cfg.RetryAttempts, cfg.RetryDelay)
	comm := committer.NewCommitter(client)
	reference := repo.NewReferenceRepo(reader, comm)
	return Stores{
		Products:    repo.NewProductSource(reader),
		ProductRepo: repo.NewProductRepo(comm),
		Categories:  repo.NewCategoryRepo(reader, comm),
		Reference:   reference,
		Suggestions: reference,
		Dogs:        repo.NewDogRepo(reader, comm),
		Reviews:     repo.NewReviewRepo(reader, comm),
	}
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	HTTPHandler   http.Handler
	SeedCatalog   *seed_catalog.Interactor
}

// NewServiceOptions opens the configured backend and wires up all
// application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	clk := clock.NewRealClock()

	var (
		client *spanner.Client
		stores Stores
	)
	switch cfg.Store.Backend {
	case config.BackendMemory:
		stores = MemoryStores(repo.NewMemoryStore(clk))
	default:
		var err error
		client, err = spanner.NewClient(ctx, cfg.Store.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		stores = SpannerStores(client, cfg.Fetch)
	}

	opts := Wire(stores, clk, cfg.Catalog.AffiliateTag, logger)
	opts.SpannerClient = client

	if cfg.Store.SeedFile != "" {
		if err := opts.SeedFromFile(ctx, cfg.Store.SeedFile); err != nil {
			opts.Close()
			return nil, err
		}
	}
	return opts, nil
}

// Wire builds the queries, use cases and HTTP handler over stores.
func Wire(stores Stores, clk clock.Clock, affiliateTag string, logger *zap.Logger) *ServiceOptions {
	fetcher := catalog.NewFetcher(stores.Products, logger, affiliateTag)

	// Command use cases (write operations)
	createProduct := create_product.NewInteractor(stores.ProductRepo, clk)
	updateProduct := update_product.NewInteractor(stores.ProductRepo, clk)
	createCategory := create_category.NewInteractor(stores.Categories)
	commands := httpapi.Commands{
		AddDog:         add_dog.NewInteractor(stores.Dogs, stores.Reference, clk),
		UpdateDog:      update_dog.NewInteractor(stores.Dogs, stores.Reference, clk),
		RemoveDog:      remove_dog.NewInteractor(stores.Dogs),
		SubmitReview:   submit_review.NewInteractor(stores.Reviews, clk),
		CreateProduct:  createProduct,
		UpdateProduct:  updateProduct,
		DeleteProduct:  delete_product.NewInteractor(stores.ProductRepo),
		CreateCategory: createCategory,
	}

	// Query use cases (read operations)
	queries := httpapi.Queries{
		BrowseCatalog:     browse_catalog.NewQuery(fetcher, stores.Dogs),
		Suggest:           suggest.NewQuery(stores.Suggestions),
		ListBreeds:        list_breeds.NewQuery(stores.Reference),
		ListCategories:    list_categories.NewQuery(stores.Categories),
		ListDogs:          list_dogs.NewQuery(stores.Dogs),
		RecommendForDog:   recommend_for_dog.NewQuery(fetcher, stores.Dogs),
		ListReviews:       list_reviews.NewQuery(stores.Reviews),
		ListAdminProducts: list_admin_products.NewQuery(fetcher),
	}

	return &ServiceOptions{
		HTTPHandler: httpapi.NewHandler(queries, commands, logger).Routes(),
		SeedCatalog: seed_catalog.NewInteractor(stores.Reference, createCategory, createProduct, updateProduct, logger),
	}
}

// SeedFromFile loads a YAML fixtures file through the seed use case.
func (s *ServiceOptions) SeedFromFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	fixtures, err := seed_catalog.LoadFixtures(f)
	if err != nil {
		return err
	}
	if _, err := s.SeedCatalog.Execute(ctx, fixtures); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
