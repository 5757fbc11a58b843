package repo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/clock"
)

// MemoryStore keeps the whole storefront in process memory. It implements
// every storefront contract with the same ordering and not-found rules as
// the Spanner repositories, and backs local development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	clock clock.Clock
	seq   int64

	products   map[string]entry[domain.RawProduct]
	categories map[string]domain.Category
	breeds     map[string]domain.Breed
	conditions map[string]string
	dogs       map[string]entry[domain.Dog]
	reviews    map[string][]entry[domain.Review]
}

// entry remembers insertion order to break created_at ties.
type entry[T any] struct {
	value T
	seq   int64
}

var (
	_ contracts.ProductSource      = (*MemoryStore)(nil)
	_ contracts.ProductRepository  = (*MemoryStore)(nil)
	_ contracts.CategoryRepository = (*MemoryStore)(nil)
	_ contracts.ReferenceData      = (*MemoryStore)(nil)
	_ contracts.SuggestionSource   = (*MemoryStore)(nil)
	_ contracts.DogRepository      = (*MemoryStore)(nil)
	_ contracts.ReviewRepository   = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty store. clk stamps rows written without
// timestamps, the way commit timestamps do in Spanner.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:      clk,
		products:   make(map[string]entry[domain.RawProduct]),
		categories: make(map[string]domain.Category),
		breeds:     make(map[string]domain.Breed),
		conditions: make(map[string]string),
		dogs:       make(map[string]entry[domain.Dog]),
		reviews:    make(map[string][]entry[domain.Review]),
	}
}

func (s *MemoryStore) next() int64 {
	s.seq++
	return s.seq
}

// InsertRaw stores a raw product row as is, nulls included.
func (s *MemoryStore) InsertRaw(raw domain.RawProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if raw.CreatedAt.IsZero() {
		raw.CreatedAt = s.clock.Now()
		raw.UpdatedAt = raw.CreatedAt
	}
	s.products[raw.ID] = entry[domain.RawProduct]{value: raw, seq: s.next()}
}

// FetchProducts implements contracts.ProductSource.
func (s *MemoryStore) FetchProducts(ctx context.Context, sel contracts.ProductSelection) ([]domain.RawProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	category := sel.Category()
	matched := make([]entry[domain.RawProduct], 0, len(s.products))
	for _, e := range s.products {
		if category != "" && (e.value.CategoryID == nil || *e.value.CategoryID != category) {
			continue
		}
		if sel.BlackFridayOnly && (e.value.IsBlackFriday == nil || !*e.value.IsBlackFriday) {
			continue
		}
		matched = append(matched, e)
	}

	if sel.BlackFridayOnly {
		slices.SortFunc(matched, func(a, b entry[domain.RawProduct]) int {
			if c := cmp.Compare(derefInt(b.value.Discount), derefInt(a.value.Discount)); c != 0 {
				return c
			}
			return newestFirst(a.seq, b.seq, a.value.CreatedAt, b.value.CreatedAt)
		})
	} else {
		sortNewestFirst(matched, func(r domain.RawProduct) time.Time { return r.CreatedAt })
	}

	return s.joinAll(matched), nil
}

// GetProduct implements contracts.ProductSource.
func (s *MemoryStore) GetProduct(ctx context.Context, productID string) (domain.RawProduct, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawProduct{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.products[productID]
	if !ok {
		return domain.RawProduct{}, domain.ErrProductNotFound
	}
	return s.join(e.value), nil
}

// FetchAdminProducts implements contracts.ProductSource.
func (s *MemoryStore) FetchAdminProducts(ctx context.Context) ([]domain.RawProduct, error) {
	return s.FetchProducts(ctx, contracts.ProductSelection{})
}

// join fills lookup names the way the Spanner read joins them. Names with
// no lookup row are kept as stored.
func (s *MemoryStore) join(raw domain.RawProduct) domain.RawProduct {
	benefits := make([]domain.HealthBenefit, len(raw.HealthBenefits))
	copy(benefits, raw.HealthBenefits)
	for i := range benefits {
		if name, ok := s.conditions[benefits[i].HealthConditionID]; ok {
			benefits[i].HealthCondition = name
		}
	}
	raw.HealthBenefits = benefits

	recs := make([]domain.BreedRecommendation, len(raw.BreedRecommendations))
	copy(recs, raw.BreedRecommendations)
	for i := range recs {
		if b, ok := s.breeds[recs[i].BreedID]; ok {
			recs[i].Breed = b.Name
		}
	}
	raw.BreedRecommendations = recs

	return raw
}

func (s *MemoryStore) joinAll(entries []entry[domain.RawProduct]) []domain.RawProduct {
	out := make([]domain.RawProduct, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.join(e.value))
	}
	return out
}

// Create implements contracts.ProductRepository.
func (s *MemoryStore) Create(ctx context.Context, product domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; ok {
		return fmt.Errorf("failed to create product: %s already exists", product.ID)
	}
	now := s.clock.Now()
	product.CreatedAt, product.UpdatedAt = now, now
	s.products[product.ID] = entry[domain.RawProduct]{value: product.Raw(), seq: s.next()}
	return nil
}

// Update implements contracts.ProductRepository.
func (s *MemoryStore) Update(ctx context.Context, product domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.products[product.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	product.CreatedAt = old.value.CreatedAt
	product.UpdatedAt = s.clock.Now()
	s.products[product.ID] = entry[domain.RawProduct]{value: product.Raw(), seq: old.seq}
	return nil
}

// Delete implements contracts.ProductRepository. Reviews go with the product.
func (s *MemoryStore) Delete(ctx context.Context, productID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.products, productID)
	delete(s.reviews, productID)
	return nil
}

// ListCategories implements contracts.CategoryRepository.
func (s *MemoryStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Category) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

// CreateCategory implements contracts.CategoryRepository.
func (s *MemoryStore) CreateCategory(ctx context.Context, category domain.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.ID]; ok {
		verr := domain.NewValidationError()
		verr.Add("id", "Category already exists")
		return verr
	}
	s.categories[category.ID] = category
	return nil
}

// ListBreeds implements contracts.ReferenceData.
func (s *MemoryStore) ListBreeds(ctx context.Context) ([]domain.Breed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Breed, 0, len(s.breeds))
	for _, b := range s.breeds {
		out = append(out, cloneBreed(b))
	}
	slices.SortFunc(out, func(a, b domain.Breed) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

// FindBreedByName implements contracts.ReferenceData.
func (s *MemoryStore) FindBreedByName(ctx context.Context, name string) (domain.Breed, error) {
	if err := ctx.Err(); err != nil {
		return domain.Breed{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.breeds {
		if strings.EqualFold(b.Name, name) {
			return cloneBreed(b), nil
		}
	}
	return domain.Breed{}, domain.ErrBreedNotFound
}

// UpsertBreed implements contracts.ReferenceData. Size variations are
// merged by id.
func (s *MemoryStore) UpsertBreed(ctx context.Context, breed domain.Breed) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := cloneBreed(breed)
	if old, ok := s.breeds[breed.ID]; ok {
		for _, v := range old.SizeVariations {
			if !slices.ContainsFunc(merged.SizeVariations, func(n domain.SizeVariation) bool { return n.ID == v.ID }) {
				merged.SizeVariations = append(merged.SizeVariations, v)
			}
		}
	}
	slices.SortFunc(merged.SizeVariations, func(a, b domain.SizeVariation) int {
		return cmp.Compare(a.ID, b.ID)
	})
	s.breeds[breed.ID] = merged
	return nil
}

// UpsertHealthCondition implements contracts.ReferenceData.
func (s *MemoryStore) UpsertHealthCondition(ctx context.Context, id, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conditions[id] = name
	return nil
}

// SuggestBreeds implements contracts.SuggestionSource.
func (s *MemoryStore) SuggestBreeds(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Suggestion, 0)
	for _, b := range s.breeds {
		if containsFold(b.Name, query) {
			out = append(out, domain.Suggestion{Kind: domain.SuggestionBreed, ID: b.ID, Name: b.Name})
		}
	}
	return limitSuggestions(out, limit), nil
}

// SuggestProducts implements contracts.SuggestionSource.
func (s *MemoryStore) SuggestProducts(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Suggestion, 0)
	for _, e := range s.products {
		if e.value.Name != nil && containsFold(*e.value.Name, query) {
			out = append(out, domain.Suggestion{Kind: domain.SuggestionProduct, ID: e.value.ID, Name: *e.value.Name})
		}
	}
	return limitSuggestions(out, limit), nil
}

// ListDogs implements contracts.DogRepository.
func (s *MemoryStore) ListDogs(ctx context.Context, userID string) ([]domain.Dog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]entry[domain.Dog], 0)
	for _, e := range s.dogs {
		if e.value.UserID == userID {
			owned = append(owned, e)
		}
	}
	sortNewestFirst(owned, func(d domain.Dog) time.Time { return d.CreatedAt })

	out := make([]domain.Dog, 0, len(owned))
	for _, e := range owned {
		out = append(out, cloneDog(e.value))
	}
	return out, nil
}

// GetDog implements contracts.DogRepository.
func (s *MemoryStore) GetDog(ctx context.Context, userID, dogID string) (domain.Dog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dog{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.dogs[dogID]
	if !ok || e.value.UserID != userID {
		return domain.Dog{}, domain.ErrDogNotFound
	}
	return cloneDog(e.value), nil
}

// CreateDog implements contracts.DogRepository.
func (s *MemoryStore) CreateDog(ctx context.Context, dog domain.Dog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dogs[dog.ID]; ok {
		return fmt.Errorf("failed to create dog: %s already exists", dog.ID)
	}
	s.dogs[dog.ID] = entry[domain.Dog]{value: cloneDog(dog), seq: s.next()}
	return nil
}

// UpdateDog implements contracts.DogRepository. Owner and creation time
// are never changed.
func (s *MemoryStore) UpdateDog(ctx context.Context, dog domain.Dog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.dogs[dog.ID]
	if !ok || old.value.UserID != dog.UserID {
		return domain.ErrDogNotFound
	}
	dog.CreatedAt = old.value.CreatedAt
	s.dogs[dog.ID] = entry[domain.Dog]{value: cloneDog(dog), seq: old.seq}
	return nil
}

// DeleteDog implements contracts.DogRepository.
func (s *MemoryStore) DeleteDog(ctx context.Context, userID, dogID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.dogs[dogID]
	if !ok || e.value.UserID != userID {
		return domain.ErrDogNotFound
	}
	delete(s.dogs, dogID)
	return nil
}

// ListReviews implements contracts.ReviewRepository.
func (s *MemoryStore) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := slices.Clone(s.reviews[productID])
	sortNewestFirst(entries, func(r domain.Review) time.Time { return r.CreatedAt })

	out := make([]domain.Review, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.value)
	}
	return out, nil
}

// CreateReview implements contracts.ReviewRepository.
func (s *MemoryStore) CreateReview(ctx context.Context, review domain.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[review.ProductID]; !ok {
		return domain.ErrProductNotFound
	}
	s.reviews[review.ProductID] = append(s.reviews[review.ProductID], entry[domain.Review]{value: review, seq: s.next()})
	return nil
}

func cloneBreed(b domain.Breed) domain.Breed {
	b.SizeVariations = append(make([]domain.SizeVariation, 0, len(b.SizeVariations)), b.SizeVariations...)
	return b
}

func cloneDog(d domain.Dog) domain.Dog {
	d.HealthConditions = append(make([]string, 0, len(d.HealthConditions)), d.HealthConditions...)
	return d
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func limitSuggestions(out []domain.Suggestion, limit int) []domain.Suggestion {
	slices.SortFunc(out, func(a, b domain.Suggestion) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func derefInt(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func sortNewestFirst[T any](entries []entry[T], createdAt func(T) time.Time) {
	slices.SortFunc(entries, func(a, b entry[T]) int {
		return newestFirst(a.seq, b.seq, createdAt(a.value), createdAt(b.value))
	})
}

// newestFirst orders by creation time descending, then by insertion order.
func newestFirst(aSeq, bSeq int64, a, b time.Time) int {
	if c := b.Compare(a); c != 0 {
		return c
	}
	return cmp.Compare(bSeq, aSeq)
}
