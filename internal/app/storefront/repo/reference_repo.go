package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_breed"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_breed_size_variation"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_health_condition"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_product"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/committer"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/query"
)

const relSizeVariations = "size_variations"

// breedRow is a dog_breeds row with its size variations embedded.
type breedRow struct {
	BreedID           string              `spanner:"breed_id"`
	Name              string              `spanner:"name"`
	SizeCategory      spanner.NullString  `spanner:"size_category"`
	HasSizeVariations bool                `spanner:"has_size_variations"`
	SizeVariations    []*sizeVariationRow `spanner:"size_variations"`
}

type sizeVariationRow struct {
	VariationID     string             `spanner:"variation_id"`
	SizeCategory    string             `spanner:"size_category"`
	SizeDescription spanner.NullString `spanner:"size_description"`
}

func (r *breedRow) toDomain() domain.Breed {
	b := domain.Breed{
		ID:                r.BreedID,
		Name:              r.Name,
		SizeCategory:      domain.SizeCategory(r.SizeCategory.StringVal),
		HasSizeVariations: r.HasSizeVariations,
		SizeVariations:    make([]domain.SizeVariation, 0, len(r.SizeVariations)),
	}
	for _, v := range r.SizeVariations {
		if v == nil {
			continue
		}
		b.SizeVariations = append(b.SizeVariations, domain.SizeVariation{
			ID:           v.VariationID,
			SizeCategory: v.SizeCategory,
			Description:  v.SizeDescription.StringVal,
		})
	}
	return b
}

func decodeBreed(row *spanner.Row) (domain.Breed, error) {
	var r breedRow
	if err := row.ToStruct(&r); err != nil {
		return domain.Breed{}, err
	}
	return r.toDomain(), nil
}

func decodeSuggestion(kind domain.SuggestionKind) func(*spanner.Row) (domain.Suggestion, error) {
	return func(row *spanner.Row) (domain.Suggestion, error) {
		var id, name spanner.NullString
		if err := row.Columns(&id, &name); err != nil {
			return domain.Suggestion{}, err
		}
		return domain.Suggestion{Kind: kind, ID: id.StringVal, Name: name.StringVal}, nil
	}
}

// ReferenceRepo implements contracts.ReferenceData and
// contracts.SuggestionSource for Spanner.
type ReferenceRepo struct {
	reader    *Reader
	committer *committer.Committer
}

// NewReferenceRepo creates a new ReferenceRepo.
func NewReferenceRepo(reader *Reader, c *committer.Committer) *ReferenceRepo {
	return &ReferenceRepo{reader: reader, committer: c}
}

var (
	_ contracts.ReferenceData    = (*ReferenceRepo)(nil)
	_ contracts.SuggestionSource = (*ReferenceRepo)(nil)
)

func breedQuery() *query.Builder {
	variations := query.Nested(relSizeVariations, m_breed_size_variation.TableName, m_breed_size_variation.BreedID).
		Select(m_breed_size_variation.NewModel().ReadColumns()...).
		OrderBy(m_breed_size_variation.VariationID, query.Asc)

	return query.From(m_breed.TableName).
		Select(m_breed.NewModel().ReadColumns()...).
		Embed(variations)
}

// ListBreeds returns every breed ordered by name.
func (r *ReferenceRepo) ListBreeds(ctx context.Context) ([]domain.Breed, error) {
	stmt := breedQuery().OrderBy(m_breed.Name, query.Asc).Build()

	breeds, err := queryAll(ctx, r.reader, stmt, decodeBreed)
	if err != nil {
		return nil, fmt.Errorf("failed to query breeds: %w", err)
	}
	return breeds, nil
}

// FindBreedByName returns the breed whose name matches case-insensitively.
func (r *ReferenceRepo) FindBreedByName(ctx context.Context, name string) (domain.Breed, error) {
	stmt := breedQuery().
		Where(query.LowerEq(m_breed.Name, name)).
		Limit(1).
		Build()

	breeds, err := queryAll(ctx, r.reader, stmt, decodeBreed)
	if err != nil {
		return domain.Breed{}, fmt.Errorf("failed to read breed: %w", err)
	}
	if len(breeds) == 0 {
		return domain.Breed{}, domain.ErrBreedNotFound
	}
	return breeds[0], nil
}

// UpsertBreed writes a breed and its size variations.
func (r *ReferenceRepo) UpsertBreed(ctx context.Context, breed domain.Breed) error {
	plan := committer.NewPlan()
	plan.Add(m_breed.NewModel().UpsertMut(&m_breed.Data{
		BreedID:           breed.ID,
		Name:              breed.Name,
		SizeCategory:      nullString(string(breed.SizeCategory)),
		HasSizeVariations: breed.HasSizeVariations,
	}))

	variations := m_breed_size_variation.NewModel()
	for _, v := range breed.SizeVariations {
		plan.Add(variations.UpsertMut(&m_breed_size_variation.Data{
			BreedID:         breed.ID,
			VariationID:     v.ID,
			SizeCategory:    v.SizeCategory,
			SizeDescription: nullString(v.Description),
		}))
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to upsert breed: %w", err)
	}
	return nil
}

// UpsertHealthCondition writes a health condition lookup row.
func (r *ReferenceRepo) UpsertHealthCondition(ctx context.Context, id, name string) error {
	plan := committer.NewPlan()
	plan.Add(m_health_condition.NewModel().UpsertMut(&m_health_condition.Data{
		HealthConditionID: id,
		Name:              name,
	}))

	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to upsert health condition: %w", err)
	}
	return nil
}

// SuggestBreeds returns up to limit breeds whose name contains q.
func (r *ReferenceRepo) SuggestBreeds(ctx context.Context, q string, limit int) ([]domain.Suggestion, error) {
	stmt := query.From(m_breed.TableName).
		Select(m_breed.BreedID, m_breed.Name).
		Where(query.Contains(m_breed.Name, q)).
		OrderBy(m_breed.Name, query.Asc).
		Limit(int64(limit)).
		Build()

	out, err := queryAll(ctx, r.reader, stmt, decodeSuggestion(domain.SuggestionBreed))
	if err != nil {
		return nil, fmt.Errorf("failed to suggest breeds: %w", err)
	}
	return out, nil
}

// SuggestProducts returns up to limit products whose name contains q.
func (r *ReferenceRepo) SuggestProducts(ctx context.Context, q string, limit int) ([]domain.Suggestion, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.ProductID, m_product.Name).
		Where(query.Contains(m_product.Name, q)).
		OrderBy(m_product.Name, query.Asc).
		Limit(int64(limit)).
		Build()

	out, err := queryAll(ctx, r.reader, stmt, decodeSuggestion(domain.SuggestionProduct))
	if err != nil {
		return nil, fmt.Errorf("failed to suggest products: %w", err)
	}
	return out, nil
}
