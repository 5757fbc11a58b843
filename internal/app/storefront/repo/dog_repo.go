package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/contracts"
	"github.com/light-bringer/pawfect-catalog/internal/app/storefront/domain"
	"github.com/light-bringer/pawfect-catalog/internal/models/m_dog"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/committer"
	"github.com/light-bringer/pawfect-catalog/internal/pkg/query"
)

// DogRepo implements contracts.DogRepository for Spanner.
type DogRepo struct {
	reader    *Reader
	committer *committer.Committer
	model     *m_dog.Model
}

// NewDogRepo creates a new DogRepo.
func NewDogRepo(reader *Reader, c *committer.Committer) contracts.DogRepository {
	return &DogRepo{
		reader:    reader,
		committer: c,
		model:     m_dog.NewModel(),
	}
}

// ListDogs returns the user's dogs, newest first.
func (r *DogRepo) ListDogs(ctx context.Context, userID string) ([]domain.Dog, error) {
	stmt := query.From(m_dog.TableName).
		Select(r.model.ReadColumns()...).
		Where(query.Eq(m_dog.UserID, userID)).
		OrderBy(m_dog.CreatedAt, query.Desc).
		Build()

	dogs, err := queryAll(ctx, r.reader, stmt, decodeDog)
	if err != nil {
		return nil, fmt.Errorf("failed to query dogs: %w", err)
	}
	return dogs, nil
}

// GetDog returns one of the user's dogs.
func (r *DogRepo) GetDog(ctx context.Context, userID, dogID string) (domain.Dog, error) {
	var d m_dog.Data
	found, err := r.reader.readRow(ctx, m_dog.TableName, spanner.Key{dogID}, r.model.ReadColumns(), &d)
	if err != nil {
		return domain.Dog{}, fmt.Errorf("failed to read dog: %w", err)
	}
	if !found || d.UserID != userID {
		return domain.Dog{}, domain.ErrDogNotFound
	}
	return dataToDog(&d), nil
}

// CreateDog inserts a dog profile.
func (r *DogRepo) CreateDog(ctx context.Context, dog domain.Dog) error {
	plan := committer.NewPlan()
	plan.Add(r.model.InsertMut(dogToData(dog)))

	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to create dog: %w", err)
	}
	return nil
}

// UpdateDog overwrites the editable fields of a dog owned by dog.UserID.
func (r *DogRepo) UpdateDog(ctx context.Context, dog domain.Dog) error {
	err := r.committer.ApplyAfterRead(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) (*committer.CommitPlan, error) {
		if err := r.checkOwner(ctx, txn, dog.UserID, dog.ID); err != nil {
			return nil, err
		}
		plan := committer.NewPlan()
		plan.Add(r.model.UpdateMut(dogToData(dog)))
		return plan, nil
	})
	if err != nil {
		return fmt.Errorf("failed to update dog: %w", err)
	}
	return nil
}

// DeleteDog removes one of the user's dogs.
func (r *DogRepo) DeleteDog(ctx context.Context, userID, dogID string) error {
	err := r.committer.ApplyAfterRead(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) (*committer.CommitPlan, error) {
		if err := r.checkOwner(ctx, txn, userID, dogID); err != nil {
			return nil, err
		}
		plan := committer.NewPlan()
		plan.Add(r.model.DeleteMut(dogID))
		return plan, nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete dog: %w", err)
	}
	return nil
}

func (r *DogRepo) checkOwner(ctx context.Context, txn *spanner.ReadWriteTransaction, userID, dogID string) error {
	row, err := txn.ReadRow(ctx, m_dog.TableName, spanner.Key{dogID}, []string{m_dog.UserID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return domain.ErrDogNotFound
		}
		return err
	}
	var owner string
	if err := row.Column(0, &owner); err != nil {
		return err
	}
	if owner != userID {
		return domain.ErrDogNotFound
	}
	return nil
}

func decodeDog(row *spanner.Row) (domain.Dog, error) {
	var d m_dog.Data
	if err := row.ToStruct(&d); err != nil {
		return domain.Dog{}, err
	}
	return dataToDog(&d), nil
}

func dataToDog(d *m_dog.Data) domain.Dog {
	conditions := d.HealthConditions
	if conditions == nil {
		conditions = []string{}
	}
	return domain.Dog{
		ID:               d.DogID,
		UserID:           d.UserID,
		Name:             d.Name,
		Breed:            d.Breed,
		SizeVariation:    d.BreedSizeVariation.StringVal,
		Age:              d.Age,
		Weight:           d.Weight,
		ActivityLevel:    d.ActivityLevel,
		Image:            d.Image.StringVal,
		HealthConditions: conditions,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func dogToData(dog domain.Dog) *m_dog.Data {
	return &m_dog.Data{
		DogID:              dog.ID,
		UserID:             dog.UserID,
		Name:               dog.Name,
		Breed:              dog.Breed,
		BreedSizeVariation: nullString(dog.SizeVariation),
		Age:                dog.Age,
		Weight:             dog.Weight,
		ActivityLevel:      dog.ActivityLevel,
		Image:              nullString(dog.Image),
		HealthConditions:   dog.HealthConditions,
		CreatedAt:          dog.CreatedAt,
		UpdatedAt:          dog.UpdatedAt,
	}
}
