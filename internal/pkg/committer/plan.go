// Package committer collects Spanner mutations into a plan and applies them atomically.
//
// Repositories never write directly. They build mutations through the model
// facades in internal/models, add them to a CommitPlan and hand the plan to a
// Committer, so that a product row and its nested relation rows always land
// in one commit:
//
//	plan := committer.NewPlan()
//	plan.Add(products.InsertMut(data))
//	plan.AddMultiple(lifeStages.ReplaceMuts(productID, rows))
//	return comm.Apply(ctx, plan)
//
// When a write depends on a read (ownership checks, existence checks) use
// ApplyAfterRead, which runs the read and the buffered plan in one read-write
// transaction.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is a typed wrapper around Spanner mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// ApplyAfterRead runs read inside a read-write transaction and buffers the
// plan it returns. An error from read aborts the transaction unchanged, so
// callers can return domain sentinels from it.
func (c *Committer) ApplyAfterRead(ctx context.Context, read func(context.Context, *spanner.ReadWriteTransaction) (*CommitPlan, error)) error {
	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		plan, err := read(ctx, txn)
		if err != nil {
			return err
		}
		if plan == nil || plan.IsEmpty() {
			return nil
		}
		return txn.BufferWrite(plan.Mutations())
	})
	return err
}
