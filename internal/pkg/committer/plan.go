// Package committer collects Spanner mutations into a plan that is
// applied atomically.
//
// Repositories build mutations without applying them; use cases gather
// the mutations for one operation into a CommitPlan and hand it to the
// Committer, so a booking price snapshot and a ledger update either
// both land or neither does. Operations that must read before writing
// (the guarded credit consume) go through InTransaction instead, which
// keeps the read and the conditional write inside a single read-write
// transaction.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan accumulates mutations for one atomic commit.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{mutations: make([]*spanner.Mutation, 0)}
}

// Add appends a mutation. Nil mutations are ignored so repositories can
// return nil for no-op updates.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// Mutations returns the collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty reports whether the plan holds no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Committer applies CommitPlans against Spanner.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan atomically. An empty plan is a no-op.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}
	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// InTransaction runs fn inside a single read-write transaction. fn may
// read rows and buffer conditional writes; returning an error aborts
// the transaction with nothing applied.
func (c *Committer) InTransaction(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	if _, err := c.client.ReadWriteTransaction(ctx, fn); err != nil {
		return err
	}
	return nil
}
