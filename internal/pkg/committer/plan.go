// Package committer applies the collection writes produced by a domain store update.
//
// A usecase never talks to the key-value store directly. The domain store
// collects one write per changed collection into a CommitPlan and the
// Committer applies them in order:
//
//	plan := committer.NewPlan()
//	plan.Put("erp_sales", salesJSON)
//	plan.Put("erp_products", productsJSON)
//	if err := comm.Apply(ctx, plan); err != nil {
//	    return err
//	}
//
// Writes are independent: the backends have no multi-key transactions, so a
// failure part way through leaves the earlier writes in place. Apply reports
// which key failed so the caller can log it.
package committer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
)

// Write is a single full-value overwrite (or deletion) of one key.
type Write struct {
	Key    string
	Value  []byte
	Delete bool
}

// CommitPlan is an ordered list of key writes.
type CommitPlan struct {
	writes []Write
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		writes: make([]Write, 0),
	}
}

// Put queues an overwrite of key.
func (cp *CommitPlan) Put(key string, value []byte) {
	cp.writes = append(cp.writes, Write{Key: key, Value: value})
}

// Delete queues a deletion of key.
func (cp *CommitPlan) Delete(key string) {
	cp.writes = append(cp.writes, Write{Key: key, Delete: true})
}

// Writes returns all queued writes in order.
func (cp *CommitPlan) Writes() []Write {
	return cp.writes
}

// Keys returns the keys touched by the plan, in order.
func (cp *CommitPlan) Keys() []string {
	keys := make([]string, 0, len(cp.writes))
	for _, w := range cp.writes {
		keys = append(keys, w.Key)
	}
	return keys
}

// IsEmpty returns true if the plan has no writes.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.writes) == 0
}

// Count returns the number of writes in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.writes)
}

// Committer applies CommitPlans to a key-value store.
type Committer struct {
	store  kv.Store
	logger logrus.FieldLogger
}

// NewCommitter creates a new Committer.
func NewCommitter(store kv.Store, logger logrus.FieldLogger) *Committer {
	return &Committer{store: store, logger: logger}
}

// Apply executes the writes one by one and stops at the first failure.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	for i, w := range plan.writes {
		var err error
		if w.Delete {
			err = c.store.Delete(ctx, w.Key)
		} else {
			err = c.store.Put(ctx, w.Key, w.Value)
		}
		if err != nil {
			if i > 0 {
				c.logger.WithFields(logrus.Fields{
					"applied": plan.Keys()[:i],
					"failed":  w.Key,
				}).Warn("commit plan partially applied")
			}
			return fmt.Errorf("failed to apply commit plan at %s: %w", w.Key, err)
		}
	}

	c.logger.WithField("keys", plan.Keys()).Debug("commit plan applied")
	return nil
}
