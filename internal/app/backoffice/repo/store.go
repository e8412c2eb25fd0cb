package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/internal/pkg/committer"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/internal/pkg/logging"
)

var _ contracts.StateStore = (*Store)(nil)

// Store is the domain store: it owns the in-memory State and mirrors every
// changed collection to the key-value store. All updates are serialised.
type Store struct {
	mu        sync.Mutex
	kv        kv.Store
	keys      Keys
	committer *committer.Committer
	state     *domain.State
	logger    logrus.FieldLogger
}

// Open loads the state from store. Collections that are absent are seeded with
// the sample data and written back; the session is never seeded.
func Open(ctx context.Context, store kv.Store, keys Keys, clk clock.Clock, logger logrus.FieldLogger) (*Store, error) {
	s := &Store{
		kv:        store,
		keys:      keys,
		committer: committer.NewCommitter(store, logger),
		logger:    logger,
	}

	if err := s.load(ctx, clk); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load(ctx context.Context, clk clock.Clock) error {
	raw := make(map[string][]byte, len(collections))
	for _, c := range collections {
		value, found, err := s.kv.Get(ctx, s.keys.For(c))
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", c, err)
		}
		if found {
			raw[c] = value
		}
	}

	var seed *SeedData
	seeded := func() *SeedData {
		if seed == nil {
			d := NewSeedData(clk.Now(), func() string { return uuid.New().String() })
			seed = &d
		}
		return seed
	}

	var (
		products      []domain.Product
		sales         []domain.Sale
		notifications []domain.Notification
		users         []domain.User
		session       *domain.User
		err           error
		missing       []string
	)

	if value, ok := raw[domain.CollectionProducts]; ok {
		if products, err = decodeList[domain.Product](domain.CollectionProducts, value); err != nil {
			return err
		}
	} else {
		products = seeded().Products
		missing = append(missing, domain.CollectionProducts)
	}

	if value, ok := raw[domain.CollectionSales]; ok {
		if sales, err = decodeList[domain.Sale](domain.CollectionSales, value); err != nil {
			return err
		}
	} else {
		sales = seeded().Sales
		missing = append(missing, domain.CollectionSales)
	}

	if value, ok := raw[domain.CollectionNotifications]; ok {
		if notifications, err = decodeList[domain.Notification](domain.CollectionNotifications, value); err != nil {
			return err
		}
	} else {
		notifications = seeded().Notifications
		missing = append(missing, domain.CollectionNotifications)
	}

	if value, ok := raw[domain.CollectionUsers]; ok {
		if users, err = decodeList[domain.User](domain.CollectionUsers, value); err != nil {
			return err
		}
	} else {
		users = seeded().Users
		missing = append(missing, domain.CollectionUsers)
	}

	if value, ok := raw[domain.CollectionSession]; ok {
		if session, err = decodeSession(value); err != nil {
			return err
		}
	}

	st := domain.NewState(products, sales, notifications, users, session)
	for _, c := range missing {
		st.Changes().MarkDirty(c)
	}

	if err := s.persist(ctx, st); err != nil {
		return fmt.Errorf("failed to write seed data: %w", err)
	}
	if len(missing) > 0 {
		s.logger.WithField("collections", missing).Info("seeded empty collections")
	}

	st.Changes().Clear()
	s.state = st
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update runs fn on a working copy and commits it.
func (s *Store) Update(ctx context.Context, fn func(st *domain.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.state.Clone()
	if err := fn(working); err != nil {
		return err
	}

	if err := s.persist(ctx, working); err != nil {
		logging.LogError(s.logger, "repo", "Update", "persisting state", working.Changes().DirtyCollections(), err)
		return fmt.Errorf("failed to persist state: %w", err)
	}

	working.Changes().Clear()
	s.state = working
	return nil
}

// Keys returns the storage keys in use.
func (s *Store) Keys() Keys { return s.keys }

// persist writes every dirty collection of st, one write per collection.
func (s *Store) persist(ctx context.Context, st *domain.State) error {
	plan := committer.NewPlan()
	for _, c := range st.Changes().DirtyCollections() {
		value, del, err := encodeCollection(st, c)
		if err != nil {
			return err
		}
		if del {
			plan.Delete(s.keys.For(c))
			continue
		}
		plan.Put(s.keys.For(c), value)
	}
	return s.committer.Apply(ctx, plan)
}
