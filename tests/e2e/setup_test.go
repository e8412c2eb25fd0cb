package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/config"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/internal/pkg/logging"
	"github.com/light-bringer/backoffice-service/internal/services"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

// Suite holds the wired application and its infrastructure for E2E tests.
type Suite struct {
	*services.ServiceOptions

	Clock *clock.MockClock
	Mem   *kv.MemoryStore
	cfg   config.Config
}

// setupTest wires the application over a fresh in-memory backend. The first
// open seeds the sample data.
func setupTest(t *testing.T) *Suite {
	t.Helper()

	s := &Suite{
		Clock: testutil.NewMockClock(),
		Mem:   kv.NewMemoryStore(),
		cfg:   config.Config{MissingProduct: domain.MissingProductSkip},
	}
	s.ServiceOptions = s.open(t)
	return s
}

// restart rewires the application over the same backend, as a process restart would.
func (s *Suite) restart(t *testing.T) {
	t.Helper()
	s.ServiceOptions = s.open(t)
}

func (s *Suite) open(t *testing.T) *services.ServiceOptions {
	t.Helper()

	opts, err := services.NewServiceOptionsWithStore(context.Background(), s.Mem, s.Clock, s.cfg, logging.Discard())
	require.NoError(t, err)
	return opts
}

// productByName looks up a seeded product.
func (s *Suite) productByName(t *testing.T, name string) domain.Product {
	t.Helper()

	for _, p := range s.Store.Snapshot().Products() {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("product %q not found", name)
	return domain.Product{}
}
