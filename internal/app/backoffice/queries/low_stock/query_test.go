package low_stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/low_stock"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/repo"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/apply_sale"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/internal/pkg/logging"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

func TestLowStock(t *testing.T) {
	ctx := context.Background()
	clk := testutil.NewMockClock()
	store := testutil.OpenEmptyStore(t, kv.NewMemoryStore(), clk)

	testutil.CreateTestProduct(t, store, "Plenty", testutil.WithStock(50, 5))
	atThreshold := testutil.CreateTestProduct(t, store, "At threshold", testutil.WithStock(5, 5))
	empty := testutil.CreateTestProduct(t, store, "Empty", testutil.WithStock(0, 3))
	testutil.CreateTestProduct(t, store, "Low", testutil.WithStock(2, 4))

	q := low_stock.NewQuery(repo.NewReadModel(store))

	got, err := q.Execute(ctx, &low_stock.Request{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, empty.ID, got[0].ID)
	assert.Equal(t, atThreshold.ID, got[2].ID)

	got, err = q.Execute(ctx, &low_stock.Request{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	t.Run("reflects a sale immediately", func(t *testing.T) {
		plenty := store.Snapshot().Products()[0]
		sale := apply_sale.NewInteractor(store, clk, domain.MissingProductSkip, logging.Discard())
		_, err := sale.Execute(ctx, &apply_sale.Request{
			Lines:         []apply_sale.Line{{ProductID: plenty.ID, Quantity: 46, UnitPrice: domain.NewMoney(10)}},
			PaymentMethod: "Cash",
		})
		require.NoError(t, err)

		got, err := q.Execute(ctx, &low_stock.Request{})
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})
}
