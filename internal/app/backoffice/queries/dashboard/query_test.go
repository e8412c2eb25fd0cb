package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/dashboard"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/repo"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

func TestDashboard_SeedData(t *testing.T) {
	store := testutil.OpenStore(t, kv.NewMemoryStore(), testutil.NewMockClock())
	q := dashboard.NewQuery(repo.NewReadModel(store))

	res, err := q.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, res.TotalProducts)
	assert.Equal(t, 5, res.TotalSales)
	assert.Equal(t, 0, res.LowStockCount)
	assert.Empty(t, res.LowStockProducts)

	// 60498 + 25998 + 8992 + 4998 + 29997
	assert.Equal(t, "130483.00", res.TotalRevenue.String())

	require.Len(t, res.RecentSales, 5)
	assert.Equal(t, "Rajesh Gupta", res.RecentSales[0].Customer.Name)
	assert.Equal(t, "Rahul Sharma", res.RecentSales[4].Customer.Name)
}

func TestDashboard_LowStockListIsCapped(t *testing.T) {
	store := testutil.OpenEmptyStore(t, kv.NewMemoryStore(), testutil.NewMockClock())
	for i := 7; i >= 0; i-- {
		testutil.CreateTestProduct(t, store, "Item", testutil.WithStock(i, 10))
	}

	res, err := dashboard.NewQuery(repo.NewReadModel(store)).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, res.LowStockCount)
	require.Len(t, res.LowStockProducts, 5)
	assert.Equal(t, 0, res.LowStockProducts[0].Quantity)
	assert.Equal(t, 4, res.LowStockProducts[4].Quantity)
	assert.True(t, res.TotalRevenue.IsZero())
	assert.Empty(t, res.RecentSales)
}
