package update_product_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/update_product"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	clk := testutil.NewMockClock()
	store := testutil.OpenEmptyStore(t, mem, clk)
	existing := testutil.CreateTestProduct(t, store, "Desk Lamp")
	uc := update_product.NewInteractor(store, clk)

	t.Run("replaces fields and stamps updatedAt", func(t *testing.T) {
		clk.Advance(time.Hour)
		d := testutil.ProductDetails("Desk Lamp - LED", testutil.WithStock(3, 7))

		p, err := uc.Execute(ctx, &update_product.Request{ProductID: existing.ID, Details: d})
		require.NoError(t, err)
		assert.Equal(t, "Desk Lamp - LED", p.Name)
		assert.Equal(t, testutil.ReferenceTime.Add(time.Hour), p.UpdatedAt)
		assert.Equal(t, existing.CreatedAt, p.CreatedAt)

		persisted := testutil.GetProduct(t, mem, existing.ID)
		assert.Equal(t, 3, persisted.Quantity)
		assert.True(t, persisted.IsLowStock())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.Execute(ctx, &update_product.Request{ProductID: "missing", Details: testutil.ProductDetails("x")})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("invalid details", func(t *testing.T) {
		d := testutil.ProductDetails("Desk Lamp")
		d.Quantity = -1
		_, err := uc.Execute(ctx, &update_product.Request{ProductID: existing.ID, Details: d})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})
}
