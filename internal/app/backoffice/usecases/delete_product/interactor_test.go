package delete_product_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/delete_product"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

func TestDeleteProduct_KeepsSalesHistory(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemoryStore()
	store := testutil.OpenStore(t, mem, testutil.NewMockClock())
	uc := delete_product.NewInteractor(store)

	laptop := store.Snapshot().Products()[0]
	require.NoError(t, uc.Execute(ctx, &delete_product.Request{ProductID: laptop.ID}))

	st := store.Snapshot()
	assert.Len(t, st.Products(), 6)
	_, found := st.FindProduct(laptop.ID)
	assert.False(t, found)

	sales := testutil.ReadSales(t, mem)
	assert.True(t, sales[0].HasProduct(laptop.ID))
	assert.Equal(t, laptop.Name, sales[0].Products[0].ProductName)

	err := uc.Execute(ctx, &delete_product.Request{ProductID: laptop.ID})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
