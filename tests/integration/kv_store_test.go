//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

// backends returns a fresh store per backend with its cleanup.
func backends(t *testing.T) map[string]func(t *testing.T) (kv.Store, func()) {
	t.Helper()

	return map[string]func(t *testing.T) (kv.Store, func()){
		"redis": func(t *testing.T) (kv.Store, func()) {
			client, cleanup := testutil.SetupRedisTest(t)
			return kv.NewRedisStoreFromClient(client), cleanup
		},
		"spanner": func(t *testing.T) (kv.Store, func()) {
			client, cleanup := testutil.SetupSpannerTest(t)
			return kv.NewSpannerStoreFromClient(client), cleanup
		},
	}
}

func TestKVStore_PutGetOverwrite(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store, cleanup := open(t)
			defer cleanup()
			ctx := context.Background()

			_, ok, err := store.Get(ctx, "erp_products")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Put(ctx, "erp_products", []byte(`[{"id":"a"}]`)))
			require.NoError(t, store.Put(ctx, "erp_products", []byte(`[]`)))

			value, ok, err := store.Get(ctx, "erp_products")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.JSONEq(t, `[]`, string(value))
		})
	}
}

func TestKVStore_DeleteAndKeys(t *testing.T) {
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store, cleanup := open(t)
			defer cleanup()
			ctx := context.Background()

			for _, key := range []string{"erp_sales", "erp_users", "shop_users"} {
				require.NoError(t, store.Put(ctx, key, []byte(`[]`)))
			}

			keys, err := store.Keys(ctx, "erp_")
			require.NoError(t, err)
			assert.Equal(t, []string{"erp_sales", "erp_users"}, keys)

			require.NoError(t, store.Delete(ctx, "erp_sales"))
			require.NoError(t, store.Delete(ctx, "erp_sales"), "deleting a missing key is not an error")

			_, ok, err := store.Get(ctx, "erp_sales")
			require.NoError(t, err)
			assert.False(t, ok)

			keys, err = store.Keys(ctx, "erp_")
			require.NoError(t, err)
			assert.Equal(t, []string{"erp_users"}, keys)
		})
	}
}
