package testutil

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/repo"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/internal/pkg/logging"
)

// OpenStore opens a domain store over store with the default key prefix.
func OpenStore(t *testing.T, store kv.Store, clk clock.Clock) *repo.Store {
	t.Helper()

	s, err := repo.Open(context.Background(), store, repo.NewKeys(""), clk, logging.Discard())
	require.NoError(t, err, "failed to open domain store")
	return s
}

// PutEmptyCollections writes an empty list for every seeded collection so the
// next Open starts empty instead of seeded.
func PutEmptyCollections(t *testing.T, store kv.Store) {
	t.Helper()

	keys := repo.NewKeys("")
	for _, c := range []string{domain.CollectionProducts, domain.CollectionSales, domain.CollectionNotifications, domain.CollectionUsers} {
		require.NoError(t, store.Put(context.Background(), keys.For(c), []byte("[]")))
	}
}

// OpenEmptyStore opens a domain store whose collections start empty instead of seeded.
func OpenEmptyStore(t *testing.T, store kv.Store, clk clock.Clock) *repo.Store {
	t.Helper()

	PutEmptyCollections(t, store)
	return OpenStore(t, store, clk)
}

// ProductOption customises a test product.
type ProductOption func(*domain.ProductDetails)

// WithStock sets quantity and threshold.
func WithStock(quantity, threshold int) ProductOption {
	return func(d *domain.ProductDetails) {
		d.Quantity = quantity
		d.Threshold = threshold
	}
}

// WithCategory sets the category.
func WithCategory(category string) ProductOption {
	return func(d *domain.ProductDetails) { d.Category = category }
}

// WithPrices sets the selling and cost prices.
func WithPrices(price, cost int64) ProductOption {
	return func(d *domain.ProductDetails) {
		d.Price = domain.NewMoney(price)
		d.CostPrice = domain.NewMoney(cost)
	}
}

// ProductDetails returns valid product fields with options applied.
func ProductDetails(name string, opts ...ProductOption) domain.ProductDetails {
	d := domain.ProductDetails{
		Name:        name,
		Description: "Test product description",
		Category:    "Electronics",
		Price:       domain.NewMoney(1000),
		CostPrice:   domain.NewMoney(600),
		Quantity:    20,
		Threshold:   5,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// CreateTestProduct inserts a product directly into the domain store.
func CreateTestProduct(t *testing.T, store *repo.Store, name string, opts ...ProductOption) domain.Product {
	t.Helper()

	p, err := domain.NewProduct(uuid.New().String(), ProductDetails(name, opts...), time.Now())
	require.NoError(t, err, "failed to build test product")

	err = store.Update(context.Background(), func(st *domain.State) error {
		st.ReplaceProducts(append(st.Products(), p))
		return nil
	})
	require.NoError(t, err, "failed to create test product")
	return p
}

// CreateTestUser inserts a user directly into the domain store.
func CreateTestUser(t *testing.T, store *repo.Store, name, email string, role domain.Role) domain.User {
	t.Helper()

	u, err := domain.NewUser(uuid.New().String(), domain.UserDetails{Name: name, Email: email, Role: role})
	require.NoError(t, err, "failed to build test user")

	err = store.Update(context.Background(), func(st *domain.State) error {
		st.ReplaceUsers(append(st.Users(), u))
		return nil
	})
	require.NoError(t, err, "failed to create test user")
	return u
}

// GetProduct reads a product from the persisted products collection.
func GetProduct(t *testing.T, store kv.Store, productID string) domain.Product {
	t.Helper()

	for _, p := range ReadProducts(t, store) {
		if p.ID == productID {
			return p
		}
	}
	t.Fatalf("product %s not persisted", productID)
	return domain.Product{}
}

// ReadProducts decodes the persisted products collection.
func ReadProducts(t *testing.T, store kv.Store) []domain.Product {
	t.Helper()
	var out []domain.Product
	ReadCollection(t, store, domain.CollectionProducts, &out)
	return out
}

// ReadNotifications decodes the persisted notifications collection.
func ReadNotifications(t *testing.T, store kv.Store) []domain.Notification {
	t.Helper()
	var out []domain.Notification
	ReadCollection(t, store, domain.CollectionNotifications, &out)
	return out
}

// ReadSales decodes the persisted sales collection.
func ReadSales(t *testing.T, store kv.Store) []domain.Sale {
	t.Helper()
	var out []domain.Sale
	ReadCollection(t, store, domain.CollectionSales, &out)
	return out
}

// ReadCollection decodes the persisted value of collection into v.
func ReadCollection(t *testing.T, store kv.Store, collection string, v any) {
	t.Helper()

	raw, found, err := store.Get(context.Background(), repo.NewKeys("").For(collection))
	require.NoError(t, err, "failed to read %s", collection)
	require.True(t, found, "%s not persisted", collection)
	require.NoError(t, json.Unmarshal(raw, v), "failed to decode %s", collection)
}
