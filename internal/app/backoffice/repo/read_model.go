package repo

import (
	"context"
	"strings"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// ReadModelImpl implements ReadModel over domain store snapshots.
type ReadModelImpl struct {
	store contracts.StateStore
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(store contracts.StateStore) contracts.ReadModel {
	return &ReadModelImpl{
		store: store,
	}
}

// GetProduct retrieves a product by ID.
func (rm *ReadModelImpl) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	p, ok := rm.store.Snapshot().FindProduct(productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// ListProducts returns the products matching filter.
func (rm *ReadModelImpl) ListProducts(_ context.Context, filter *contracts.ProductFilter) ([]domain.Product, error) {
	products := rm.store.Snapshot().Products()
	if filter == nil {
		return products, nil
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func matchesSearch(p domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// ListSales returns the sales dated within filter.
func (rm *ReadModelImpl) ListSales(_ context.Context, filter *contracts.SaleFilter) ([]domain.Sale, error) {
	sales := rm.store.Snapshot().Sales()
	if filter == nil || (filter.From.IsZero() && filter.To.IsZero()) {
		return sales, nil
	}

	out := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if !filter.From.IsZero() && sale.Date.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && sale.Date.After(filter.To) {
			continue
		}
		out = append(out, sale)
	}
	return out, nil
}

// ListNotifications returns notifications newest first.
func (rm *ReadModelImpl) ListNotifications(_ context.Context) ([]domain.Notification, error) {
	return rm.store.Snapshot().Notifications(), nil
}

// ListUsers returns every user.
func (rm *ReadModelImpl) ListUsers(_ context.Context) ([]domain.User, error) {
	return rm.store.Snapshot().Users(), nil
}

// CurrentUser returns the signed-in user, or nil.
func (rm *ReadModelImpl) CurrentUser(_ context.Context) (*domain.User, error) {
	return rm.store.Snapshot().Session(), nil
}
