package contracts

import (
	"context"
	"time"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// ProductFilter defines filtering options for listing products.
type ProductFilter struct {
	Category string
	Search   string // case-insensitive substring of name, description or category
}

// SaleFilter defines filtering options for listing sales.
// Zero times leave that side of the range open. Both bounds are inclusive.
type SaleFilter struct {
	From time.Time
	To   time.Time
}

// ReadModel defines the interface for back-office queries.
// All results are copies taken from a single snapshot.
type ReadModel interface {
	// GetProduct retrieves a product by ID
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts returns products in stored order
	ListProducts(ctx context.Context, filter *ProductFilter) ([]domain.Product, error)

	// ListSales returns sales in stored (oldest first) order
	ListSales(ctx context.Context, filter *SaleFilter) ([]domain.Sale, error)

	// ListNotifications returns notifications newest first
	ListNotifications(ctx context.Context) ([]domain.Notification, error)

	// ListUsers returns every user
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CurrentUser returns the signed-in user, or nil
	CurrentUser(ctx context.Context) (*domain.User, error)
}
