package update_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
)

// Request contains the data needed to update a product.
type Request struct {
	ProductID string
	Details   domain.ProductDetails
}

// Interactor handles the update product use case.
type Interactor struct {
	store contracts.StateStore
	clock clock.Clock
}

// NewInteractor creates a new update product interactor.
func NewInteractor(store contracts.StateStore, clock clock.Clock) *Interactor {
	return &Interactor{
		store: store,
		clock: clock,
	}
}

// Execute replaces the editable fields of a product and stamps updatedAt.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	// 1. Validate request
	if err := req.Details.Validate(); err != nil {
		return nil, err
	}

	// 2. Revise in place
	var updated domain.Product
	err := i.store.Update(ctx, func(st *domain.State) error {
		products := st.Products()
		for idx := range products {
			if products[idx].ID != req.ProductID {
				continue
			}
			if err := products[idx].Revise(req.Details, i.clock.Now()); err != nil {
				return err
			}
			updated = products[idx]
			st.ReplaceProducts(products)
			return nil
		}
		return domain.ErrProductNotFound
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &updated, nil
}
