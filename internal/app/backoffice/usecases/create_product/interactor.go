package create_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
)

// Request contains the data needed to create a product.
type Request struct {
	Details domain.ProductDetails
}

// Interactor handles the create product use case.
type Interactor struct {
	store contracts.StateStore
	clock clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(store contracts.StateStore, clock clock.Clock) *Interactor {
	return &Interactor{
		store: store,
		clock: clock,
	}
}

// Execute appends a new product and returns it.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Product, error) {
	// 1. Create domain entity (validates details)
	product, err := domain.NewProduct(uuid.New().String(), req.Details, i.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	// 2. Append and persist
	err = i.store.Update(ctx, func(st *domain.State) error {
		st.ReplaceProducts(append(st.Products(), product))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	return &product, nil
}
