package delete_product

import (
	"context"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Request contains the data needed to delete a product.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	store contracts.StateStore
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(store contracts.StateStore) *Interactor {
	return &Interactor{store: store}
}

// Execute removes a product. Sales that reference it keep their frozen lines.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	err := i.store.Update(ctx, func(st *domain.State) error {
		products := st.Products()
		kept := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if p.ID != req.ProductID {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(products) {
			return domain.ErrProductNotFound
		}
		st.ReplaceProducts(kept)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
