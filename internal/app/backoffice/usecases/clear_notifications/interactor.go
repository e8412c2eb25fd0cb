package clear_notifications

import (
	"context"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Interactor handles the clear notifications use case.
type Interactor struct {
	store contracts.StateStore
}

// NewInteractor creates a new clear notifications interactor.
func NewInteractor(store contracts.StateStore) *Interactor {
	return &Interactor{store: store}
}

// Execute empties the notification collection.
func (i *Interactor) Execute(ctx context.Context) error {
	err := i.store.Update(ctx, func(st *domain.State) error {
		st.ReplaceNotifications(nil)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}
