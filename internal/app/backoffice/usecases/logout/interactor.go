package logout

import (
	"context"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Interactor handles the logout use case.
type Interactor struct {
	store contracts.StateStore
}

// NewInteractor creates a new logout interactor.
func NewInteractor(store contracts.StateStore) *Interactor {
	return &Interactor{store: store}
}

// Execute clears the session and deletes its key. Logging out with no
// session is a no-op.
func (i *Interactor) Execute(ctx context.Context) error {
	err := i.store.Update(ctx, func(st *domain.State) error {
		if st.Session() == nil {
			return nil
		}
		st.SetSession(nil)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}
