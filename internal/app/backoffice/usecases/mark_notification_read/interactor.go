package mark_notification_read

import (
	"context"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Request identifies the notification to mark.
type Request struct {
	NotificationID string
}

// Interactor handles the mark notification read use case.
type Interactor struct {
	store contracts.StateStore
}

// NewInteractor creates a new mark notification read interactor.
func NewInteractor(store contracts.StateStore) *Interactor {
	return &Interactor{store: store}
}

// Execute sets read=true on the notification. Marking an already read
// notification succeeds and rewrites the collection unchanged.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	err := i.store.Update(ctx, func(st *domain.State) error {
		notifications := st.Notifications()
		for idx := range notifications {
			if notifications[idx].ID == req.NotificationID {
				notifications[idx].Read = true
				st.ReplaceNotifications(notifications)
				return nil
			}
		}
		return domain.ErrNotificationNotFound
	})
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
