package update_user

import (
	"context"
	"fmt"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Request contains the data needed to update a user.
type Request struct {
	UserID  string
	Details domain.UserDetails
}

// Interactor handles the update user use case.
type Interactor struct {
	store contracts.StateStore
}

// NewInteractor creates a new update user interactor.
func NewInteractor(store contracts.StateStore) *Interactor {
	return &Interactor{store: store}
}

// Execute replaces a user's details. When the user is signed in, the stored
// session is rewritten too.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.User, error) {
	// 1. Validate request
	if err := req.Details.Validate(); err != nil {
		return nil, err
	}

	// 2. Replace and refresh the session
	var updated domain.User
	err := i.store.Update(ctx, func(st *domain.State) error {
		users := st.Users()
		found := -1
		for idx, u := range users {
			if u.ID == req.UserID {
				found = idx
				break
			}
		}
		if found < 0 {
			return domain.ErrUserNotFound
		}
		for _, u := range users {
			if u.ID != req.UserID && u.SameEmail(req.Details.Email) {
				return domain.ErrEmailTaken
			}
		}

		users[found].UserDetails = req.Details
		updated = users[found]
		st.ReplaceUsers(users)

		if session := st.Session(); session != nil && session.ID == updated.ID {
			st.SetSession(&updated)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &updated, nil
}
