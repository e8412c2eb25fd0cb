package add_user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Request contains the data needed to add a user.
type Request struct {
	Details domain.UserDetails
}

// Interactor handles the add user use case.
type Interactor struct {
	store contracts.StateStore
}

// NewInteractor creates a new add user interactor.
func NewInteractor(store contracts.StateStore) *Interactor {
	return &Interactor{store: store}
}

// Execute appends a user. The email must not belong to another user.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.User, error) {
	// 1. Create domain entity (validates details)
	user, err := domain.NewUser(uuid.New().String(), req.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// 2. Check uniqueness and append
	err = i.store.Update(ctx, func(st *domain.State) error {
		users := st.Users()
		for _, u := range users {
			if u.SameEmail(user.Email) {
				return domain.ErrEmailTaken
			}
		}
		st.ReplaceUsers(append(users, user))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	return &user, nil
}
