package login

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Request contains the email to sign in with. There are no passwords.
type Request struct {
	Email string
}

// Interactor handles the login use case.
type Interactor struct {
	store  contracts.StateStore
	logger logrus.FieldLogger
}

// NewInteractor creates a new login interactor.
func NewInteractor(store contracts.StateStore, logger logrus.FieldLogger) *Interactor {
	return &Interactor{
		store:  store,
		logger: logger,
	}
}

// Execute looks the user up by email and makes them the session user.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.User, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, domain.ErrEmptyEmail
	}

	var user domain.User
	err := i.store.Update(ctx, func(st *domain.State) error {
		for _, u := range st.Users() {
			if u.HasEmail(req.Email) {
				user = u
				st.SetSession(&user)
				return nil
			}
		}
		return domain.ErrInvalidCredentials
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	i.logger.WithFields(logrus.Fields{"userId": user.ID, "role": user.Role}).Info("user signed in")
	return &user, nil
}
