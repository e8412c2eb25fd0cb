package current_user

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Query handles the current user query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new current user query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns the signed-in user, or nil when nobody is signed in.
func (q *Query) Execute(ctx context.Context) (*domain.User, error) {
	return q.readModel.CurrentUser(ctx)
}
