package list_users

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Query handles the list users query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list users query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute returns every user.
func (q *Query) Execute(ctx context.Context) ([]domain.User, error) {
	return q.readModel.ListUsers(ctx)
}
