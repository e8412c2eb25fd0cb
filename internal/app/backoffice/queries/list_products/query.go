package list_products

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Request contains filtering parameters.
type Request struct {
	Category string
	Search   string
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the products matching the filter, in stored order.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.Product, error) {
	filter := &contracts.ProductFilter{
		Category: req.Category,
		Search:   req.Search,
	}

	return q.readModel.ListProducts(ctx, filter)
}
