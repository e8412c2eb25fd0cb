package low_stock

import (
	"context"
	"sort"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Request limits the result. Limit <= 0 returns every low-stock product.
type Request struct {
	Limit int
}

// Query handles the low stock query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new low stock query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns every product with quantity <= threshold, lowest quantity
// first. It is recomputed from the current products on every call.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.Product, error) {
	products, err := q.readModel.ListProducts(ctx, nil)
	if err != nil {
		return nil, err
	}
	return Select(products, req.Limit), nil
}

// Select filters and orders products the same way Execute does.
func Select(products []domain.Product, limit int) []domain.Product {
	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})

	if limit > 0 && len(low) > limit {
		low = low[:limit]
	}
	return low
}
