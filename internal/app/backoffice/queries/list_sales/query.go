package list_sales

import (
	"context"
	"sort"
	"time"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// Request contains the optional date range. Zero values leave the side open.
type Request struct {
	From time.Time
	To   time.Time
}

// Query handles the list sales query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list sales query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns sales newest first, the order of the sales page.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.Sale, error) {
	sales, err := q.readModel.ListSales(ctx, &contracts.SaleFilter{From: req.From, To: req.To})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
	return sales, nil
}
