package dashboard

import (
	"context"
	"sort"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/low_stock"
)

const listSize = 5

// Result is the dashboard overview.
type Result struct {
	TotalProducts    int
	LowStockCount    int
	TotalSales       int
	TotalRevenue     domain.Money
	RecentSales      []domain.Sale    // newest first
	LowStockProducts []domain.Product // lowest quantity first
}

// Query handles the dashboard query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new dashboard query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{readModel: readModel}
}

// Execute computes the overview from the current products and sales.
func (q *Query) Execute(ctx context.Context) (*Result, error) {
	products, err := q.readModel.ListProducts(ctx, nil)
	if err != nil {
		return nil, err
	}
	sales, err := q.readModel.ListSales(ctx, nil)
	if err != nil {
		return nil, err
	}

	res := &Result{
		TotalProducts:    len(products),
		LowStockCount:    len(low_stock.Select(products, 0)),
		TotalSales:       len(sales),
		TotalRevenue:     domain.Zero(),
		LowStockProducts: low_stock.Select(products, listSize),
	}
	for _, sale := range sales {
		res.TotalRevenue = res.TotalRevenue.Add(sale.TotalAmount)
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})
	if len(sales) > listSize {
		sales = sales[:listSize]
	}
	res.RecentSales = sales

	return res, nil
}
