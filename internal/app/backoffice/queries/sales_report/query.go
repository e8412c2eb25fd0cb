package sales_report

import (
	"context"
	"sort"
	"time"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
)

const topProductsSize = 5

// DayLayout is the key format of SalesByDay.
const DayLayout = "2006-01-02"

// Request contains the report filters. Start and End are calendar days; End
// covers the whole day. Zero values default to the last month up to today.
type Request struct {
	Start    time.Time
	End      time.Time
	Category string
}

// ProductSales is one row of the top products table.
type ProductSales struct {
	ProductID   string
	ProductName string
	Quantity    int
	Revenue     domain.Money
}

// DaySales is one point of the sales chart.
type DaySales struct {
	Date    string
	Sales   int
	Revenue domain.Money
}

// Report is the reports page.
type Report struct {
	Start             time.Time
	End               time.Time
	Category          string
	Categories        []string
	TotalSales        int
	TotalRevenue      domain.Money
	TotalProfit       domain.Money
	ProfitMargin      float64
	AverageOrderValue domain.Money
	TopProducts       []ProductSales
	SalesByDay        []DaySales
}

// Query handles the sales report query use case.
type Query struct {
	readModel contracts.ReadModel
	clock     clock.Clock
	calc      *domain.ProfitCalculator
}

// NewQuery creates a new sales report query.
func NewQuery(readModel contracts.ReadModel, clock clock.Clock) *Query {
	return &Query{
		readModel: readModel,
		clock:     clock,
		calc:      domain.NewProfitCalculator(),
	}
}

// Execute filters the sales and aggregates them.
func (q *Query) Execute(ctx context.Context, req *Request) (*Report, error) {
	// 1. Resolve the date range
	start, end := q.resolveRange(req)

	// 2. Load data
	products, err := q.readModel.ListProducts(ctx, nil)
	if err != nil {
		return nil, err
	}
	sales, err := q.readModel.ListSales(ctx, &contracts.SaleFilter{From: start, To: end})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// 3. Category filter on the live product of any line
	if req.Category != "" {
		filtered := sales[:0]
		for _, sale := range sales {
			for _, item := range sale.Products {
				if p, ok := byID[item.ProductID]; ok && p.Category == req.Category {
					filtered = append(filtered, sale)
					break
				}
			}
		}
		sales = filtered
	}

	// 4. Aggregate
	report := &Report{
		Start:        start,
		End:          end,
		Category:     req.Category,
		Categories:   categories(products),
		TotalSales:   len(sales),
		TotalRevenue: domain.Zero(),
		TotalProfit:  domain.Zero(),
	}

	top := make(map[string]*ProductSales)
	var topOrder []string
	days := make(map[string]*DaySales)

	for _, sale := range sales {
		report.TotalRevenue = report.TotalRevenue.Add(sale.TotalAmount)

		for _, item := range sale.Products {
			if p, ok := byID[item.ProductID]; ok {
				report.TotalProfit = report.TotalProfit.Add(q.calc.LineProfit(item, p.CostPrice))
			}

			row, ok := top[item.ProductID]
			if !ok {
				row = &ProductSales{ProductID: item.ProductID, ProductName: item.ProductName, Revenue: domain.Zero()}
				top[item.ProductID] = row
				topOrder = append(topOrder, item.ProductID)
			}
			row.Quantity += item.Quantity
			row.Revenue = row.Revenue.Add(item.TotalPrice)
		}

		key := sale.Date.UTC().Format(DayLayout)
		day, ok := days[key]
		if !ok {
			day = &DaySales{Date: key, Revenue: domain.Zero()}
			days[key] = day
		}
		day.Sales++
		day.Revenue = day.Revenue.Add(sale.TotalAmount)
	}

	report.ProfitMargin = q.calc.MarginPercent(report.TotalProfit, report.TotalRevenue)
	report.AverageOrderValue = q.calc.AverageOrderValue(report.TotalRevenue, report.TotalSales)

	report.TopProducts = make([]ProductSales, 0, len(topOrder))
	for _, id := range topOrder {
		report.TopProducts = append(report.TopProducts, *top[id])
	}
	sort.SliceStable(report.TopProducts, func(i, j int) bool {
		return report.TopProducts[i].Revenue.GreaterThan(report.TopProducts[j].Revenue)
	})
	if len(report.TopProducts) > topProductsSize {
		report.TopProducts = report.TopProducts[:topProductsSize]
	}

	report.SalesByDay = make([]DaySales, 0, len(days))
	for _, d := range days {
		report.SalesByDay = append(report.SalesByDay, *d)
	}
	sort.Slice(report.SalesByDay, func(i, j int) bool {
		return report.SalesByDay[i].Date < report.SalesByDay[j].Date
	})

	return report, nil
}

// resolveRange truncates both bounds to the day and pushes end to its last millisecond.
func (q *Query) resolveRange(req *Request) (time.Time, time.Time) {
	now := q.clock.Now()

	start, end := req.Start, req.End
	if end.IsZero() {
		end = now
	}
	if start.IsZero() {
		start = end.AddDate(0, -1, 0)
	}

	start = startOfDay(start)
	end = startOfDay(end).Add(24*time.Hour - time.Millisecond)
	return start, end
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// categories returns the distinct product categories in first-seen order.
func categories(products []domain.Product) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
