package domain

import "github.com/shopspring/decimal"

// ProfitCalculator is a domain service for the margin figures shown in reports.
// Profit is computed against the product's live cost price, so it moves when
// the cost is edited after the sale.
type ProfitCalculator struct{}

// NewProfitCalculator creates a new ProfitCalculator instance.
func NewProfitCalculator() *ProfitCalculator {
	return &ProfitCalculator{}
}

// LineProfit returns (unitPrice - costPrice) × quantity.
func (pc *ProfitCalculator) LineProfit(item SaleItem, costPrice Money) Money {
	return item.UnitPrice.Sub(costPrice).Times(item.Quantity)
}

// MarginPercent returns profit / revenue × 100, or 0 when there is no revenue.
func (pc *ProfitCalculator) MarginPercent(profit, revenue Money) float64 {
	if revenue.IsZero() {
		return 0
	}
	pct := profit.Decimal().Div(revenue.Decimal()).Mul(decimal.NewFromInt(100)).Round(2)
	f, _ := pct.Float64()
	return f
}

// AverageOrderValue returns revenue / orders, or 0 when there are no orders.
func (pc *ProfitCalculator) AverageOrderValue(revenue Money, orders int) Money {
	return revenue.DivideBy(orders)
}
