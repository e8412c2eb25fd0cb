package domain

// StockLevel is the alert band a product quantity falls into.
type StockLevel string

const (
	StockInStock    StockLevel = "in_stock"
	StockLow        StockLevel = "low_stock"
	StockOutOfStock StockLevel = "out_of_stock"
)

// ClassifyStock maps a quantity to its band:
// quantity <= 0 is out of stock, 0 < quantity <= threshold is low.
func ClassifyStock(quantity, threshold int) StockLevel {
	switch {
	case quantity <= 0:
		return StockOutOfStock
	case quantity <= threshold:
		return StockLow
	default:
		return StockInStock
	}
}
