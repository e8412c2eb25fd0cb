package domain

import (
	"fmt"
	"time"
)

// MissingProductPolicy decides what happens to a sale line whose product no longer exists.
type MissingProductPolicy string

const (
	// MissingProductSkip records the line but leaves stock alone and reports the id.
	MissingProductSkip MissingProductPolicy = "skip"
	// MissingProductReject fails the whole sale before anything is applied.
	MissingProductReject MissingProductPolicy = "reject"
)

// ParseMissingProductPolicy parses a policy name; empty means skip.
func ParseMissingProductPolicy(s string) (MissingProductPolicy, error) {
	switch MissingProductPolicy(s) {
	case "", MissingProductSkip:
		return MissingProductSkip, nil
	case MissingProductReject:
		return MissingProductReject, nil
	}
	return "", fmt.Errorf("unknown missing product policy %q", s)
}

// SaleLine is one requested line of a sale. ProductName is only used when the
// product cannot be found; otherwise the live name is frozen into the item.
type SaleLine struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   Money
}

// SaleInput is the candidate sale handed to ApplySale.
type SaleInput struct {
	Lines         []SaleLine
	PaymentMethod string
	Customer      Customer
	Notes         string
}

// SaleApplication is what ApplySale did to the state.
type SaleApplication struct {
	Sale              Sale
	Alerts            []Notification // in emission order, one per line at most
	SkippedProductIDs []string
}

// ApplySale records a sale, decrements stock line by line and raises stock alerts.
//
// Lines are processed in order against a running copy of the products, so two
// lines for the same product decrement twice. Alerts are classified on the
// post-decrement quantity. The products and notifications collections are each
// replaced once, and only if something changed.
func ApplySale(st *State, in SaleInput, policy MissingProductPolicy, now time.Time, newID func() string) (*SaleApplication, error) {
	products := st.Products()
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}

	if policy == MissingProductReject {
		for _, line := range in.Lines {
			if _, ok := index[line.ProductID]; !ok {
				return nil, fmt.Errorf("sale line for product %s: %w", line.ProductID, ErrProductNotFound)
			}
		}
	}

	saleID := newID()
	result := &SaleApplication{}
	items := make([]SaleItem, 0, len(in.Lines))
	stockChanged := false

	for _, line := range in.Lines {
		i, ok := index[line.ProductID]
		if !ok {
			items = append(items, NewSaleItem(line.ProductID, line.ProductName, line.Quantity, line.UnitPrice))
			result.SkippedProductIDs = append(result.SkippedProductIDs, line.ProductID)
			continue
		}

		product := &products[i]
		items = append(items, NewSaleItem(product.ID, product.Name, line.Quantity, line.UnitPrice))

		remaining := product.Sell(line.Quantity, now)
		stockChanged = true

		level := ClassifyStock(remaining, product.Threshold)
		if level == StockInStock {
			continue
		}
		if alert, raised := StockAlert(newID(), product.Name, remaining, level, now); raised {
			result.Alerts = append(result.Alerts, alert)
		}
	}

	result.Sale = Sale{
		ID:            saleID,
		Products:      items,
		TotalAmount:   SumItems(items),
		PaymentMethod: in.PaymentMethod,
		Customer:      in.Customer,
		Date:          now,
		Notes:         in.Notes,
	}

	st.AppendSale(result.Sale)
	if stockChanged {
		st.ReplaceProducts(products)
	}
	st.PrependNotifications(result.Alerts...)

	return result, nil
}
