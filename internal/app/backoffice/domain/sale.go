package domain

import "time"

// SaleItem is one line of a sale. ProductName and UnitPrice are frozen at sale
// time and intentionally drift from the live product afterwards.
type SaleItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unitPrice"`
	TotalPrice  Money  `json:"totalPrice"`
}

// NewSaleItem builds a line with TotalPrice = Quantity × UnitPrice.
func NewSaleItem(productID, productName string, quantity int, unitPrice Money) SaleItem {
	return SaleItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice.Times(quantity),
	}
}

// Customer holds the optional customer fields captured at checkout.
type Customer struct {
	Name  string `json:"customerName,omitempty"`
	Phone string `json:"customerPhone,omitempty"`
}

// Sale is an immutable point-of-sale record.
type Sale struct {
	ID            string     `json:"id"`
	Products      []SaleItem `json:"products"`
	TotalAmount   Money      `json:"totalAmount"`
	PaymentMethod string     `json:"paymentMethod"`
	Customer
	Date  time.Time `json:"date"`
	Notes string    `json:"notes,omitempty"`
}

// SumItems totals the line prices.
func SumItems(items []SaleItem) Money {
	total := Zero()
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

// HasProduct reports whether any line references productID.
func (s Sale) HasProduct(productID string) bool {
	for _, item := range s.Products {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

func (s Sale) clone() Sale {
	out := s
	out.Products = append([]SaleItem(nil), s.Products...)
	if out.Products == nil {
		out.Products = []SaleItem{}
	}
	return out
}
