package domain

import "time"

// ProductDetails holds the editable fields of a product.
type ProductDetails struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       Money  `json:"price"`
	CostPrice   Money  `json:"costPrice"`
	Quantity    int    `json:"quantity"`
	Threshold   int    `json:"threshold"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Validate checks the invariants enforced when a product is entered or edited.
func (d ProductDetails) Validate() error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.Category == "" {
		return ErrInvalidCategory
	}
	if !d.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if d.CostPrice.IsNegative() {
		return ErrInvalidCostPrice
	}
	if d.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if d.Threshold < 0 {
		return ErrInvalidThreshold
	}
	return nil
}

// Product is an inventory item.
// Quantity is not floored at zero: a sale that oversells drives it negative.
type Product struct {
	ID string `json:"id"`
	ProductDetails
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProduct creates a validated product stamped with now.
func NewProduct(id string, details ProductDetails, now time.Time) (Product, error) {
	if err := details.Validate(); err != nil {
		return Product{}, err
	}

	return Product{
		ID:             id,
		ProductDetails: details,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Revise replaces the editable fields, keeping identity and creation time.
func (p *Product) Revise(details ProductDetails, now time.Time) error {
	if err := details.Validate(); err != nil {
		return err
	}
	p.ProductDetails = details
	p.UpdatedAt = now
	return nil
}

// Sell removes quantity units from stock and returns the new quantity.
// The subtraction is unchecked; clamping belongs to the sale draft.
func (p *Product) Sell(quantity int, now time.Time) int {
	p.Quantity -= quantity
	p.UpdatedAt = now
	return p.Quantity
}

// StockLevel classifies the current quantity against the threshold.
func (p Product) StockLevel() StockLevel {
	return ClassifyStock(p.Quantity, p.Threshold)
}

// IsLowStock reports quantity <= threshold, which includes out-of-stock products.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.Threshold
}
