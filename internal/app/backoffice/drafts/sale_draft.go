package drafts

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/apply_sale"
)

// DefaultPaymentMethod is preselected on a new sale.
const DefaultPaymentMethod = "Cash"

// SaleApplier runs the apply sale usecase.
type SaleApplier interface {
	Execute(ctx context.Context, req *apply_sale.Request) (*apply_sale.Result, error)
}

// SaleLineDraft is one row of the sale form. UnitPrice is the live price at
// the moment the product was picked.
type SaleLineDraft struct {
	ProductID   string       `json:"productId" validate:"required"`
	ProductName string       `json:"productName"`
	Quantity    int          `json:"quantity" validate:"gte=1"`
	UnitPrice   domain.Money `json:"unitPrice" validate:"gte=0"`
}

// TotalPrice returns Quantity × UnitPrice.
func (l SaleLineDraft) TotalPrice() domain.Money {
	return l.UnitPrice.Times(l.Quantity)
}

// SaleDraft is the point-of-sale form, built over a snapshot of the products.
type SaleDraft struct {
	Lines         []SaleLineDraft `json:"products" validate:"min=1,dive"`
	PaymentMethod string          `json:"paymentMethod" validate:"notblank"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone" validate:"omitempty,phone"`
	Notes         string          `json:"notes"`

	products []domain.Product
}

// NewSaleDraft starts an empty sale over products.
func NewSaleDraft(products []domain.Product) *SaleDraft {
	return &SaleDraft{
		Lines:         make([]SaleLineDraft, 0),
		PaymentMethod: DefaultPaymentMethod,
		products:      append([]domain.Product(nil), products...),
	}
}

func (d *SaleDraft) product(id string) (domain.Product, bool) {
	for _, p := range d.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (d *SaleDraft) selected(id string) bool {
	for _, l := range d.Lines {
		if l.ProductID == id {
			return true
		}
	}
	return false
}

func lineFor(p domain.Product) SaleLineDraft {
	return SaleLineDraft{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    1,
		UnitPrice:   p.Price,
	}
}

// AddLine appends productID at quantity 1 and its live price.
func (d *SaleDraft) AddLine(productID string) error {
	p, ok := d.product(productID)
	if !ok {
		return domain.ErrProductNotFound
	}
	d.Lines = append(d.Lines, lineFor(p))
	return nil
}

// AddNextAvailable appends the first in-stock product not already on the
// sale. It reports false when there is none.
func (d *SaleDraft) AddNextAvailable() bool {
	for _, p := range d.products {
		if p.Quantity > 0 && !d.selected(p.ID) {
			d.Lines = append(d.Lines, lineFor(p))
			return true
		}
	}
	return false
}

// ChangeProduct swaps the product of line i, resetting it to quantity 1.
func (d *SaleDraft) ChangeProduct(i int, productID string) error {
	if i < 0 || i >= len(d.Lines) {
		return nil
	}
	p, ok := d.product(productID)
	if !ok {
		return domain.ErrProductNotFound
	}
	d.Lines[i] = lineFor(p)
	return nil
}

// SetQuantity sets line i to q clamped to [1, stock]. A product with no stock
// clamps to its stock, which fails validation.
func (d *SaleDraft) SetQuantity(i, q int) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	p, ok := d.product(d.Lines[i].ProductID)
	if !ok {
		return
	}
	d.Lines[i].Quantity = min(max(1, q), p.Quantity)
}

// RemoveLine drops line i.
func (d *SaleDraft) RemoveLine(i int) {
	if i < 0 || i >= len(d.Lines) {
		return
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
}

// Total returns the sum of the line totals.
func (d *SaleDraft) Total() domain.Money {
	total := domain.Zero()
	for _, l := range d.Lines {
		total = total.Add(l.TotalPrice())
	}
	return total
}

// Validate checks the lines, the payment method and the optional phone.
func (d *SaleDraft) Validate() error {
	return check(d)
}

// Request converts the draft to an apply sale request.
func (d *SaleDraft) Request() *apply_sale.Request {
	req := &apply_sale.Request{
		Lines:         make([]apply_sale.Line, 0, len(d.Lines)),
		PaymentMethod: d.PaymentMethod,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Notes:         d.Notes,
	}
	for _, l := range d.Lines {
		req.Lines = append(req.Lines, apply_sale.Line{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return req
}

// Commit validates the draft and records the sale.
func (d *SaleDraft) Commit(ctx context.Context, applier SaleApplier) (*apply_sale.Result, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return applier.Execute(ctx, d.Request())
}
