package drafts

import (
	"context"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/create_product"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/update_product"
)

// ProductCreator runs the create product usecase.
type ProductCreator interface {
	Execute(ctx context.Context, req *create_product.Request) (*domain.Product, error)
}

// ProductUpdater runs the update product usecase.
type ProductUpdater interface {
	Execute(ctx context.Context, req *update_product.Request) (*domain.Product, error)
}

// ProductDraft is the product form.
type ProductDraft struct {
	Name        string       `json:"name" validate:"notblank"`
	Description string       `json:"description"`
	Category    string       `json:"category" validate:"notblank"`
	Price       domain.Money `json:"price" validate:"gt=0"`
	CostPrice   domain.Money `json:"costPrice" validate:"gte=0"`
	Quantity    int          `json:"quantity" validate:"gte=0"`
	Threshold   int          `json:"threshold" validate:"gte=0"`
	ImageURL    string       `json:"imageUrl" validate:"omitempty,url"`
}

// NewProductDraft returns an empty product form.
func NewProductDraft() *ProductDraft {
	return &ProductDraft{}
}

// EditProductDraft returns the form prefilled from p.
func EditProductDraft(p domain.Product) *ProductDraft {
	d := p.ProductDetails
	return &ProductDraft{
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       d.Price,
		CostPrice:   d.CostPrice,
		Quantity:    d.Quantity,
		Threshold:   d.Threshold,
		ImageURL:    d.ImageURL,
	}
}

// Validate checks every field and reports all failures at once.
func (d *ProductDraft) Validate() error {
	return check(d)
}

// Details converts the draft to domain fields.
func (d *ProductDraft) Details() domain.ProductDetails {
	return domain.ProductDetails{
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       d.Price,
		CostPrice:   d.CostPrice,
		Quantity:    d.Quantity,
		Threshold:   d.Threshold,
		ImageURL:    d.ImageURL,
	}
}

// Commit validates the draft and creates the product.
func (d *ProductDraft) Commit(ctx context.Context, creator ProductCreator) (*domain.Product, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return creator.Execute(ctx, &create_product.Request{Details: d.Details()})
}

// CommitUpdate validates the draft and replaces product productID.
func (d *ProductDraft) CommitUpdate(ctx context.Context, productID string, updater ProductUpdater) (*domain.Product, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return updater.Execute(ctx, &update_product.Request{ProductID: productID, Details: d.Details()})
}
