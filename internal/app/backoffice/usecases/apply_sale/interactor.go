package apply_sale

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/contracts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
)

// Line is one requested sale line.
type Line struct {
	ProductID   string
	ProductName string // used only if the product no longer exists
	Quantity    int
	UnitPrice   domain.Money
}

// Request contains the data needed to record a sale.
type Request struct {
	Lines         []Line
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	Notes         string
}

// Result describes the recorded sale.
type Result struct {
	Sale              domain.Sale
	Notifications     []domain.Notification
	SkippedProductIDs []string
}

// Interactor handles the apply sale use case.
type Interactor struct {
	store  contracts.StateStore
	clock  clock.Clock
	policy domain.MissingProductPolicy
	logger logrus.FieldLogger
}

// NewInteractor creates a new apply sale interactor.
func NewInteractor(
	store contracts.StateStore,
	clock clock.Clock,
	policy domain.MissingProductPolicy,
	logger logrus.FieldLogger,
) *Interactor {
	return &Interactor{
		store:  store,
		clock:  clock,
		policy: policy,
		logger: logger,
	}
}

// Execute records the sale, decrements stock and raises stock alerts as one update.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	// 1. Validate request
	if err := i.validate(req); err != nil {
		return nil, err
	}

	// 2. Build domain input
	input := domain.SaleInput{
		Lines:         make([]domain.SaleLine, 0, len(req.Lines)),
		PaymentMethod: req.PaymentMethod,
		Customer:      domain.Customer{Name: req.CustomerName, Phone: req.CustomerPhone},
		Notes:         req.Notes,
	}
	for _, l := range req.Lines {
		input.Lines = append(input.Lines, domain.SaleLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	// 3. Apply against the store (persists sales, products and notifications)
	var applied *domain.SaleApplication
	err := i.store.Update(ctx, func(st *domain.State) error {
		var err error
		applied, err = domain.ApplySale(st, input, i.policy, i.clock.Now(), newID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply sale: %w", err)
	}

	// 4. Report skipped lines
	if len(applied.SkippedProductIDs) > 0 {
		i.logger.WithFields(logrus.Fields{
			"saleId":     applied.Sale.ID,
			"productIds": applied.SkippedProductIDs,
		}).Warn("sale lines reference unknown products, stock not adjusted")
	}

	return &Result{
		Sale:              applied.Sale,
		Notifications:     applied.Alerts,
		SkippedProductIDs: applied.SkippedProductIDs,
	}, nil
}

// validate validates the request.
func (i *Interactor) validate(req *Request) error {
	if len(req.Lines) == 0 {
		return domain.ErrEmptySale
	}
	for _, l := range req.Lines {
		if l.Quantity <= 0 {
			return domain.ErrInvalidSaleQuantity
		}
		if l.UnitPrice.IsNegative() {
			return domain.ErrInvalidUnitPrice
		}
	}
	if req.PaymentMethod == "" {
		return domain.ErrMissingPaymentMethod
	}
	return nil
}

func newID() string {
	return uuid.New().String()
}
