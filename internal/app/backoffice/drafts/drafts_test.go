package drafts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/drafts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/apply_sale"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/create_product"
)

func products() []domain.Product {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mk := func(id, name string, qty int, price int64) domain.Product {
		return domain.Product{ID: id, ProductDetails: domain.ProductDetails{
			Name: name, Category: "Electronics", Price: domain.NewMoney(price), Quantity: qty, Threshold: 2,
		}, CreatedAt: now, UpdatedAt: now}
	}
	return []domain.Product{
		mk("p-empty", "Sold Out", 0, 100),
		mk("p-mouse", "Mouse", 4, 1499),
		mk("p-lamp", "Lamp", 10, 2499),
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *drafts.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Fields
}

func TestSaleDraft_Lines(t *testing.T) {
	d := drafts.NewSaleDraft(products())
	assert.Equal(t, drafts.DefaultPaymentMethod, d.PaymentMethod)

	t.Run("add next available skips empty and selected products", func(t *testing.T) {
		require.True(t, d.AddNextAvailable())
		assert.Equal(t, "p-mouse", d.Lines[0].ProductID)
		require.True(t, d.AddNextAvailable())
		assert.Equal(t, "p-lamp", d.Lines[1].ProductID)
		assert.False(t, d.AddNextAvailable())
	})

	t.Run("quantity clamps to stock and to one", func(t *testing.T) {
		d.SetQuantity(0, 99)
		assert.Equal(t, 4, d.Lines[0].Quantity)
		d.SetQuantity(0, 0)
		assert.Equal(t, 1, d.Lines[0].Quantity)
		d.SetQuantity(0, -5)
		assert.Equal(t, 1, d.Lines[0].Quantity)
		d.SetQuantity(0, 3)
		assert.Equal(t, 3, d.Lines[0].Quantity)
	})

	t.Run("total", func(t *testing.T) {
		assert.Equal(t, "6996.00", d.Total().String())
	})

	t.Run("change product resets the line", func(t *testing.T) {
		require.NoError(t, d.ChangeProduct(0, "p-lamp"))
		assert.Equal(t, 1, d.Lines[0].Quantity)
		assert.True(t, d.Lines[0].UnitPrice.Equals(domain.NewMoney(2499)))
		assert.ErrorIs(t, d.ChangeProduct(0, "missing"), domain.ErrProductNotFound)
	})

	t.Run("remove line", func(t *testing.T) {
		d.RemoveLine(1)
		assert.Len(t, d.Lines, 1)
		d.RemoveLine(5)
		assert.Len(t, d.Lines, 1)
	})

	t.Run("add specific product", func(t *testing.T) {
		assert.ErrorIs(t, d.AddLine("missing"), domain.ErrProductNotFound)
		require.NoError(t, d.AddLine("p-empty"))
		d.SetQuantity(1, 3)
		assert.Equal(t, 0, d.Lines[1].Quantity, "no stock clamps to zero")
	})
}

func TestSaleDraft_Validate(t *testing.T) {
	t.Run("empty sale", func(t *testing.T) {
		d := drafts.NewSaleDraft(products())
		fields := validationFields(t, d.Validate())
		assert.Equal(t, "min", fields["products"])
	})

	t.Run("phone must be ten valid digits", func(t *testing.T) {
		d := drafts.NewSaleDraft(products())
		require.NoError(t, d.AddLine("p-mouse"))

		for _, phone := range []string{"12345", "98765432100", "98765-4321", "abcdefghij"} {
			d.CustomerPhone = phone
			fields := validationFields(t, d.Validate())
			assert.Equal(t, "phone", fields["customerPhone"], phone)
		}

		d.CustomerPhone = "9876543210"
		assert.NoError(t, d.Validate())

		d.CustomerPhone = ""
		assert.NoError(t, d.Validate())
	})

	t.Run("payment method required", func(t *testing.T) {
		d := drafts.NewSaleDraft(products())
		require.NoError(t, d.AddLine("p-mouse"))
		d.PaymentMethod = "  "
		fields := validationFields(t, d.Validate())
		assert.Contains(t, fields, "paymentMethod")
	})

	t.Run("zero quantity line fails", func(t *testing.T) {
		d := drafts.NewSaleDraft(products())
		require.NoError(t, d.AddLine("p-empty"))
		d.SetQuantity(0, 1)
		fields := validationFields(t, d.Validate())
		assert.Equal(t, "gte", fields["products[0].quantity"])
	})
}

type recordingApplier struct {
	req *apply_sale.Request
}

func (r *recordingApplier) Execute(_ context.Context, req *apply_sale.Request) (*apply_sale.Result, error) {
	r.req = req
	return &apply_sale.Result{}, nil
}

func TestSaleDraft_Commit(t *testing.T) {
	d := drafts.NewSaleDraft(products())
	applier := &recordingApplier{}

	_, err := d.Commit(context.Background(), applier)
	require.Error(t, err)
	assert.Nil(t, applier.req, "invalid drafts never reach the usecase")

	require.NoError(t, d.AddLine("p-lamp"))
	d.SetQuantity(0, 2)
	d.CustomerName = "Neha Singh"
	_, err = d.Commit(context.Background(), applier)
	require.NoError(t, err)

	require.NotNil(t, applier.req)
	require.Len(t, applier.req.Lines, 1)
	assert.Equal(t, 2, applier.req.Lines[0].Quantity)
	assert.Equal(t, "Lamp", applier.req.Lines[0].ProductName)
	assert.Equal(t, "Cash", applier.req.PaymentMethod)
	assert.Equal(t, "Neha Singh", applier.req.CustomerName)
}

type recordingCreator struct {
	req *create_product.Request
}

func (r *recordingCreator) Execute(_ context.Context, req *create_product.Request) (*domain.Product, error) {
	r.req = req
	return &domain.Product{ProductDetails: req.Details}, nil
}

func TestProductDraft(t *testing.T) {
	t.Run("empty form reports every required field", func(t *testing.T) {
		fields := validationFields(t, drafts.NewProductDraft().Validate())
		assert.Equal(t, "notblank", fields["name"])
		assert.Equal(t, "notblank", fields["category"])
		assert.Equal(t, "gt", fields["price"])
		assert.NotContains(t, fields, "costPrice")
		assert.NotContains(t, fields, "quantity")
	})

	t.Run("negative numbers", func(t *testing.T) {
		d := &drafts.ProductDraft{
			Name: "Lamp", Category: "Lighting", Price: domain.NewMoney(10),
			CostPrice: domain.NewMoney(-1), Quantity: -1, Threshold: -1, ImageURL: "not a url",
		}
		fields := validationFields(t, d.Validate())
		assert.Len(t, fields, 4)
		assert.Equal(t, "gte", fields["costPrice"])
		assert.Equal(t, "url", fields["imageUrl"])
	})

	t.Run("edit round-trips and commits", func(t *testing.T) {
		p := products()[2]
		d := drafts.EditProductDraft(p)
		assert.Equal(t, p.ProductDetails, d.Details())

		creator := &recordingCreator{}
		_, err := d.Commit(context.Background(), creator)
		require.NoError(t, err)
		assert.Equal(t, "Lamp", creator.req.Details.Name)
	})
}

func TestUserDraft(t *testing.T) {
	d := drafts.NewUserDraft()
	assert.Equal(t, "employee", d.Role)

	fields := validationFields(t, d.Validate())
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")

	d.Name = "Raj"
	d.Email = "not-an-email"
	fields = validationFields(t, d.Validate())
	assert.Equal(t, "email", fields["email"])

	d.Email = "raj@example.com"
	d.Role = "owner"
	fields = validationFields(t, d.Validate())
	assert.Equal(t, "oneof", fields["role"])

	d.Role = "manager"
	require.NoError(t, d.Validate())
	assert.Equal(t, domain.RoleManager, d.Details().Role)
}

func TestValidPhone(t *testing.T) {
	assert.True(t, drafts.ValidPhone("9876543210"))
	assert.False(t, drafts.ValidPhone("0000000000"))
	assert.False(t, drafts.ValidPhone("+919876543210"))
}
