package backoffice_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/config"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/internal/pkg/logging"
	"github.com/light-bringer/backoffice-service/internal/services"
	"github.com/light-bringer/backoffice-service/tests/testutil"
)

type apiTest struct {
	router *gin.Engine
	svc    *services.ServiceOptions
	mem    *kv.MemoryStore
}

func setupAPI(t *testing.T) *apiTest {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := kv.NewMemoryStore()
	testutil.PutEmptyCollections(t, mem)

	cfg := config.Config{MissingProduct: domain.MissingProductSkip}
	svc, err := services.NewServiceOptionsWithStore(context.Background(), mem, testutil.NewMockClock(), cfg, logging.Discard())
	require.NoError(t, err)

	router := gin.New()
	svc.Handler.RegisterRoutes(router)

	return &apiTest{router: router, svc: svc, mem: mem}
}

func (a *apiTest) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func TestHealthz(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProducts(t *testing.T) {
	t.Run("create, read, update and delete", func(t *testing.T) {
		api := setupAPI(t)

		w := api.do(t, http.MethodPost, "/api/v1/products", map[string]any{
			"name":      "Webcam HD",
			"category":  "Electronics",
			"price":     2999,
			"costPrice": 1800,
			"quantity":  20,
			"threshold": 5,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[domain.Product](t, w)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "2999.00", created.Price.String())

		w = api.do(t, http.MethodPut, "/api/v1/products/"+created.ID, map[string]any{"quantity": 2})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		updated := decode[domain.Product](t, w)
		assert.Equal(t, "Webcam HD", updated.Name)
		assert.Equal(t, 2, updated.Quantity)
		assert.Equal(t, 2, testutil.GetProduct(t, api.mem, created.ID).Quantity)

		w = api.do(t, http.MethodGet, "/api/v1/products/"+created.ID, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = api.do(t, http.MethodDelete, "/api/v1/products/"+created.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = api.do(t, http.MethodGet, "/api/v1/products/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid form reports every failing field", func(t *testing.T) {
		api := setupAPI(t)

		w := api.do(t, http.MethodPost, "/api/v1/products", map[string]any{
			"name":     "  ",
			"category": "Electronics",
			"price":    0,
			"quantity": -1,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		body := decode[errorBody](t, w)
		assert.Contains(t, body.Fields, "name")
		assert.Contains(t, body.Fields, "price")
		assert.Contains(t, body.Fields, "quantity")
		assert.Empty(t, testutil.ReadProducts(t, api.mem))
	})

	t.Run("malformed body", func(t *testing.T) {
		api := setupAPI(t)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		api.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		api := setupAPI(t)

		assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodPut, "/api/v1/products/missing", map[string]any{"quantity": 1}).Code)
		assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodDelete, "/api/v1/products/missing", nil).Code)
	})

	t.Run("filter and low stock", func(t *testing.T) {
		api := setupAPI(t)
		testutil.CreateTestProduct(t, api.svc.Store, "Desk", testutil.WithCategory("Furniture"), testutil.WithStock(3, 5))
		testutil.CreateTestProduct(t, api.svc.Store, "Mouse", testutil.WithStock(1, 10))
		testutil.CreateTestProduct(t, api.svc.Store, "Keyboard", testutil.WithStock(40, 10))

		w := api.do(t, http.MethodGet, "/api/v1/products?category=Furniture", nil)
		require.Equal(t, http.StatusOK, w.Code)
		furniture := decode[[]domain.Product](t, w)
		require.Len(t, furniture, 1)
		assert.Equal(t, "Desk", furniture[0].Name)

		w = api.do(t, http.MethodGet, "/api/v1/products?search=KEY", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]domain.Product](t, w), 1)

		w = api.do(t, http.MethodGet, "/api/v1/products/low-stock", nil)
		require.Equal(t, http.StatusOK, w.Code)
		low := decode[[]domain.Product](t, w)
		require.Len(t, low, 2)
		assert.Equal(t, "Mouse", low[0].Name)
		assert.Equal(t, "Desk", low[1].Name)

		w = api.do(t, http.MethodGet, "/api/v1/products/low-stock?limit=1", nil)
		assert.Len(t, decode[[]domain.Product](t, w), 1)

		assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/products/low-stock?limit=x", nil).Code)
	})
}

type saleBody struct {
	Sale              domain.Sale           `json:"sale"`
	Notifications     []domain.Notification `json:"notifications"`
	SkippedProductIDs []string              `json:"skippedProductIds"`
}

type notificationsBody struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

func TestSales(t *testing.T) {
	t.Run("records the sale at the live price and raises an alert", func(t *testing.T) {
		api := setupAPI(t)
		mouse := testutil.CreateTestProduct(t, api.svc.Store, "Mouse", testutil.WithStock(20, 5), testutil.WithPrices(1499, 800))

		w := api.do(t, http.MethodPost, "/api/v1/sales", map[string]any{
			"products":      []map[string]any{{"productId": mouse.ID, "quantity": 16}},
			"paymentMethod": "UPI",
			"customerName":  "Priya Patel",
			"customerPhone": "8765432109",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decode[saleBody](t, w)
		assert.Equal(t, "23984.00", body.Sale.TotalAmount.String())
		assert.Equal(t, "UPI", body.Sale.PaymentMethod)
		require.Len(t, body.Notifications, 1)
		assert.Equal(t, domain.TitleLowStock, body.Notifications[0].Title)
		assert.Equal(t, 4, testutil.GetProduct(t, api.mem, mouse.ID).Quantity)

		w = api.do(t, http.MethodGet, "/api/v1/sales", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]domain.Sale](t, w), 1)
	})

	t.Run("quantity is clamped to the stock on hand", func(t *testing.T) {
		api := setupAPI(t)
		lamp := testutil.CreateTestProduct(t, api.svc.Store, "Lamp", testutil.WithStock(3, 1))

		w := api.do(t, http.MethodPost, "/api/v1/sales", map[string]any{
			"products": []map[string]any{{"productId": lamp.ID, "quantity": 50}},
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		body := decode[saleBody](t, w)
		assert.Equal(t, 3, body.Sale.Products[0].Quantity)
		assert.Equal(t, "Cash", body.Sale.PaymentMethod)
		assert.Equal(t, 0, testutil.GetProduct(t, api.mem, lamp.ID).Quantity)
	})

	t.Run("rejected forms apply nothing", func(t *testing.T) {
		api := setupAPI(t)
		mouse := testutil.CreateTestProduct(t, api.svc.Store, "Mouse", testutil.WithStock(20, 5))
		empty := testutil.CreateTestProduct(t, api.svc.Store, "Empty", testutil.WithStock(0, 5))

		w := api.do(t, http.MethodPost, "/api/v1/sales", map[string]any{"products": []map[string]any{}})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[errorBody](t, w).Fields, "products")

		w = api.do(t, http.MethodPost, "/api/v1/sales", map[string]any{
			"products":      []map[string]any{{"productId": mouse.ID, "quantity": 1}},
			"customerPhone": "12345",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[errorBody](t, w).Fields, "customerPhone")

		w = api.do(t, http.MethodPost, "/api/v1/sales", map[string]any{
			"products": []map[string]any{{"productId": empty.ID, "quantity": 1}},
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[errorBody](t, w).Fields, "products[0].quantity")

		w = api.do(t, http.MethodPost, "/api/v1/sales", map[string]any{
			"products": []map[string]any{{"productId": "missing", "quantity": 1}},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)

		assert.Empty(t, testutil.ReadSales(t, api.mem))
		assert.Equal(t, 20, testutil.GetProduct(t, api.mem, mouse.ID).Quantity)
	})

	t.Run("bad date filter", func(t *testing.T) {
		api := setupAPI(t)

		assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/sales?from=15-03-2026", nil).Code)
	})
}

func TestNotifications(t *testing.T) {
	api := setupAPI(t)
	drive := testutil.CreateTestProduct(t, api.svc.Store, "Drive", testutil.WithStock(2, 4))

	w := api.do(t, http.MethodPost, "/api/v1/sales", map[string]any{
		"products": []map[string]any{{"productId": drive.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(t, http.MethodGet, "/api/v1/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[notificationsBody](t, w)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, 1, list.UnreadCount)

	id := list.Notifications[0].ID
	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodPost, "/api/v1/notifications/"+id+"/read", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodPost, "/api/v1/notifications/missing/read", nil).Code)

	w = api.do(t, http.MethodGet, "/api/v1/notifications?unread=true", nil)
	list = decode[notificationsBody](t, w)
	assert.Empty(t, list.Notifications)
	assert.Equal(t, 0, list.UnreadCount)

	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodDelete, "/api/v1/notifications", nil).Code)
	assert.Empty(t, testutil.ReadNotifications(t, api.mem))
}

func TestUsersAndSession(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/users", map[string]any{
		"name":  "Neha Singh",
		"email": "neha@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	neha := decode[domain.User](t, w)
	assert.Equal(t, domain.RoleEmployee, neha.Role)

	w = api.do(t, http.MethodPost, "/api/v1/users", map[string]any{
		"name":  "Someone Else",
		"email": "NEHA@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(t, http.MethodPost, "/api/v1/users", map[string]any{"name": "Bad", "email": "not-an-email", "role": "owner"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode[errorBody](t, w).Fields
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "role")

	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/api/v1/session", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodPost, "/api/v1/session", map[string]any{"email": "nobody@example.com"}).Code)

	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodPost, "/api/v1/session", map[string]any{"email": "Neha@Example.com"}).Code)

	w = api.do(t, http.MethodPost, "/api/v1/session", map[string]any{"email": "neha@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, neha.ID, decode[domain.User](t, w).ID)

	w = api.do(t, http.MethodPut, "/api/v1/users/"+neha.ID, map[string]any{"role": "manager"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Neha Singh", decode[domain.User](t, w).Name)

	w = api.do(t, http.MethodGet, "/api/v1/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.RoleManager, decode[domain.User](t, w).Role)

	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodPut, "/api/v1/users/missing", map[string]any{"name": "X"}).Code)

	w = api.do(t, http.MethodGet, "/api/v1/users", nil)
	assert.Len(t, decode[[]domain.User](t, w), 1)

	assert.Equal(t, http.StatusNoContent, api.do(t, http.MethodDelete, "/api/v1/session", nil).Code)
	assert.Equal(t, http.StatusNotFound, api.do(t, http.MethodGet, "/api/v1/session", nil).Code)
}

func TestDashboardAndReports(t *testing.T) {
	api := setupAPI(t)
	chair := testutil.CreateTestProduct(t, api.svc.Store, "Chair",
		testutil.WithCategory("Furniture"), testutil.WithStock(10, 2), testutil.WithPrices(12999, 8500))

	w := api.do(t, http.MethodPost, "/api/v1/sales", map[string]any{
		"products": []map[string]any{{"productId": chair.ID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dash struct {
		TotalProducts int           `json:"totalProducts"`
		TotalSales    int           `json:"totalSales"`
		TotalRevenue  domain.Money  `json:"totalRevenue"`
		RecentSales   []domain.Sale `json:"recentSales"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.Equal(t, 1, dash.TotalProducts)
	assert.Equal(t, 1, dash.TotalSales)
	assert.Equal(t, "25998.00", dash.TotalRevenue.String())
	assert.Len(t, dash.RecentSales, 1)

	w = api.do(t, http.MethodGet, "/api/v1/reports/sales?start=2026-03-01&end=2026-03-15&category=Furniture", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var report struct {
		Start        string       `json:"start"`
		End          string       `json:"end"`
		TotalSales   int          `json:"totalSales"`
		TotalRevenue domain.Money `json:"totalRevenue"`
		TotalProfit  domain.Money `json:"totalProfit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "2026-03-01", report.Start)
	assert.Equal(t, "2026-03-15", report.End)
	assert.Equal(t, 1, report.TotalSales)
	assert.Equal(t, "25998.00", report.TotalRevenue.String())
	assert.Equal(t, "8998.00", report.TotalProfit.String())

	w = api.do(t, http.MethodGet, "/api/v1/reports/sales.xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales-report-")
	assert.NotZero(t, w.Body.Len())

	assert.Equal(t, http.StatusBadRequest, api.do(t, http.MethodGet, "/api/v1/reports/sales?start=yesterday", nil).Code)
}
