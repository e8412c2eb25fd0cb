package backoffice

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/drafts"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/current_user"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/dashboard"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/get_product"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_notifications"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_products"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_sales"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_users"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/low_stock"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/sales_report"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/add_user"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/apply_sale"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/clear_notifications"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/create_product"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/delete_product"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/login"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/logout"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/mark_notification_read"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/update_product"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/update_user"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Commands groups the write usecases the handler delegates to.
type Commands struct {
	CreateProduct        *create_product.Interactor
	UpdateProduct        *update_product.Interactor
	DeleteProduct        *delete_product.Interactor
	ApplySale            *apply_sale.Interactor
	MarkNotificationRead *mark_notification_read.Interactor
	ClearNotifications   *clear_notifications.Interactor
	AddUser              *add_user.Interactor
	UpdateUser           *update_user.Interactor
	Login                *login.Interactor
	Logout               *logout.Interactor
}

// Queries groups the read usecases the handler delegates to.
type Queries struct {
	GetProduct        *get_product.Query
	ListProducts      *list_products.Query
	LowStock          *low_stock.Query
	ListSales         *list_sales.Query
	ListNotifications *list_notifications.Query
	ListUsers         *list_users.Query
	CurrentUser       *current_user.Query
	Dashboard         *dashboard.Query
	SalesReport       *sales_report.Query
}

// Handler serves the back-office JSON API.
// It's a thin coordinator: forms are bound into drafts and committed to the usecases.
type Handler struct {
	cmd    Commands
	qry    Queries
	logger logrus.FieldLogger
}

// NewHandler creates a new HTTP back-office handler.
func NewHandler(cmd Commands, qry Queries, logger logrus.FieldLogger) *Handler {
	return &Handler{
		cmd:    cmd,
		qry:    qry,
		logger: logger,
	}
}

// ListProducts handles GET /products?category=&search=.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.qry.ListProducts.Execute(c.Request.Context(), &list_products.Request{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		h.writeError(c, "ListProducts", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.qry.GetProduct.Execute(c.Request.Context(), &get_product.Request{ProductID: c.Param("id")})
	if err != nil {
		h.writeError(c, "GetProduct", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(c *gin.Context) {
	draft := drafts.NewProductDraft()
	if err := c.ShouldBindJSON(draft); err != nil {
		badRequest(c, err)
		return
	}

	product, err := draft.Commit(c.Request.Context(), h.cmd.CreateProduct)
	if err != nil {
		h.writeError(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id. Fields absent from the body keep
// their current values.
func (h *Handler) UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	// 1. Prefill the form from the stored product
	current, err := h.qry.GetProduct.Execute(ctx, &get_product.Request{ProductID: id})
	if err != nil {
		h.writeError(c, "UpdateProduct", err)
		return
	}
	draft := drafts.EditProductDraft(*current)

	// 2. Overlay the request body
	if err := c.ShouldBindJSON(draft); err != nil {
		badRequest(c, err)
		return
	}

	// 3. Commit
	product, err := draft.CommitUpdate(ctx, id, h.cmd.UpdateProduct)
	if err != nil {
		h.writeError(c, "UpdateProduct", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id.
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.cmd.DeleteProduct.Execute(c.Request.Context(), &delete_product.Request{ProductID: c.Param("id")}); err != nil {
		h.writeError(c, "DeleteProduct", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LowStock handles GET /products/low-stock?limit=.
func (h *Handler) LowStock(c *gin.Context) {
	limit, err := intQuery(c, "limit")
	if err != nil {
		badRequest(c, err)
		return
	}

	products, err := h.qry.LowStock.Execute(c.Request.Context(), &low_stock.Request{Limit: limit})
	if err != nil {
		h.writeError(c, "LowStock", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListSales handles GET /sales?from=&to=. Both bounds are calendar days and inclusive.
func (h *Handler) ListSales(c *gin.Context) {
	from, err := dayQuery(c, "from")
	if err != nil {
		badRequest(c, err)
		return
	}
	to, err := dayQuery(c, "to")
	if err != nil {
		badRequest(c, err)
		return
	}
	if !to.IsZero() {
		to = endOfDay(to)
	}

	sales, err := h.qry.ListSales.Execute(c.Request.Context(), &list_sales.Request{From: from, To: to})
	if err != nil {
		h.writeError(c, "ListSales", err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

// CreateSale handles POST /sales. Lines are added the way the point-of-sale
// form adds them: live price, quantity clamped to the stock on hand.
func (h *Handler) CreateSale(c *gin.Context) {
	ctx := c.Request.Context()

	var req saleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	// 1. Start the form over the current products
	products, err := h.qry.ListProducts.Execute(ctx, &list_products.Request{})
	if err != nil {
		h.writeError(c, "CreateSale", err)
		return
	}
	draft := drafts.NewSaleDraft(products)

	// 2. Fill the lines and the checkout fields
	for i, line := range req.Products {
		if err := draft.AddLine(line.ProductID); err != nil {
			h.writeError(c, "CreateSale", fmt.Errorf("line %d: %w", i, err))
			return
		}
		draft.SetQuantity(i, line.Quantity)
	}
	if req.PaymentMethod != "" {
		draft.PaymentMethod = req.PaymentMethod
	}
	draft.CustomerName = req.CustomerName
	draft.CustomerPhone = req.CustomerPhone
	draft.Notes = req.Notes

	// 3. Commit
	res, err := draft.Commit(ctx, h.cmd.ApplySale)
	if err != nil {
		h.writeError(c, "CreateSale", err)
		return
	}
	c.JSON(http.StatusCreated, toSaleResponse(res))
}

// ListNotifications handles GET /notifications?unread=true.
func (h *Handler) ListNotifications(c *gin.Context) {
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))

	res, err := h.qry.ListNotifications.Execute(c.Request.Context(), &list_notifications.Request{UnreadOnly: unreadOnly})
	if err != nil {
		h.writeError(c, "ListNotifications", err)
		return
	}
	c.JSON(http.StatusOK, toNotificationsResponse(res))
}

// MarkNotificationRead handles POST /notifications/:id/read.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	req := &mark_notification_read.Request{NotificationID: c.Param("id")}
	if err := h.cmd.MarkNotificationRead.Execute(c.Request.Context(), req); err != nil {
		h.writeError(c, "MarkNotificationRead", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearNotifications handles DELETE /notifications.
func (h *Handler) ClearNotifications(c *gin.Context) {
	if err := h.cmd.ClearNotifications.Execute(c.Request.Context()); err != nil {
		h.writeError(c, "ClearNotifications", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.qry.ListUsers.Execute(c.Request.Context())
	if err != nil {
		h.writeError(c, "ListUsers", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AddUser handles POST /users.
func (h *Handler) AddUser(c *gin.Context) {
	draft := drafts.NewUserDraft()
	if err := c.ShouldBindJSON(draft); err != nil {
		badRequest(c, err)
		return
	}

	user, err := draft.Commit(c.Request.Context(), h.cmd.AddUser)
	if err != nil {
		h.writeError(c, "AddUser", err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /users/:id. Fields absent from the body keep their
// current values.
func (h *Handler) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	// 1. Prefill the form from the stored user
	users, err := h.qry.ListUsers.Execute(ctx)
	if err != nil {
		h.writeError(c, "UpdateUser", err)
		return
	}
	var draft *drafts.UserDraft
	for _, u := range users {
		if u.ID == id {
			draft = drafts.EditUserDraft(u)
			break
		}
	}
	if draft == nil {
		h.writeError(c, "UpdateUser", fmt.Errorf("user %s: %w", id, domain.ErrUserNotFound))
		return
	}

	// 2. Overlay the request body
	if err := c.ShouldBindJSON(draft); err != nil {
		badRequest(c, err)
		return
	}

	// 3. Commit
	user, err := draft.CommitUpdate(ctx, id, h.cmd.UpdateUser)
	if err != nil {
		h.writeError(c, "UpdateUser", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CurrentUser handles GET /session.
func (h *Handler) CurrentUser(c *gin.Context) {
	user, err := h.qry.CurrentUser.Execute(c.Request.Context())
	if err != nil {
		h.writeError(c, "CurrentUser", err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "no user is signed in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login handles POST /session.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.cmd.Login.Execute(c.Request.Context(), &login.Request{Email: req.Email})
	if err != nil {
		h.writeError(c, "Login", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout handles DELETE /session.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.cmd.Logout.Execute(c.Request.Context()); err != nil {
		h.writeError(c, "Logout", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Dashboard handles GET /dashboard.
func (h *Handler) Dashboard(c *gin.Context) {
	res, err := h.qry.Dashboard.Execute(c.Request.Context())
	if err != nil {
		h.writeError(c, "Dashboard", err)
		return
	}
	c.JSON(http.StatusOK, toDashboardResponse(res))
}

// SalesReport handles GET /reports/sales?start=&end=&category=.
func (h *Handler) SalesReport(c *gin.Context) {
	report, ok := h.buildReport(c, "SalesReport")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toReportResponse(report))
}

// ExportSalesReport handles GET /reports/sales.xlsx with the same filters.
func (h *Handler) ExportSalesReport(c *gin.Context) {
	report, ok := h.buildReport(c, "ExportSalesReport")
	if !ok {
		return
	}

	filename := fmt.Sprintf("sales-report-%s-%s.xlsx",
		report.Start.Format(sales_report.DayLayout), report.End.Format(sales_report.DayLayout))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := sales_report.WriteXLSX(c.Writer, report); err != nil {
		// Headers are already sent; the client sees a truncated body.
		h.logger.WithError(err).Error("failed to write sales report workbook")
	}
}

func (h *Handler) buildReport(c *gin.Context, funcName string) (*sales_report.Report, bool) {
	start, err := dayQuery(c, "start")
	if err != nil {
		badRequest(c, err)
		return nil, false
	}
	end, err := dayQuery(c, "end")
	if err != nil {
		badRequest(c, err)
		return nil, false
	}

	report, err := h.qry.SalesReport.Execute(c.Request.Context(), &sales_report.Request{
		Start:    start,
		End:      end,
		Category: c.Query("category"),
	})
	if err != nil {
		h.writeError(c, funcName, err)
		return nil, false
	}
	return report, true
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}

func dayQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(sales_report.DayLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date formatted as %s", name, sales_report.DayLayout)
	}
	return t, nil
}

func endOfDay(day time.Time) time.Time {
	return day.Add(24*time.Hour - time.Millisecond)
}
