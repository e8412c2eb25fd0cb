package backoffice

import (
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/dashboard"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_notifications"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/sales_report"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/apply_sale"
)

// saleLineRequest is one requested line of POST /sales.
type saleLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// saleRequest is the body of POST /sales.
type saleRequest struct {
	Products      []saleLineRequest `json:"products"`
	PaymentMethod string            `json:"paymentMethod"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Notes         string            `json:"notes"`
}

// loginRequest is the body of POST /session.
type loginRequest struct {
	Email string `json:"email"`
}

type saleResponse struct {
	Sale              domain.Sale           `json:"sale"`
	Notifications     []domain.Notification `json:"notifications"`
	SkippedProductIDs []string              `json:"skippedProductIds,omitempty"`
}

func toSaleResponse(res *apply_sale.Result) saleResponse {
	notes := res.Notifications
	if notes == nil {
		notes = []domain.Notification{}
	}
	return saleResponse{
		Sale:              res.Sale,
		Notifications:     notes,
		SkippedProductIDs: res.SkippedProductIDs,
	}
}

type notificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

func toNotificationsResponse(res *list_notifications.Result) notificationsResponse {
	return notificationsResponse{
		Notifications: res.Notifications,
		UnreadCount:   res.UnreadCount,
	}
}

type dashboardResponse struct {
	TotalProducts    int              `json:"totalProducts"`
	LowStockCount    int              `json:"lowStockCount"`
	TotalSales       int              `json:"totalSales"`
	TotalRevenue     domain.Money     `json:"totalRevenue"`
	RecentSales      []domain.Sale    `json:"recentSales"`
	LowStockProducts []domain.Product `json:"lowStockProducts"`
}

func toDashboardResponse(res *dashboard.Result) dashboardResponse {
	return dashboardResponse{
		TotalProducts:    res.TotalProducts,
		LowStockCount:    res.LowStockCount,
		TotalSales:       res.TotalSales,
		TotalRevenue:     res.TotalRevenue,
		RecentSales:      res.RecentSales,
		LowStockProducts: res.LowStockProducts,
	}
}

type productSalesDTO struct {
	ProductID   string       `json:"productId"`
	ProductName string       `json:"productName"`
	Quantity    int          `json:"quantity"`
	Revenue     domain.Money `json:"revenue"`
}

type daySalesDTO struct {
	Date    string       `json:"date"`
	Sales   int          `json:"sales"`
	Revenue domain.Money `json:"revenue"`
}

type reportResponse struct {
	Start             string            `json:"start"`
	End               string            `json:"end"`
	Category          string            `json:"category,omitempty"`
	Categories        []string          `json:"categories"`
	TotalSales        int               `json:"totalSales"`
	TotalRevenue      domain.Money      `json:"totalRevenue"`
	TotalProfit       domain.Money      `json:"totalProfit"`
	ProfitMargin      float64           `json:"profitMargin"`
	AverageOrderValue domain.Money      `json:"averageOrderValue"`
	TopProducts       []productSalesDTO `json:"topProducts"`
	SalesByDay        []daySalesDTO     `json:"salesByDay"`
}

func toReportResponse(r *sales_report.Report) reportResponse {
	resp := reportResponse{
		Start:             r.Start.Format(sales_report.DayLayout),
		End:               r.End.Format(sales_report.DayLayout),
		Category:          r.Category,
		Categories:        r.Categories,
		TotalSales:        r.TotalSales,
		TotalRevenue:      r.TotalRevenue,
		TotalProfit:       r.TotalProfit,
		ProfitMargin:      r.ProfitMargin,
		AverageOrderValue: r.AverageOrderValue,
		TopProducts:       make([]productSalesDTO, 0, len(r.TopProducts)),
		SalesByDay:        make([]daySalesDTO, 0, len(r.SalesByDay)),
	}
	for _, p := range r.TopProducts {
		resp.TopProducts = append(resp.TopProducts, productSalesDTO{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			Revenue:     p.Revenue,
		})
	}
	for _, d := range r.SalesByDay {
		resp.SalesByDay = append(resp.SalesByDay, daySalesDTO{
			Date:    d.Date,
			Sales:   d.Sales,
			Revenue: d.Revenue,
		})
	}
	return resp
}
