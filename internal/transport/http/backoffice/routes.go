package backoffice

import "github.com/gin-gonic/gin"

// APIPrefix is the path every route is mounted under.
const APIPrefix = "/api/v1"

// RegisterRoutes mounts the back-office API on router.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.GET("/healthz", h.Healthz)

	api := router.Group(APIPrefix)

	products := api.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/low-stock", h.LowStock)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	sales := api.Group("/sales")
	{
		sales.GET("", h.ListSales)
		sales.POST("", h.CreateSale)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.DELETE("", h.ClearNotifications)
		notifications.POST("/:id/read", h.MarkNotificationRead)
	}

	users := api.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.AddUser)
		users.PUT("/:id", h.UpdateUser)
	}

	session := api.Group("/session")
	{
		session.GET("", h.CurrentUser)
		session.POST("", h.Login)
		session.DELETE("", h.Logout)
	}

	api.GET("/dashboard", h.Dashboard)
	api.GET("/reports/sales", h.SalesReport)
	api.GET("/reports/sales.xlsx", h.ExportSalesReport)
}
