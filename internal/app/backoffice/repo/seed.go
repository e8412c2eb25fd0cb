package repo

import (
	"time"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/domain"
)

// SeedData is the sample dataset written to an empty store.
type SeedData struct {
	Products      []domain.Product
	Sales         []domain.Sale
	Notifications []domain.Notification
	Users         []domain.User
}

type seedProduct struct {
	details     domain.ProductDetails
	createdDays int
	updatedDays int
}

var seedProducts = []seedProduct{
	{domain.ProductDetails{
		Name:        "Laptop - ProBook 450",
		Description: "High-performance laptop for professionals",
		Category:    "Electronics",
		Price:       domain.NewMoney(58999),
		CostPrice:   domain.NewMoney(45000),
		Quantity:    15,
		Threshold:   5,
		ImageURL:    "https://images.pexels.com/photos/18105/pexels-photo.jpg?auto=compress&cs=tinysrgb&w=800",
	}, 52, 21},
	{domain.ProductDetails{
		Name:        "Office Chair - Ergonomic",
		Description: "Comfortable ergonomic chair for office use",
		Category:    "Furniture",
		Price:       domain.NewMoney(12999),
		CostPrice:   domain.NewMoney(8500),
		Quantity:    8,
		Threshold:   3,
		ImageURL:    "https://images.pexels.com/photos/1957477/pexels-photo-1957477.jpeg?auto=compress&cs=tinysrgb&w=800",
	}, 38, 17},
	{domain.ProductDetails{
		Name:        "Wireless Mouse",
		Description: "Bluetooth wireless mouse with long battery life",
		Category:    "Accessories",
		Price:       domain.NewMoney(1499),
		CostPrice:   domain.NewMoney(800),
		Quantity:    25,
		Threshold:   10,
		ImageURL:    "https://images.pexels.com/photos/5054776/pexels-photo-5054776.jpeg?auto=compress&cs=tinysrgb&w=800",
	}, 81, 11},
	{domain.ProductDetails{
		Name:        "Desk Lamp - LED",
		Description: "Adjustable LED desk lamp with multiple brightness levels",
		Category:    "Lighting",
		Price:       domain.NewMoney(2499),
		CostPrice:   domain.NewMoney(1200),
		Quantity:    18,
		Threshold:   7,
		ImageURL:    "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg?auto=compress&cs=tinysrgb&w=800",
	}, 64, 8},
	{domain.ProductDetails{
		Name:        "Notebook Set - Premium",
		Description: "Set of 3 premium hardcover notebooks",
		Category:    "Stationery",
		Price:       domain.NewMoney(899),
		CostPrice:   domain.NewMoney(450),
		Quantity:    30,
		Threshold:   15,
		ImageURL:    "https://images.pexels.com/photos/733857/pexels-photo-733857.jpeg?auto=compress&cs=tinysrgb&w=800",
	}, 44, 4},
	{domain.ProductDetails{
		Name:        "Laser Printer - Monochrome",
		Description: "Fast and reliable monochrome laser printer",
		Category:    "Electronics",
		Price:       domain.NewMoney(15999),
		CostPrice:   domain.NewMoney(11000),
		Quantity:    5,
		Threshold:   2,
		ImageURL:    "https://images.pexels.com/photos/6010432/pexels-photo-6010432.jpeg?auto=compress&cs=tinysrgb&w=800",
	}, 33, 2},
	{domain.ProductDetails{
		Name:        "External Hard Drive - 2TB",
		Description: "Portable external hard drive with 2TB storage",
		Category:    "Storage",
		Price:       domain.NewMoney(6999),
		CostPrice:   domain.NewMoney(4500),
		Quantity:    12,
		Threshold:   4,
		ImageURL:    "https://images.pexels.com/photos/117729/pexels-photo-117729.jpeg?auto=compress&cs=tinysrgb&w=800",
	}, 29, 6},
}

// NewSeedData builds the sample dataset. Dates are fixed day offsets before now.
func NewSeedData(now time.Time, newID func() string) SeedData {
	daysAgo := func(n int) time.Time { return now.AddDate(0, 0, -n) }

	products := make([]domain.Product, 0, len(seedProducts))
	for _, sp := range seedProducts {
		products = append(products, domain.Product{
			ID:             newID(),
			ProductDetails: sp.details,
			CreatedAt:      daysAgo(sp.createdDays),
			UpdatedAt:      daysAgo(sp.updatedDays),
		})
	}

	line := func(i, qty int) domain.SaleItem {
		p := products[i]
		return domain.NewSaleItem(p.ID, p.Name, qty, p.Price)
	}
	sale := func(days int, payment string, customer domain.Customer, notes string, items ...domain.SaleItem) domain.Sale {
		return domain.Sale{
			ID:            newID(),
			Products:      items,
			TotalAmount:   domain.SumItems(items),
			PaymentMethod: payment,
			Customer:      customer,
			Date:          daysAgo(days),
			Notes:         notes,
		}
	}

	sales := []domain.Sale{
		sale(22, "Credit Card", domain.Customer{Name: "Rahul Sharma", Phone: "9876543210"}, "Business purchase",
			line(0, 1), line(2, 1)),
		sale(16, "UPI", domain.Customer{Name: "Priya Patel", Phone: "8765432109"}, "Office setup",
			line(1, 2)),
		sale(12, "Cash", domain.Customer{Name: "Amit Kumar", Phone: "7654321098"}, "Bulk purchase for new staff",
			line(4, 5), line(2, 3)),
		sale(7, "Net Banking", domain.Customer{Name: "Neha Singh", Phone: "6543210987"}, "",
			line(3, 2)),
		sale(3, "Credit Card", domain.Customer{Name: "Rajesh Gupta"}, "Office equipment upgrade",
			line(5, 1), line(6, 2)),
	}

	printer := products[5]
	low, _ := domain.StockAlert(newID(), printer.Name, printer.Quantity, domain.StockLow, now)

	completed := domain.NewNotification(newID(), "New Sale Completed",
		"Sale of "+sales[0].TotalAmount.Rupees()+" was completed successfully",
		domain.NotificationSuccess, daysAgo(1))
	completed.Read = true

	update := domain.NewNotification(newID(), "System Update",
		"The system has been updated to the latest version",
		domain.NotificationInfo, daysAgo(2))

	users := []domain.User{
		{ID: newID(), UserDetails: domain.UserDetails{Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin, Avatar: "https://i.pravatar.cc/150?img=1"}},
		{ID: newID(), UserDetails: domain.UserDetails{Name: "Manager User", Email: "manager@example.com", Role: domain.RoleManager, Avatar: "https://i.pravatar.cc/150?img=2"}},
		{ID: newID(), UserDetails: domain.UserDetails{Name: "Employee User", Email: "employee@example.com", Role: domain.RoleEmployee, Avatar: "https://i.pravatar.cc/150?img=3"}},
	}

	return SeedData{
		Products:      products,
		Sales:         sales,
		Notifications: []domain.Notification{low, completed, update},
		Users:         users,
	}
}
