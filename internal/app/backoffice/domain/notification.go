package domain

import (
	"fmt"
	"time"
)

// NotificationType is the severity shown next to a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

// Notification titles emitted by the sale routine.
const (
	TitleLowStock   = "Low Stock Alert"
	TitleOutOfStock = "Out of Stock Alert"
)

// Notification is a message in the dashboard bell.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Read    bool             `json:"read"`
	Date    time.Time        `json:"date"`
}

// NewNotification creates an unread notification.
func NewNotification(id, title, message string, typ NotificationType, now time.Time) Notification {
	return Notification{
		ID:      id,
		Title:   title,
		Message: message,
		Type:    typ,
		Date:    now,
	}
}

// StockAlert builds the notification for a product that has just dropped to level.
// ok is false for StockInStock, which raises nothing.
func StockAlert(id string, productName string, remaining int, level StockLevel, now time.Time) (Notification, bool) {
	switch level {
	case StockLow:
		msg := fmt.Sprintf("%s is running low on stock (%d remaining)", productName, remaining)
		return NewNotification(id, TitleLowStock, msg, NotificationWarning, now), true
	case StockOutOfStock:
		msg := fmt.Sprintf("%s is now out of stock!", productName)
		return NewNotification(id, TitleOutOfStock, msg, NotificationError, now), true
	default:
		return Notification{}, false
	}
}
