package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound  = errors.New("product not found")
	ErrEmptyName        = errors.New("product name cannot be empty")
	ErrInvalidCategory  = errors.New("product category cannot be empty")
	ErrInvalidPrice     = errors.New("product price must be positive")
	ErrInvalidCostPrice = errors.New("product cost price cannot be negative")
	ErrInvalidQuantity  = errors.New("product quantity cannot be negative")
	ErrInvalidThreshold = errors.New("low stock threshold cannot be negative")

	// Sale errors
	ErrEmptySale            = errors.New("sale must contain at least one product")
	ErrInvalidSaleQuantity  = errors.New("sale quantity must be positive")
	ErrInvalidUnitPrice     = errors.New("sale unit price cannot be negative")
	ErrMissingPaymentMethod = errors.New("payment method is required")
	ErrInvalidPhone         = errors.New("customer phone number is not valid")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyUserName      = errors.New("user name cannot be empty")
	ErrEmptyEmail         = errors.New("user email cannot be empty")
	ErrInvalidEmail       = errors.New("user email is not valid")
	ErrInvalidRole        = errors.New("user role must be admin, manager or employee")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("no user is registered with this email")
)
