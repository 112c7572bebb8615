package queries

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceView represents read-optimized invoice data for the edit form
type InvoiceView struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

// InvoiceListItem represents a customer-joined row of the invoice list
type InvoiceListItem struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	ImageURL      string    `json:"image_url"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

// CustomerView represents the display fields consumed by invoice forms
type CustomerView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
