package response

import (
	"time"

	"invoice-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

type InvoiceListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	ImageURL      string    `json:"imageUrl"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}

type Breadcrumb struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Active bool   `json:"active,omitempty"`
}

// EditPageResponse is everything the edit form renders from: breadcrumb
// trail, the invoice under edit, and the customers it can be reassigned to.
type EditPageResponse struct {
	Breadcrumbs []Breadcrumb        `json:"breadcrumbs"`
	Invoice     *InvoiceResponse    `json:"invoice"`
	Customers   []*CustomerResponse `json:"customers"`
}

// ValidationErrorResponse mirrors the form state shape: per-field message
// lists plus an overview message.
type ValidationErrorResponse struct {
	Errors  map[string][]string `json:"errors"`
	Message string              `json:"message"`
}

func FromInvoiceView(rm *queries.InvoiceView) *InvoiceResponse {
	return &InvoiceResponse{
		ID:         rm.ID,
		CustomerID: rm.CustomerID,
		Amount:     rm.Amount,
		Status:     rm.Status,
		Date:       rm.Date,
	}
}

func FromInvoiceListItem(rm *queries.InvoiceListItem) *InvoiceListItemResponse {
	return &InvoiceListItemResponse{
		ID:            rm.ID,
		CustomerID:    rm.CustomerID,
		CustomerName:  rm.CustomerName,
		CustomerEmail: rm.CustomerEmail,
		ImageURL:      rm.ImageURL,
		Amount:        rm.Amount,
		Status:        rm.Status,
		Date:          rm.Date,
	}
}

func FromEditPage(page *queries.EditPage, editHref string) *EditPageResponse {
	customers := make([]*CustomerResponse, len(page.Customers))
	for i, cust := range page.Customers {
		customers[i] = FromCustomerView(cust)
	}

	return &EditPageResponse{
		Breadcrumbs: []Breadcrumb{
			{Label: "Invoices", Href: "/dashboard/invoices"},
			{Label: "Edit Invoice", Href: editHref, Active: true},
		},
		Invoice:   FromInvoiceView(page.Invoice),
		Customers: customers,
	}
}
