//go:build unit

package builder

import (
	"time"

	reqdto "invoice-dashboard/internal/handler/dto/request"
	"invoice-dashboard/internal/usecase/commands"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type InvoiceBuilder struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     string
	Status     string
	Date       time.Time
}

func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Amount:     "10.00",
		Status:     "pending",
		Date:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *InvoiceBuilder) BuildDTO() reqdto.InvoiceFormRequest {
	return reqdto.InvoiceFormRequest{
		CustomerID: b.CustomerID.String(),
		Amount:     b.Amount,
		Status:     b.Status,
	}
}

func (b *InvoiceBuilder) BuildForm() commands.InvoiceForm {
	return commands.InvoiceForm{
		CustomerID: b.CustomerID.String(),
		Amount:     b.Amount,
		Status:     b.Status,
	}
}

func (b *InvoiceBuilder) BuildReadModel() *queries.InvoiceView {
	return &queries.InvoiceView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Amount:     1000,
		Status:     b.Status,
		Date:       b.Date,
	}
}

func (b *InvoiceBuilder) BuildListItem() *queries.InvoiceListItem {
	return &queries.InvoiceListItem{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		CustomerName:  "Amy Burns",
		CustomerEmail: "amy@burns.com",
		ImageURL:      "/customers/amy-burns.png",
		Amount:        1000,
		Status:        b.Status,
		Date:          b.Date,
	}
}

func (b *InvoiceBuilder) WithAmount(amount string) *InvoiceBuilder {
	b.Amount = amount
	return b
}

func (b *InvoiceBuilder) WithStatus(status string) *InvoiceBuilder {
	b.Status = status
	return b
}

func (b *InvoiceBuilder) WithCustomerID(id string) *InvoiceBuilder {
	parsed, err := uuid.Parse(id)
	if err == nil {
		b.CustomerID = parsed
	}
	return b
}
