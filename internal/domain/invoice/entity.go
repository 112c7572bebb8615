package invoice

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	id         uuid.UUID
	customerID uuid.UUID
	amount     AmountCents
	status     Status
	date       time.Time
}

// NewInvoice builds an invoice from already-converted minor units. The date is
// truncated to day precision; referential integrity of customerID is left to
// the store.
func NewInvoice(id, customerID uuid.UUID, amountCents int64, statusValue string, date time.Time) (*Invoice, error) {
	amount, err := NewAmountCents(amountCents)
	if err != nil {
		return nil, err
	}

	status, err := NewStatus(statusValue)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Invoice{
		id:         id,
		customerID: customerID,
		amount:     amount,
		status:     status,
		date:       date.Truncate(24 * time.Hour),
	}, nil
}

func (i *Invoice) ID() uuid.UUID         { return i.id }
func (i *Invoice) CustomerID() uuid.UUID { return i.customerID }
func (i *Invoice) Amount() AmountCents   { return i.amount }
func (i *Invoice) Status() Status        { return i.status }
func (i *Invoice) Date() time.Time       { return i.date }
