package invoice

import (
	"invoice-dashboard/internal/pkg/errs"
)

var (
	ErrNonPositiveAmount = errs.New("amount must be greater than zero")
	ErrInvalidStatus     = errs.New("invalid invoice status")
)

// AmountCents holds a monetary value in integer minor units.
type AmountCents struct {
	value int64
}

func NewAmountCents(v int64) (AmountCents, error) {
	if v <= 0 {
		return AmountCents{}, ErrNonPositiveAmount
	}
	return AmountCents{value: v}, nil
}

func (a AmountCents) Value() int64 { return a.value }

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
