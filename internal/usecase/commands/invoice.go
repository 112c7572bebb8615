package commands

import (
	"context"

	domInvoice "invoice-dashboard/internal/domain/invoice"
	"invoice-dashboard/internal/pkg/clock"
	"invoice-dashboard/internal/pkg/errs"
	"invoice-dashboard/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceListPath is the invalidated and redirected-to list route.
const InvoiceListPath = "/dashboard/invoices"

var (
	ErrCreateInvoiceFailed = errs.New("database error creating invoice")
	ErrUpdateInvoiceFailed = errs.New("database error updating invoice")
	ErrDeleteInvoiceFailed = errs.New("database error deleting invoice")
)

// Field-level validation messages returned to the form.
const (
	MsgSelectCustomer     = "Please select a customer"
	MsgAmountNotPositive  = "Please enter an amount greater than $0."
	MsgSelectValidStatus  = "Please select a valid status"
	MsgCreateMissingField = "Missing Fields. Failed to Create Invoice."
	MsgUpdateMissingField = "Missing Fields. Failed to Update Invoice."
)

// InvoiceForm carries the raw string-keyed form values as submitted. The date
// is never part of the submission; the create path computes it server-side.
type InvoiceForm struct {
	CustomerID string
	Amount     string
	Status     string
}

// ValidationError maps each failing field to its ordered messages, plus an
// overview message for the form. It is constructed fresh per submission.
type ValidationError struct {
	FieldErrors map[string][]string
	Message     string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ListInvalidator signals the rendering layer that cached output for a path
// must be recomputed. Called only after a write has succeeded.
type ListInvalidator interface {
	Invalidate(path string)
}

type CreateInvoiceResult struct {
	InvoiceID uuid.UUID
}

type InvoiceCommands interface {
	Create(ctx context.Context, form InvoiceForm) (*CreateInvoiceResult, error)
	Update(ctx context.Context, id uuid.UUID, form InvoiceForm) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceCommandsImpl struct {
	uow   shared.UnitOfWork
	cache ListInvalidator
	clock clock.Clock
}

func NewInvoiceCommands(uow shared.UnitOfWork, cache ListInvalidator, clk clock.Clock) InvoiceCommands {
	return &invoiceCommandsImpl{uow: uow, cache: cache, clock: clk}
}

type validatedForm struct {
	customerID uuid.UUID
	amount     decimal.Decimal
	status     domInvoice.Status
}

// validateForm is a pure function of the submitted values. All fields are
// checked so the form can show every problem at once.
func validateForm(form InvoiceForm, message string) (validatedForm, *ValidationError) {
	fieldErrors := map[string][]string{}
	var fields validatedForm

	customerID, err := uuid.Parse(form.CustomerID)
	if err != nil {
		fieldErrors["customerId"] = append(fieldErrors["customerId"], MsgSelectCustomer)
	} else {
		fields.customerID = customerID
	}

	amount, err := decimal.NewFromString(form.Amount)
	if err != nil || !amount.IsPositive() {
		fieldErrors["amount"] = append(fieldErrors["amount"], MsgAmountNotPositive)
	} else {
		fields.amount = amount
	}

	status, err := domInvoice.NewStatus(form.Status)
	if err != nil {
		fieldErrors["status"] = append(fieldErrors["status"], MsgSelectValidStatus)
	} else {
		fields.status = status
	}

	if len(fieldErrors) > 0 {
		return validatedForm{}, &ValidationError{FieldErrors: fieldErrors, Message: message}
	}
	return fields, nil
}

func (uc *invoiceCommandsImpl) Create(ctx context.Context, form InvoiceForm) (*CreateInvoiceResult, error) {
	fields, verr := validateForm(form, MsgCreateMissingField)
	if verr != nil {
		return nil, verr
	}

	// Create truncates fractional cents; Update rounds. Intentional
	// asymmetry, pinned by tests.
	amountCents := fields.amount.Mul(decimal.NewFromInt(100)).IntPart()
	date := uc.clock.Now()

	inv, err := domInvoice.NewInvoice(uuid.Nil, fields.customerID, amountCents, fields.status.String(), date)
	if err != nil {
		return nil, errs.Mark(err, ErrCreateInvoiceFailed)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Invoices().Create(ctx, tx.DB(), inv)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrCreateInvoiceFailed)
	}

	uc.cache.Invalidate(InvoiceListPath)
	return &CreateInvoiceResult{InvoiceID: createdID}, nil
}

func (uc *invoiceCommandsImpl) Update(ctx context.Context, id uuid.UUID, form InvoiceForm) error {
	fields, verr := validateForm(form, MsgUpdateMissingField)
	if verr != nil {
		return verr
	}

	amountCents := fields.amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Invoices().Update(ctx, tx.DB(), id, fields.customerID, amountCents, fields.status.String())
	})
	if err != nil {
		return errs.Mark(err, ErrUpdateInvoiceFailed)
	}

	uc.cache.Invalidate(InvoiceListPath)
	return nil
}

func (uc *invoiceCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Invoices().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return errs.Mark(err, ErrDeleteInvoiceFailed)
	}

	uc.cache.Invalidate(InvoiceListPath)
	return nil
}
