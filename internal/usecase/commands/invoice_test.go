//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domInvoice "invoice-dashboard/internal/domain/invoice"
	"invoice-dashboard/internal/infra/db"
	"invoice-dashboard/internal/pkg/clock"
	"invoice-dashboard/internal/usecase/commands"
	"invoice-dashboard/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeUoW runs the transaction body against recording repositories.
type fakeUoW struct {
	invoices *fakeInvoiceRepo
	users    *fakeUserRepo
	failWith error
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{invoices: &fakeInvoiceRepo{}, users: &fakeUserRepo{}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.failWith != nil {
		return u.failWith
	}
	return fn(ctx, u)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) Invoices() shared.InvoiceRepository { return u.invoices }
func (u *fakeUoW) Users() shared.UserRepository       { return u.users }
func (u *fakeUoW) DB() db.DBTX                        { return nil }

type updateCall struct {
	id          uuid.UUID
	customerID  uuid.UUID
	amountCents int64
	status      string
}

type fakeInvoiceRepo struct {
	created  []*domInvoice.Invoice
	updates  []updateCall
	deletes  []uuid.UUID
	failWith error
}

func (r *fakeInvoiceRepo) Create(_ context.Context, _ db.DBTX, inv *domInvoice.Invoice) (uuid.UUID, error) {
	if r.failWith != nil {
		return uuid.Nil, r.failWith
	}
	r.created = append(r.created, inv)
	return inv.ID(), nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, _ db.DBTX, id, customerID uuid.UUID, amountCents int64, status string) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.updates = append(r.updates, updateCall{id: id, customerID: customerID, amountCents: amountCents, status: status})
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.deletes = append(r.deletes, id)
	return nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error {
	return nil
}

type fakeInvalidator struct {
	paths []string
}

func (f *fakeInvalidator) Invalidate(path string) {
	f.paths = append(f.paths, path)
}

type InvoiceCommandsTestSuite struct {
	suite.Suite
	uow         *fakeUoW
	invalidator *fakeInvalidator
	clock       *clock.MockClock
	commands    commands.InvoiceCommands
}

func (s *InvoiceCommandsTestSuite) SetupTest() {
	s.uow = newFakeUoW()
	s.invalidator = &fakeInvalidator{}
	s.clock = clock.NewMockClock(time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC))
	s.commands = commands.NewInvoiceCommands(s.uow, s.invalidator, s.clock)
}

func TestInvoiceCommandsSuite(t *testing.T) {
	suite.Run(t, new(InvoiceCommandsTestSuite))
}

func validForm() commands.InvoiceForm {
	return commands.InvoiceForm{
		CustomerID: uuid.New().String(),
		Amount:     "10.00",
		Status:     "pending",
	}
}

func (s *InvoiceCommandsTestSuite) TestCreateValidation() {
	s.Run("empty form reports every field at once", func() {
		_, err := s.commands.Create(context.Background(), commands.InvoiceForm{})

		var verr *commands.ValidationError
		require.ErrorAs(s.T(), err, &verr)
		s.Equal(commands.MsgCreateMissingField, verr.Message)
		s.Equal([]string{commands.MsgSelectCustomer}, verr.FieldErrors["customerId"])
		s.Equal([]string{commands.MsgAmountNotPositive}, verr.FieldErrors["amount"])
		s.Equal([]string{commands.MsgSelectValidStatus}, verr.FieldErrors["status"])
	})

	s.Run("nothing is persisted or invalidated on a failed submission", func() {
		_, err := s.commands.Create(context.Background(), commands.InvoiceForm{})

		s.Error(err)
		s.Empty(s.uow.invoices.created)
		s.Empty(s.invalidator.paths)
	})

	amountCases := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"zero is rejected", "0", false},
		{"negative is rejected", "-5", false},
		{"non-numeric is rejected", "abc", false},
		{"empty is rejected", "", false},
		{"smallest positive passes", "0.01", true},
	}
	for _, tc := range amountCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			form := validForm()
			form.Amount = tc.amount

			_, err := s.commands.Create(context.Background(), form)

			if tc.valid {
				s.NoError(err)
				return
			}
			var verr *commands.ValidationError
			require.ErrorAs(s.T(), err, &verr)
			s.Equal([]string{commands.MsgAmountNotPositive}, verr.FieldErrors["amount"])
		})
	}

	s.Run("unknown status is rejected", func() {
		form := validForm()
		form.Status = "overdue"

		_, err := s.commands.Create(context.Background(), form)

		var verr *commands.ValidationError
		require.ErrorAs(s.T(), err, &verr)
		s.Equal([]string{commands.MsgSelectValidStatus}, verr.FieldErrors["status"])
	})
}

func (s *InvoiceCommandsTestSuite) TestCreate() {
	s.Run("converts dollars to cents and persists", func() {
		form := validForm()

		result, err := s.commands.Create(context.Background(), form)

		require.NoError(s.T(), err)
		require.Len(s.T(), s.uow.invoices.created, 1)
		created := s.uow.invoices.created[0]
		s.Equal(int64(1000), created.Amount().Value())
		s.Equal(created.ID(), result.InvoiceID)
	})

	s.Run("fractional cents are dropped, not rounded", func() {
		s.SetupTest()
		form := validForm()
		form.Amount = "1.005"

		_, err := s.commands.Create(context.Background(), form)

		require.NoError(s.T(), err)
		s.Equal(int64(100), s.uow.invoices.created[0].Amount().Value())
	})

	s.Run("dates the invoice with the current day", func() {
		s.SetupTest()
		_, err := s.commands.Create(context.Background(), validForm())

		require.NoError(s.T(), err)
		s.Equal(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), s.uow.invoices.created[0].Date())
	})

	s.Run("invalidates the list path after the write", func() {
		s.SetupTest()
		_, err := s.commands.Create(context.Background(), validForm())

		require.NoError(s.T(), err)
		s.Equal([]string{commands.InvoiceListPath}, s.invalidator.paths)
	})

	s.Run("keeps the cause when the write fails", func() {
		s.SetupTest()
		dbErr := errors.New("connection reset")
		s.uow.invoices.failWith = dbErr

		_, err := s.commands.Create(context.Background(), validForm())

		s.ErrorIs(err, commands.ErrCreateInvoiceFailed)
		s.ErrorIs(err, dbErr)
		s.Empty(s.invalidator.paths)
	})
}

func (s *InvoiceCommandsTestSuite) TestUpdate() {
	invoiceID := uuid.New()

	s.Run("fractional cents are rounded on update", func() {
		form := validForm()
		form.Amount = "1.005"

		err := s.commands.Update(context.Background(), invoiceID, form)

		require.NoError(s.T(), err)
		require.Len(s.T(), s.uow.invoices.updates, 1)
		s.Equal(int64(101), s.uow.invoices.updates[0].amountCents)
	})

	s.Run("overwrites the three form columns", func() {
		s.SetupTest()
		form := validForm()
		form.Status = "paid"

		err := s.commands.Update(context.Background(), invoiceID, form)

		require.NoError(s.T(), err)
		call := s.uow.invoices.updates[0]
		s.Equal(invoiceID, call.id)
		s.Equal(form.CustomerID, call.customerID.String())
		s.Equal(int64(1000), call.amountCents)
		s.Equal("paid", call.status)
	})

	s.Run("validation failure uses the update message", func() {
		s.SetupTest()

		err := s.commands.Update(context.Background(), invoiceID, commands.InvoiceForm{})

		var verr *commands.ValidationError
		require.ErrorAs(s.T(), err, &verr)
		s.Equal(commands.MsgUpdateMissingField, verr.Message)
		s.Empty(s.uow.invoices.updates)
	})

	s.Run("keeps the cause when the write fails", func() {
		s.SetupTest()
		dbErr := errors.New("deadlock")
		s.uow.invoices.failWith = dbErr

		err := s.commands.Update(context.Background(), invoiceID, validForm())

		s.ErrorIs(err, commands.ErrUpdateInvoiceFailed)
		s.ErrorIs(err, dbErr)
		s.Empty(s.invalidator.paths)
	})

	s.Run("invalidates the list path after the write", func() {
		s.SetupTest()

		err := s.commands.Update(context.Background(), invoiceID, validForm())

		require.NoError(s.T(), err)
		s.Equal([]string{commands.InvoiceListPath}, s.invalidator.paths)
	})
}

func (s *InvoiceCommandsTestSuite) TestDelete() {
	s.Run("deletes and invalidates without any form validation", func() {
		id := uuid.New()

		err := s.commands.Delete(context.Background(), id)

		require.NoError(s.T(), err)
		s.Equal([]uuid.UUID{id}, s.uow.invoices.deletes)
		s.Equal([]string{commands.InvoiceListPath}, s.invalidator.paths)
	})

	s.Run("keeps the cause when the delete fails", func() {
		s.SetupTest()
		dbErr := errors.New("connection reset")
		s.uow.invoices.failWith = dbErr

		err := s.commands.Delete(context.Background(), uuid.New())

		s.ErrorIs(err, commands.ErrDeleteInvoiceFailed)
		s.ErrorIs(err, dbErr)
		s.Empty(s.invalidator.paths)
	})
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &commands.ValidationError{
		FieldErrors: map[string][]string{"amount": {commands.MsgAmountNotPositive}},
		Message:     commands.MsgCreateMissingField,
	}
	assert.Equal(t, commands.MsgCreateMissingField, verr.Error())
}
