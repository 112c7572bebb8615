package queries

import (
	"context"

	"invoice-dashboard/internal/infra"
	"invoice-dashboard/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvoiceNotFound = errs.New("invoice not found")
)

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context) ([]*InvoiceListItem, error)
}

// EditPage is the composed view state for the invoice edit form: the invoice
// under edit plus every customer the form can reassign it to.
type EditPage struct {
	Invoice   *InvoiceView
	Customers []*CustomerView
}

type InvoiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context) ([]*InvoiceListItem, error)
	GetEditPage(ctx context.Context, id uuid.UUID) (*EditPage, error)
}

type invoiceQueriesImpl struct {
	invoices  InvoiceReadStore
	customers CustomerReadStore
}

func NewInvoiceQueries(invoices InvoiceReadStore, customers CustomerReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{
		invoices:  invoices,
		customers: customers,
	}
}

func (q *invoiceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	view, err := q.invoices.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *invoiceQueriesImpl) List(ctx context.Context) ([]*InvoiceListItem, error) {
	return q.invoices.List(ctx)
}

// GetEditPage fetches the invoice and the candidate customers concurrently.
// Both fetches must finish before composing; a missing invoice wins over any
// customer-side result and surfaces as ErrInvoiceNotFound.
func (q *invoiceQueriesImpl) GetEditPage(ctx context.Context, id uuid.UUID) (*EditPage, error) {
	var (
		view      *InvoiceView
		customers []*CustomerView
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := q.invoices.FindByID(gctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}
		view = v
		return nil
	})
	g.Go(func() error {
		cs, err := q.customers.List(gctx)
		if err != nil {
			return err
		}
		customers = cs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &EditPage{
		Invoice:   view,
		Customers: customers,
	}, nil
}
