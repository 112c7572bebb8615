package readstore

import (
	"context"
	"errors"

	"invoice-dashboard/internal/infra"
	"invoice-dashboard/internal/infra/db"
	"invoice-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(dbtx db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: dbtx}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	view := &queries.InvoiceView{}
	err := r.db.QueryRow(ctx,
		`SELECT id, customer_id, amount, status, date
		 FROM invoices
		 WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.CustomerID, &view.Amount, &view.Status, &view.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get invoice by id", err)
	}
	return view, nil
}

func (r *InvoiceReadStore) List(ctx context.Context) ([]*queries.InvoiceListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.customer_id, c.name, c.email, c.image_url, i.amount, i.status, i.date
		 FROM invoices i
		 JOIN customers c ON c.id = i.customer_id
		 ORDER BY i.date DESC, i.id`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	defer rows.Close()

	var items []*queries.InvoiceListItem
	for rows.Next() {
		item := &queries.InvoiceListItem{}
		if err := rows.Scan(
			&item.ID, &item.CustomerID, &item.CustomerName, &item.CustomerEmail,
			&item.ImageURL, &item.Amount, &item.Status, &item.Date,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate invoice rows", err)
	}

	return items, nil
}
