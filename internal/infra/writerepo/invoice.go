package writerepo

import (
	"context"
	"errors"

	domInvoice "invoice-dashboard/internal/domain/invoice"
	"invoice-dashboard/internal/infra"
	"invoice-dashboard/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeUniqueViolation     = "23505"
)

type InvoiceRepository struct{}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{}
}

func (r *InvoiceRepository) Create(ctx context.Context, dbtx db.DBTX, inv *domInvoice.Invoice) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx,
		`INSERT INTO invoices (id, customer_id, amount, status, date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		inv.ID(), inv.CustomerID(), inv.Amount().Value(), inv.Status().String(), inv.Date(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert invoice", err, classifyWriteError(err))
	}
	return id, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, dbtx db.DBTX, id, customerID uuid.UUID, amountCents int64, status string) error {
	_, err := dbtx.Exec(ctx,
		`UPDATE invoices
		 SET customer_id = $1, amount = $2, status = $3, updated_at = now()
		 WHERE id = $4`,
		customerID, amountCents, status, id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice", err, classifyWriteError(err))
	}
	return nil
}

// Delete does not distinguish an absent id from a deleted row.
func (r *InvoiceRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	_, err := dbtx.Exec(ctx,
		`DELETE FROM invoices WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete invoice", err)
	}
	return nil
}

func classifyWriteError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeForeignKeyViolation:
		return infra.KindForeignKeyViolated
	case pgErrCodeUniqueViolation:
		return infra.KindDuplicateKey
	default:
		return infra.KindDBFailure
	}
}
