package shared

import (
	"context"

	domInvoice "invoice-dashboard/internal/domain/invoice"
	"invoice-dashboard/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Invoices() InvoiceRepository
	Users() UserRepository
	DB() db.DBTX
}

type InvoiceRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, inv *domInvoice.Invoice) (uuid.UUID, error)
	// Update writes the three resubmittable columns keyed by id. Row existence
	// is not checked beforehand.
	Update(ctx context.Context, dbtx db.DBTX, id, customerID uuid.UUID, amountCents int64, status string) error
	// Delete is idempotent: deleting an absent id is not an error.
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
