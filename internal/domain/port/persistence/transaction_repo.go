package persistence

import (
	"context"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
)

// TransactionRepository defines the methods to interact with the append-only
// transaction log
type TransactionRepository interface {
	// Append saves a new transaction record. Callers on the redemption path
	// treat a failure here as non-fatal: it is logged, never surfaced, and
	// never used to reverse a committed credit grant.
	//
	// Possible errors:
	// - ErrAuditWriteFailed: if the record could not be written
	Append(ctx context.Context, record *entity.TransactionRecord) error

	// ListByUser returns all transaction records for a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.TransactionRecord, error)

	// List returns all transaction records, newest first (admin surface)
	List(ctx context.Context) ([]*entity.TransactionRecord, error)
}
