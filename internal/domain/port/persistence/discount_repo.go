package persistence

import (
	"context"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
)

// DiscountRepository defines the methods to interact with discount codes
type DiscountRepository interface {
	// GetByCode retrieves a discount code by its normalized code
	//
	// Possible errors:
	// - ErrDiscountNotFound: if no record matches the code
	// - ErrDatabaseConnection: if the database connection fails
	GetByCode(ctx context.Context, code string) (*entity.DiscountCode, error)

	// Create creates a new discount code (admin surface)
	//
	// Possible errors:
	// - ErrDuplicateDiscount: if a code with the same value already exists
	Create(ctx context.Context, discount *entity.DiscountCode) error

	// Delete removes a discount code (admin surface)
	//
	// Possible errors:
	// - ErrDiscountNotFound: if no record matches the code
	Delete(ctx context.Context, code string) error

	// List returns all discount codes (admin surface)
	List(ctx context.Context) ([]*entity.DiscountCode, error)

	// IncrementUsage atomically increments the usage counter, guarded by the
	// usage cap (UPDATE discounts SET used = used + 1 WHERE code = ? AND
	// (max_uses IS NULL OR used < max_uses)). Zero rows affected means the cap
	// was reached by a concurrent redemption.
	// Returns the new usage count.
	//
	// Possible errors:
	// - ErrDiscountNotFound: if no record matches the code
	// - ErrMaxUsesReached: if the guard rejected the increment
	IncrementUsage(ctx context.Context, code string) (int64, error)
}
