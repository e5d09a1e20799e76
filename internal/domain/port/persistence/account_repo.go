package persistence

import (
	"context"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
)

// AccountRepository defines the methods to interact with credit accounts.
// All balance mutations are single atomic conditional updates at the data
// store; application code never computes a new balance from a prior read.
type AccountRepository interface {
	// GetByID retrieves an account by its external user ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no account with the specified ID exists
	// - ErrDatabaseConnection: if the database connection fails
	GetByID(ctx context.Context, id string) (*entity.Account, error)

	// Create creates a new account (used at signup with the starting grant)
	//
	// Possible errors:
	// - ErrDuplicateUser: if an account with the same ID already exists
	// - ErrDatabaseConnection: if the database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// AddCredits atomically increments the balance by delta
	// (UPDATE accounts SET credits = credits + delta WHERE id = ?).
	// Returns the account with the post-update balance.
	//
	// Possible errors:
	// - ErrUserNotFound: if the account doesn't exist
	// - ErrCreditUpdateFailed: if the update could not be applied
	AddCredits(ctx context.Context, id string, delta int64) (*entity.Account, error)

	// DeductCredits atomically decrements the balance by cost, guarded so the
	// balance can never go negative
	// (UPDATE ... SET credits = credits - cost WHERE id = ? AND credits >= cost).
	// Returns the account with the post-update balance.
	//
	// Possible errors:
	// - ErrUserNotFound: if the account doesn't exist
	// - ErrInsufficientCredits: if the guard rejected the update
	DeductCredits(ctx context.Context, id string, cost int64) (*entity.Account, error)

	// MarkFlagGranted atomically sets a one-time grant flag, guarded so a flag
	// already present rejects the update.
	//
	// Possible errors:
	// - ErrUserNotFound: if the account doesn't exist
	// - ErrAlreadyGranted: if the flag was already set
	MarkFlagGranted(ctx context.Context, id string, flag string) error

	// List returns all accounts (admin surface)
	List(ctx context.Context) ([]*entity.Account, error)
}
