package account

import (
	"context"
	"errors"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/persistence"
)

// UseCase implements account lifecycle and balance queries
type UseCase struct {
	accountRepo     persistence.AccountRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	signupGrant     int64
}

// NewUseCase creates a new account use case. signupGrant is the fixed credit
// amount seeded into every new account.
func NewUseCase(
	accountRepo persistence.AccountRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	signupGrant int64,
) *UseCase {
	return &UseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
		signupGrant:     signupGrant,
	}
}

// CreateAccount provisions a ledger account for an externally-authenticated user
func (uc *UseCase) CreateAccount(ctx context.Context, userID string, isAdmin bool) (*entity.Account, error) {
	account, err := entity.NewAccount(userID, uc.signupGrant, uc.timeProvider)
	if err != nil {
		return nil, err
	}
	account.IsAdmin = isAdmin

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		uc.logger.Error("Failed to create account", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	uc.logger.Info("Account created", map[string]any{
		"user_id": userID,
		"credits": account.Credits(),
	})
	return account, nil
}

// GetAccount retrieves an account by user ID
func (uc *UseCase) GetAccount(ctx context.Context, userID string) (*entity.Account, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	account, err := uc.accountRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, errs.ErrUserNotFound) {
			uc.logger.Error("Failed to get account", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		return nil, err
	}
	return account, nil
}

// GetBalance returns the current credit balance for a user
func (uc *UseCase) GetBalance(ctx context.Context, userID string) (int64, error) {
	account, err := uc.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}

	uc.logger.Info("Account balance retrieved", map[string]any{
		"user_id": userID,
		"credits": account.Credits(),
	})
	return account.Credits(), nil
}

// AccountExists reports whether an account exists for the user
func (uc *UseCase) AccountExists(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, errs.ErrInvalidUserID
	}

	_, err := uc.accountRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListAccounts returns all accounts (admin surface)
func (uc *UseCase) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	return uc.accountRepo.List(ctx)
}

// ListTransactions returns the full transaction log (admin surface)
func (uc *UseCase) ListTransactions(ctx context.Context) ([]*entity.TransactionRecord, error) {
	return uc.transactionRepo.List(ctx)
}
