package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements persistence.AccountRepository using GORM.
// Balance mutations are single conditional UPDATE statements so concurrent
// requests can never interleave a stale read into a write.
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) *entity.Account {
	account := &entity.Account{
		ID:             accountModel.ID,
		IsAdmin:        accountModel.IsAdmin,
		WaitlistStatus: accountModel.WaitlistStatus,
		CreatedAt:      accountModel.CreatedAt,
		UpdatedAt:      accountModel.UpdatedAt,
	}
	if account.WaitlistStatus == nil {
		account.WaitlistStatus = map[string]bool{}
	}
	account.SetCredits(accountModel.Credits, r.timeProvider)
	account.UpdatedAt = accountModel.UpdatedAt
	return account
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, userID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate account operation", map[string]any{
			"user_id": userID,
		})
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account by its external user ID
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).First(&accountModel, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.handleDatabaseError("getting account", result.Error, id)
	}

	return r.modelToEntity(&accountModel), nil
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating new account", map[string]any{
		"user_id": account.ID,
		"credits": account.Credits(),
	})

	accountModel := model.Account{
		ID:             account.ID,
		Credits:        account.Credits(),
		IsAdmin:        account.IsAdmin,
		WaitlistStatus: account.WaitlistStatus,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
	if accountModel.WaitlistStatus == nil {
		accountModel.WaitlistStatus = map[string]bool{}
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.ID)
	}

	r.logger.Info("Account created successfully", map[string]any{
		"user_id": account.ID,
		"credits": account.Credits(),
	})
	return nil
}

// AddCredits atomically increments the balance and returns the updated account
func (r *AccountRepository) AddCredits(ctx context.Context, id string, delta int64) (*entity.Account, error) {
	if delta < 0 {
		return nil, errs.ErrNegativeAmount
	}

	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Model(&accountModel).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"credits":    gorm.Expr("credits + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("adding credits", result.Error, id)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Account not found during credit grant", map[string]any{
			"user_id": id,
		})
		return nil, errs.ErrUserNotFound
	}

	r.logger.Info("Credits granted", map[string]any{
		"user_id":     id,
		"delta":       delta,
		"new_balance": accountModel.Credits,
	})

	return r.modelToEntity(&accountModel), nil
}

// DeductCredits atomically decrements the balance, guarded against going
// negative, and returns the updated account
func (r *AccountRepository) DeductCredits(ctx context.Context, id string, cost int64) (*entity.Account, error) {
	if cost < 0 {
		return nil, errs.ErrNegativeAmount
	}

	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Model(&accountModel).
		Clauses(clause.Returning{}).
		Where("id = ? AND credits >= ?", id, cost).
		Updates(map[string]any{
			"credits":    gorm.Expr("credits - ?", cost),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("deducting credits", result.Error, id)
	}

	if result.RowsAffected == 0 {
		// The guard rejected the update. Distinguish a missing account from an
		// insufficient balance with a follow-up read.
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		r.logger.Warn("Insufficient credits for debit", map[string]any{
			"user_id": id,
			"cost":    cost,
			"credits": current.Credits(),
		})
		return nil, errs.NewInsufficientCreditsError(id, cost, current.Credits())
	}

	r.logger.Info("Credits deducted", map[string]any{
		"user_id":     id,
		"cost":        cost,
		"new_balance": accountModel.Credits,
	})

	return r.modelToEntity(&accountModel), nil
}

// MarkFlagGranted atomically sets a one-time grant flag. The jsonb_exists
// guard makes the second caller lose the race instead of double-granting.
func (r *AccountRepository) MarkFlagGranted(ctx context.Context, id string, flag string) error {
	result := r.db.WithContext(ctx).Exec(
		`UPDATE accounts
		 SET waitlist_status = waitlist_status || jsonb_build_object(?::text, true),
		     updated_at = ?
		 WHERE id = ? AND NOT jsonb_exists(waitlist_status, ?)`,
		flag, r.timeProvider.Now(), id, flag,
	)

	if result.Error != nil {
		return r.handleDatabaseError("marking grant flag", result.Error, id)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		r.logger.Warn("One-time grant flag already set", map[string]any{
			"user_id": id,
			"flag":    flag,
		})
		return errs.ErrAlreadyGranted
	}

	r.logger.Info("One-time grant flag set", map[string]any{
		"user_id": id,
		"flag":    flag,
	})
	return nil
}

// List returns all accounts ordered by creation time
func (r *AccountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.Account
	result := r.db.WithContext(ctx).Order("created_at asc").Find(&accountModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing accounts", result.Error, "")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, r.modelToEntity(&accountModels[i]))
	}
	return accounts, nil
}
