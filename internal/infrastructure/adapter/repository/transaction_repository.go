package repository

import (
	"context"
	"fmt"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) modelToEntity(txModel *model.Transaction) *entity.TransactionRecord {
	record := &entity.TransactionRecord{
		ID:             txModel.ID,
		UserID:         txModel.UserID,
		Amount:         txModel.Amount,
		Type:           entity.TransactionType(txModel.Type),
		CreditsGranted: txModel.CreditsGranted,
		CreatedAt:      txModel.CreatedAt,
	}
	if txModel.PaymentRef != nil {
		record.PaymentRef = *txModel.PaymentRef
	}
	return record
}

// Append saves a new transaction record
func (r *TransactionRepository) Append(ctx context.Context, record *entity.TransactionRecord) error {
	txModel := model.Transaction{
		UserID:         record.UserID,
		Amount:         record.Amount,
		Type:           string(record.Type),
		CreditsGranted: record.CreditsGranted,
		CreatedAt:      record.CreatedAt,
	}
	if record.PaymentRef != "" {
		txModel.PaymentRef = &record.PaymentRef
	}

	result := r.db.WithContext(ctx).Create(&txModel)
	if result.Error != nil {
		r.logger.Error("Failed to append transaction record", map[string]any{
			"user_id":     record.UserID,
			"type":        string(record.Type),
			"payment_ref": record.PaymentRef,
			"error":       result.Error.Error(),
		})
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			// Same payment reference written twice, the log already holds it
			return nil
		}
		return fmt.Errorf("%w: %s", errs.ErrAuditWriteFailed, result.Error.Error())
	}

	record.ID = txModel.ID

	r.logger.Debug("Transaction record appended", map[string]any{
		"transaction_id": txModel.ID,
		"user_id":        record.UserID,
		"type":           string(record.Type),
	})
	return nil
}

// ListByUser returns all transaction records for a user, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.TransactionRecord, error) {
	var txModels []model.Transaction
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&txModels)
	if result.Error != nil {
		return nil, r.wrapListError(result.Error)
	}

	return r.toRecords(txModels), nil
}

// List returns all transaction records, newest first
func (r *TransactionRepository) List(ctx context.Context) ([]*entity.TransactionRecord, error) {
	var txModels []model.Transaction
	result := r.db.WithContext(ctx).Order("created_at desc").Find(&txModels)
	if result.Error != nil {
		return nil, r.wrapListError(result.Error)
	}

	return r.toRecords(txModels), nil
}

func (r *TransactionRepository) toRecords(txModels []model.Transaction) []*entity.TransactionRecord {
	records := make([]*entity.TransactionRecord, 0, len(txModels))
	for i := range txModels {
		records = append(records, r.modelToEntity(&txModels[i]))
	}
	return records
}

func (r *TransactionRepository) wrapListError(err error) error {
	r.logger.Error("Failed to list transaction records", map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
