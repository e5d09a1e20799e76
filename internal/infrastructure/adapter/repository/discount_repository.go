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

// DiscountRepository implements persistence.DiscountRepository using GORM.
// The usage counter is only ever moved by a cap-guarded conditional UPDATE.
type DiscountRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewDiscountRepository creates a new DiscountRepository instance
func NewDiscountRepository(db *gorm.DB, logger coreport.Logger) *DiscountRepository {
	return &DiscountRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *DiscountRepository) modelToEntity(discountModel *model.Discount) *entity.DiscountCode {
	return &entity.DiscountCode{
		ID:              discountModel.ID,
		Code:            discountModel.Code,
		DiscountPercent: discountModel.DiscountPercent,
		MaxUses:         discountModel.MaxUses,
		Used:            discountModel.Used,
		ExpiresAt:       discountModel.ExpiresAt,
		CreatedAt:       discountModel.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *DiscountRepository) handleDatabaseError(operation string, err error, code string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"code":  code,
		"error": err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrDiscountNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate discount code", map[string]any{
			"code": code,
		})
		return errs.ErrDuplicateDiscount
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByCode retrieves a discount code by its normalized code
func (r *DiscountRepository) GetByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	var discountModel model.Discount
	result := r.db.WithContext(ctx).First(&discountModel, "code = ?", code)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDiscountNotFound
		}
		return nil, r.handleDatabaseError("getting discount", result.Error, code)
	}

	return r.modelToEntity(&discountModel), nil
}

// Create creates a new discount code
func (r *DiscountRepository) Create(ctx context.Context, discount *entity.DiscountCode) error {
	discountModel := model.Discount{
		Code:            discount.Code,
		DiscountPercent: discount.DiscountPercent,
		MaxUses:         discount.MaxUses,
		Used:            discount.Used,
		ExpiresAt:       discount.ExpiresAt,
		CreatedAt:       discount.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&discountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating discount", result.Error, discount.Code)
	}

	discount.ID = discountModel.ID

	r.logger.Info("Discount code created", map[string]any{
		"code":    discount.Code,
		"percent": discount.DiscountPercent,
	})
	return nil
}

// Delete removes a discount code
func (r *DiscountRepository) Delete(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).Where("code = ?", code).Delete(&model.Discount{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting discount", result.Error, code)
	}

	if result.RowsAffected == 0 {
		return errs.ErrDiscountNotFound
	}

	r.logger.Info("Discount code deleted", map[string]any{
		"code": code,
	})
	return nil
}

// List returns all discount codes ordered by creation time
func (r *DiscountRepository) List(ctx context.Context) ([]*entity.DiscountCode, error) {
	var discountModels []model.Discount
	result := r.db.WithContext(ctx).Order("created_at desc").Find(&discountModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing discounts", result.Error, "")
	}

	discounts := make([]*entity.DiscountCode, 0, len(discountModels))
	for i := range discountModels {
		discounts = append(discounts, r.modelToEntity(&discountModels[i]))
	}
	return discounts, nil
}

// IncrementUsage atomically bumps the usage counter, guarded by the cap.
// Zero rows affected means either the code vanished or a concurrent
// redemption consumed the last use.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, code string) (int64, error) {
	var discountModel model.Discount
	result := r.db.WithContext(ctx).
		Model(&discountModel).
		Clauses(clause.Returning{}).
		Where("code = ? AND (max_uses IS NULL OR used < max_uses)", code).
		Update("used", gorm.Expr("used + 1"))

	if result.Error != nil {
		return 0, r.handleDatabaseError("incrementing discount usage", result.Error, code)
	}

	if result.RowsAffected == 0 {
		if _, err := r.GetByCode(ctx, code); err != nil {
			return 0, err
		}
		r.logger.Warn("Discount usage cap reached", map[string]any{
			"code": code,
		})
		return 0, errs.NewDiscountError(code, errs.ErrMaxUsesReached)
	}

	r.logger.Info("Discount usage incremented", map[string]any{
		"code": code,
		"used": discountModel.Used,
	})
	return discountModel.Used, nil
}
