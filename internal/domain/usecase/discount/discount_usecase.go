package discount

import (
	"context"
	"time"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/persistence"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
)

// UseCase implements the discount registry operations
type UseCase struct {
	discountRepo persistence.DiscountRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new discount use case
func NewUseCase(
	discountRepo persistence.DiscountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		discountRepo: discountRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Validate checks a raw code against existence, expiry and the usage cap.
// Any earlier client-side validation is advisory only; redemption calls this
// again at redemption time.
func (uc *UseCase) Validate(ctx context.Context, rawCode string) (*entity.DiscountInfo, error) {
	code := entity.NormalizeCode(rawCode)
	if code == "" {
		return nil, errs.ErrInvalidDiscount
	}

	record, err := uc.discountRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := record.Validate(uc.timeProvider.Now())
	if err != nil {
		uc.logger.Info("Discount code rejected", map[string]any{
			"code":  code,
			"error": err.Error(),
		})
		return nil, err
	}

	return info, nil
}

// Usage reports the current consumption state of a code
func (uc *UseCase) Usage(ctx context.Context, rawCode string) (*usecase.UsageReport, error) {
	code := entity.NormalizeCode(rawCode)
	if code == "" {
		return nil, errs.ErrInvalidDiscount
	}

	record, err := uc.discountRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	remaining, unlimited := record.RemainingUses()
	report := &usecase.UsageReport{
		Code:            record.Code,
		CurrentUsage:    record.Used,
		MaxUses:         record.MaxUses,
		Remaining:       remaining,
		IsValid:         unlimited || !record.IsExhausted(),
		DiscountPercent: record.DiscountPercent,
	}
	return report, nil
}

// CreateCode registers a new discount code (admin surface)
func (uc *UseCase) CreateCode(
	ctx context.Context,
	rawCode string,
	percent int64,
	maxUses *int64,
	expiresAt *time.Time,
) (*entity.DiscountCode, error) {
	record, err := entity.NewDiscountCode(rawCode, percent, maxUses, expiresAt, uc.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.discountRepo.Create(ctx, record); err != nil {
		uc.logger.Error("Failed to create discount code", map[string]any{
			"code":  record.Code,
			"error": err.Error(),
		})
		return nil, err
	}

	uc.logger.Info("Discount code created", map[string]any{
		"code":    record.Code,
		"percent": record.DiscountPercent,
	})
	return record, nil
}

// DeleteCode removes a discount code (admin surface)
func (uc *UseCase) DeleteCode(ctx context.Context, rawCode string) error {
	code := entity.NormalizeCode(rawCode)
	if code == "" {
		return errs.ErrInvalidDiscount
	}

	if err := uc.discountRepo.Delete(ctx, code); err != nil {
		return err
	}

	uc.logger.Info("Discount code deleted", map[string]any{
		"code": code,
	})
	return nil
}

// ListCodes returns all discount codes (admin surface)
func (uc *UseCase) ListCodes(ctx context.Context) ([]*entity.DiscountCode, error) {
	return uc.discountRepo.List(ctx)
}

// IncrementUsage bumps a code's usage counter. The repository performs the
// read-check-increment as one conditional update, so two concurrent
// redemptions can never push the counter past the cap.
func (uc *UseCase) IncrementUsage(ctx context.Context, rawCode string) (int64, error) {
	code := entity.NormalizeCode(rawCode)
	if code == "" {
		return 0, errs.ErrInvalidDiscount
	}

	newUsage, err := uc.discountRepo.IncrementUsage(ctx, code)
	if err != nil {
		return 0, err
	}

	uc.logger.Debug("Discount usage incremented", map[string]any{
		"code":  code,
		"usage": newUsage,
	})
	return newUsage, nil
}
