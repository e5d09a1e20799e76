package consumption

import (
	"context"
	"errors"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
	"github.com/pictrify/credit-ledger/internal/domain/port/persistence"
	"github.com/pictrify/credit-ledger/internal/domain/port/provider"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
)

// UseCase implements the debit protocol around the image-generation provider.
//
// Credits are held up front with a guarded conditional debit, then released if
// the provider call fails. The hold makes InsufficientCredits atomic with the
// debit: two concurrent requests for the same account can never drive the
// balance negative, and a provider failure never leaves the user charged.
type UseCase struct {
	accountRepo  persistence.AccountRepository
	transformer  provider.Transformer
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cost         int64 // Credits per transformation
}

// NewUseCase creates a new consumption use case. cost is the fixed credit
// price of one transformation.
func NewUseCase(
	accountRepo persistence.AccountRepository,
	transformer provider.Transformer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cost int64,
) *UseCase {
	return &UseCase{
		accountRepo:  accountRepo,
		transformer:  transformer,
		timeProvider: timeProvider,
		logger:       logger,
		cost:         cost,
	}
}

// Transform runs one paid transformation for the user
func (uc *UseCase) Transform(ctx context.Context, cmd usecase.TransformCommand) (*usecase.TransformOutcome, error) {
	if cmd.UserID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if len(cmd.Image) == 0 || cmd.Style == "" {
		return nil, errs.ErrInvalidRequest
	}

	// Hold the credits. The guard rejects the update when the balance cannot
	// cover the cost, so the balance never goes negative.
	account, err := uc.accountRepo.DeductCredits(ctx, cmd.UserID, uc.cost)
	if err != nil {
		if errors.Is(err, errs.ErrInsufficientCredits) {
			uc.logger.Info("Transformation rejected: insufficient credits", map[string]any{
				"user_id": cmd.UserID,
				"cost":    uc.cost,
			})
		}
		return nil, err
	}

	start := uc.timeProvider.Now()
	result, err := uc.transformer.Transform(ctx, provider.TransformRequest{
		Image:       cmd.Image,
		ContentType: cmd.ContentType,
		Style:       cmd.Style,
	})
	if err != nil {
		uc.releaseHold(ctx, cmd.UserID)
		uc.logger.Warn("Transformation provider call failed", map[string]any{
			"user_id":    cmd.UserID,
			"style":      cmd.Style,
			"elapsed_ms": uc.timeProvider.Since(start).Milliseconds(),
			"error":      err.Error(),
		})
		return nil, err
	}

	uc.logger.Info("Transformation completed", map[string]any{
		"user_id":           cmd.UserID,
		"style":             cmd.Style,
		"cost":              uc.cost,
		"remaining_credits": account.Credits(),
		"elapsed_ms":        uc.timeProvider.Since(start).Milliseconds(),
	})

	return &usecase.TransformOutcome{
		ImageURL:         result.ImageURL,
		RemainingCredits: account.Credits(),
	}, nil
}

// releaseHold refunds the held credits after a provider failure. A failed
// refund is the one accepted loss in this flow; it is logged loudly so an
// operator can compensate manually.
func (uc *UseCase) releaseHold(ctx context.Context, userID string) {
	if _, err := uc.accountRepo.AddCredits(ctx, userID, uc.cost); err != nil {
		uc.logger.Error("Failed to release credit hold after provider failure", map[string]any{
			"user_id": userID,
			"cost":    uc.cost,
			"error":   err.Error(),
		})
	}
}
