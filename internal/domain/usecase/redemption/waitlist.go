package redemption

import (
	"context"
	"errors"
	"fmt"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
)

// RedeemWaitlist grants the one-time waitlist bonus: a parameterized instance
// of the purchase protocol with a fixed price, no plan and no discount path.
// The waitlist_1st_launch flag is checked-and-set in one conditional update
// before the grant, so a second call fails with AlreadyGranted instead of
// double-paying.
func (s *Service) RedeemWaitlist(ctx context.Context, cmd usecase.WaitlistRedeemCommand) (*usecase.RedeemResult, error) {
	if cmd.UserID == "" {
		return nil, errs.ErrInvalidUserID
	}

	if err := s.verifier.VerifySignature(cmd.OrderID, cmd.PaymentID, cmd.Signature); err != nil {
		s.logger.Warn("Waitlist payment signature rejected", map[string]any{
			"user_id":  cmd.UserID,
			"order_id": cmd.OrderID,
		})
		return nil, err
	}

	if err := s.accountRepo.MarkFlagGranted(ctx, cmd.UserID, entity.WaitlistFirstLaunch); err != nil {
		if errors.Is(err, errs.ErrAlreadyGranted) {
			s.logger.Info("Waitlist bonus already granted", map[string]any{
				"user_id": cmd.UserID,
			})
		}
		return nil, err
	}

	account, err := s.accountRepo.AddCredits(ctx, cmd.UserID, s.cfg.WaitlistBonusCredits)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, err
		}
		return nil, errs.NewRedemptionError(
			cmd.UserID, 0, "", cmd.PaymentID,
			"waitlist credit grant failed",
			fmt.Errorf("%w: %s", errs.ErrCreditUpdateFailed, err.Error()),
		)
	}

	s.appendRecord(ctx, cmd.UserID, s.cfg.WaitlistAmount, entity.TypeWaitlistGrant, cmd.PaymentID, s.cfg.WaitlistBonusCredits)

	s.logger.Info("Waitlist bonus granted", map[string]any{
		"user_id":     cmd.UserID,
		"payment_ref": cmd.PaymentID,
		"credits":     s.cfg.WaitlistBonusCredits,
		"new_balance": account.Credits(),
	})

	return &usecase.RedeemResult{
		NewBalance:    account.Credits(),
		AmountCharged: s.cfg.WaitlistAmount,
	}, nil
}
