package redemption

import (
	"context"
	"errors"
	"fmt"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
)

// Redeem completes a plan purchase. Steps, in order:
//
//  1. Authenticate the payment signature (the single security-critical check).
//  2. Resolve the plan.
//  3. Re-validate the discount code server-side; the client's earlier
//     validation is advisory only.
//  4. Compute the final charged amount in minor units.
//  5. Apply the credit grant atomically. This is the step whose failure aborts
//     the redemption.
//  6. Append the transaction record and bump the discount usage counter,
//     best-effort: failures are logged and never reverse the grant. An
//     under-counted audit trail beats a user who paid and received nothing.
func (s *Service) Redeem(ctx context.Context, cmd usecase.RedeemCommand) (*usecase.RedeemResult, error) {
	if cmd.UserID == "" {
		return nil, errs.ErrInvalidUserID
	}

	if err := s.verifier.VerifySignature(cmd.OrderID, cmd.PaymentID, cmd.Signature); err != nil {
		s.logger.Warn("Payment signature rejected", map[string]any{
			"user_id":  cmd.UserID,
			"order_id": cmd.OrderID,
		})
		return nil, err
	}

	plan, err := s.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}

	var discountPercent int64
	if cmd.DiscountCode != "" {
		info, err := s.discounts.Validate(ctx, cmd.DiscountCode)
		if err != nil {
			return nil, err
		}
		discountPercent = info.DiscountPercent
	}

	finalAmount := plan.DiscountedPrice(discountPercent)

	account, err := s.accountRepo.AddCredits(ctx, cmd.UserID, plan.CreditsGranted)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, err
		}
		return nil, errs.NewRedemptionError(
			cmd.UserID, cmd.PlanID, cmd.DiscountCode, cmd.PaymentID,
			"credit grant failed",
			fmt.Errorf("%w: %s", errs.ErrCreditUpdateFailed, err.Error()),
		)
	}

	s.appendRecord(ctx, cmd.UserID, finalAmount, entity.TypePlanPurchase, cmd.PaymentID, plan.CreditsGranted)

	if cmd.DiscountCode != "" {
		if _, err := s.discounts.IncrementUsage(ctx, cmd.DiscountCode); err != nil {
			// The grant is already committed; a cap race or write failure here
			// only under-counts the audit trail.
			s.logger.Warn("Discount usage increment failed after grant", map[string]any{
				"user_id": cmd.UserID,
				"code":    cmd.DiscountCode,
				"error":   err.Error(),
			})
		}
	}

	s.logger.Info("Redemption completed", map[string]any{
		"user_id":        cmd.UserID,
		"plan_id":        cmd.PlanID,
		"payment_ref":    cmd.PaymentID,
		"amount_charged": entity.MinorUnitsToString(finalAmount),
		"new_balance":    account.Credits(),
	})

	return &usecase.RedeemResult{
		NewBalance:    account.Credits(),
		AmountCharged: finalAmount,
	}, nil
}

// appendRecord writes an audit entry for a committed grant. Failures are
// swallowed after logging: the log must never block or roll back a grant.
func (s *Service) appendRecord(
	ctx context.Context,
	userID string,
	amount int64,
	txType entity.TransactionType,
	paymentRef string,
	creditsGranted int64,
) {
	record, err := entity.NewTransactionRecord(userID, amount, txType, paymentRef, creditsGranted, s.timeProvider.Now())
	if err == nil {
		err = s.transactionRepo.Append(ctx, record)
	}
	if err != nil {
		s.logger.Error("Transaction record write failed after grant", map[string]any{
			"user_id":     userID,
			"payment_ref": paymentRef,
			"type":        string(txType),
			"error":       err.Error(),
		})
	}
}
