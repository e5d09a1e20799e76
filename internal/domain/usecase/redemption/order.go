package redemption

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/pictrify/credit-ledger/internal/domain/port/provider"
	"github.com/pictrify/credit-ledger/internal/domain/port/usecase"
)

// CreateOrder resolves the plan, computes the discounted amount server-side
// and registers an order at the payment provider. The amount is always
// recomputed here; a total sent by the client is never trusted.
func (s *Service) CreateOrder(ctx context.Context, cmd usecase.OrderCommand) (*provider.Order, error) {
	if cmd.UserID == "" {
		return nil, errs.ErrInvalidUserID
	}

	plan, err := s.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		return nil, err
	}

	amount := plan.Price
	discountApplied := false
	if cmd.DiscountCode != "" {
		info, err := s.discounts.Validate(ctx, cmd.DiscountCode)
		if err != nil {
			return nil, err
		}
		amount = plan.DiscountedPrice(info.DiscountPercent)
		discountApplied = true
	}

	order, err := s.orders.CreateOrder(ctx, amount, s.newReceipt(), map[string]string{
		"planId":          strconv.FormatUint(cmd.PlanID, 10),
		"userId":          cmd.UserID,
		"discountApplied": strconv.FormatBool(discountApplied),
	})
	if err != nil {
		s.logger.Error("Failed to create payment order", map[string]any{
			"user_id": cmd.UserID,
			"plan_id": cmd.PlanID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: order creation: %s", errs.ErrProviderError, err.Error())
	}

	s.logger.Info("Payment order created", map[string]any{
		"user_id":  cmd.UserID,
		"plan_id":  cmd.PlanID,
		"order_id": order.OrderID,
		"amount":   order.Amount,
	})
	return order, nil
}

// CreateWaitlistOrder registers a fixed-amount waitlist order
func (s *Service) CreateWaitlistOrder(ctx context.Context, userID string) (*provider.Order, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	order, err := s.orders.CreateOrder(ctx, s.cfg.WaitlistAmount, s.newReceipt(), map[string]string{
		"userId":  userID,
		"purpose": "waitlist",
	})
	if err != nil {
		s.logger.Error("Failed to create waitlist order", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: order creation: %s", errs.ErrProviderError, err.Error())
	}

	s.logger.Info("Waitlist order created", map[string]any{
		"user_id":  userID,
		"order_id": order.OrderID,
		"amount":   order.Amount,
	})
	return order, nil
}

// newReceipt generates a unique merchant reference for an order
func (s *Service) newReceipt() string {
	return "rcpt_" + uuid.NewString()
}
