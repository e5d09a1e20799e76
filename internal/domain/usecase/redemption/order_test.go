package redemption

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/pictrify/credit-ledger/internal/domain/port/provider"
	portuse "github.com/pictrify/credit-ledger/internal/domain/port/usecase"
)

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	cfg := Config{WaitlistBonusCredits: 15, WaitlistAmount: 3900}

	plan := &entity.Plan{ID: 2, Name: "Creator", Price: 24900, CreditsGranted: 100}

	t.Run("Order without discount uses the full price", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.orders.EXPECT().CreateOrder(ctx, int64(24900), mock.AnythingOfType("string"), map[string]string{
			"planId":          "2",
			"userId":          "user-1",
			"discountApplied": "false",
		}).Return(&provider.Order{OrderID: "order_abc", Amount: 24900, Currency: "INR", KeyID: "rzp_key"}, nil)

		order, err := svc.CreateOrder(ctx, portuse.OrderCommand{UserID: "user-1", PlanID: 2})

		require.NoError(t, err)
		assert.Equal(t, "order_abc", order.OrderID)
		assert.Equal(t, int64(24900), order.Amount)
	})

	t.Run("Order with discount recomputes the amount server-side", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.discounts.EXPECT().Validate(ctx, "SAVE10").Return(&entity.DiscountInfo{
			Code:            "SAVE10",
			DiscountPercent: 10,
		}, nil)
		m.orders.EXPECT().CreateOrder(ctx, int64(22410), mock.AnythingOfType("string"), map[string]string{
			"planId":          "2",
			"userId":          "user-1",
			"discountApplied": "true",
		}).Return(&provider.Order{OrderID: "order_abc", Amount: 22410}, nil)

		order, err := svc.CreateOrder(ctx, portuse.OrderCommand{
			UserID:       "user-1",
			PlanID:       2,
			DiscountCode: "SAVE10",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(22410), order.Amount)
	})

	t.Run("Receipts are unique per order", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		var receipts []string
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil).Twice()
		m.orders.EXPECT().CreateOrder(ctx, int64(24900), mock.AnythingOfType("string"), mock.Anything).
			Run(func(_ context.Context, _ int64, receipt string, _ map[string]string) {
				receipts = append(receipts, receipt)
			}).
			Return(&provider.Order{OrderID: "order_abc", Amount: 24900}, nil).Twice()

		_, err := svc.CreateOrder(ctx, portuse.OrderCommand{UserID: "user-1", PlanID: 2})
		require.NoError(t, err)
		_, err = svc.CreateOrder(ctx, portuse.OrderCommand{UserID: "user-1", PlanID: 2})
		require.NoError(t, err)

		require.Len(t, receipts, 2)
		assert.NotEqual(t, receipts[0], receipts[1])
		assert.True(t, strings.HasPrefix(receipts[0], "rcpt_"))
	})

	t.Run("Rejected discount blocks order creation", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.discounts.EXPECT().Validate(ctx, "OLD").
			Return(nil, errs.NewDiscountError("OLD", errs.ErrDiscountExpired))

		order, err := svc.CreateOrder(ctx, portuse.OrderCommand{
			UserID:       "user-1",
			PlanID:       2,
			DiscountCode: "OLD",
		})

		assert.ErrorIs(t, err, errs.ErrDiscountExpired)
		assert.Nil(t, order)
		m.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Provider failure wraps as provider error", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.orders.EXPECT().CreateOrder(ctx, int64(24900), mock.AnythingOfType("string"), mock.Anything).
			Return(nil, errors.New("gateway unavailable"))

		order, err := svc.CreateOrder(ctx, portuse.OrderCommand{UserID: "user-1", PlanID: 2})

		assert.ErrorIs(t, err, errs.ErrProviderError)
		assert.Nil(t, order)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.planRepo.EXPECT().GetByID(ctx, uint64(99)).Return(nil, errs.ErrPlanNotFound)

		order, err := svc.CreateOrder(ctx, portuse.OrderCommand{UserID: "user-1", PlanID: 99})

		assert.ErrorIs(t, err, errs.ErrPlanNotFound)
		assert.Nil(t, order)
	})

	t.Run("Empty user ID rejected", func(t *testing.T) {
		svc, _ := newServiceForTest(t, cfg)

		order, err := svc.CreateOrder(ctx, portuse.OrderCommand{PlanID: 2})

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, order)
	})
}

func TestCreateWaitlistOrder(t *testing.T) {
	ctx := context.Background()
	cfg := Config{WaitlistBonusCredits: 15, WaitlistAmount: 3900}

	t.Run("Waitlist order uses the fixed amount", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.orders.EXPECT().CreateOrder(ctx, int64(3900), mock.AnythingOfType("string"), map[string]string{
			"userId":  "user-1",
			"purpose": "waitlist",
		}).Return(&provider.Order{OrderID: "order_wl", Amount: 3900}, nil)

		order, err := svc.CreateWaitlistOrder(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, int64(3900), order.Amount)
	})

	t.Run("Provider failure wraps as provider error", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.orders.EXPECT().CreateOrder(ctx, int64(3900), mock.AnythingOfType("string"), mock.Anything).
			Return(nil, errors.New("gateway unavailable"))

		order, err := svc.CreateWaitlistOrder(ctx, "user-1")

		assert.ErrorIs(t, err, errs.ErrProviderError)
		assert.Nil(t, order)
	})

	t.Run("Empty user ID rejected", func(t *testing.T) {
		svc, _ := newServiceForTest(t, cfg)

		order, err := svc.CreateWaitlistOrder(ctx, "")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, order)
	})
}
