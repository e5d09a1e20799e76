package redemption

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	portuse "github.com/pictrify/credit-ledger/internal/domain/port/usecase"
	mcore "github.com/pictrify/credit-ledger/mocks/port/core"
	mpers "github.com/pictrify/credit-ledger/mocks/port/persistence"
	mprov "github.com/pictrify/credit-ledger/mocks/port/provider"
	muse "github.com/pictrify/credit-ledger/mocks/port/usecase"
)

type serviceMocks struct {
	accountRepo     *mpers.MockAccountRepository
	planRepo        *mpers.MockPlanRepository
	transactionRepo *mpers.MockTransactionRepository
	discounts       *muse.MockDiscountUseCase
	orders          *mprov.MockOrderCreator
	verifier        *mprov.MockPaymentVerifier
	timeProvider    *mcore.MockTimeProvider
	logger          *mcore.MockLogger
}

func newServiceForTest(t *testing.T, cfg Config) (*Service, *serviceMocks) {
	m := &serviceMocks{
		accountRepo:     mpers.NewMockAccountRepository(t),
		planRepo:        mpers.NewMockPlanRepository(t),
		transactionRepo: mpers.NewMockTransactionRepository(t),
		discounts:       muse.NewMockDiscountUseCase(t),
		orders:          mprov.NewMockOrderCreator(t),
		verifier:        mprov.NewMockPaymentVerifier(t),
		timeProvider:    mcore.NewMockTimeProvider(t),
		logger:          mcore.NewMockLogger(t),
	}

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	svc := NewService(
		m.accountRepo,
		m.planRepo,
		m.transactionRepo,
		m.discounts,
		m.orders,
		m.verifier,
		m.timeProvider,
		m.logger,
		cfg,
	)
	return svc, m
}

func accountWithCredits(t *testing.T, id string, credits int64, at time.Time) *entity.Account {
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(at).Maybe()

	account, err := entity.NewAccount(id, credits, tp)
	require.NoError(t, err)
	return account
}

func TestRedeem(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	cfg := Config{WaitlistBonusCredits: 15, WaitlistAmount: 3900}

	plan := &entity.Plan{ID: 2, Name: "Creator", Price: 100, CreditsGranted: 20}
	cmd := portuse.RedeemCommand{
		UserID:       "user-1",
		PlanID:       2,
		DiscountCode: "SAVE10",
		OrderID:      "order_abc",
		PaymentID:    "pay_abc",
		Signature:    "sig_valid",
	}

	t.Run("Discounted purchase grants credits and bumps usage", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_valid").Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.discounts.EXPECT().Validate(ctx, "SAVE10").Return(&entity.DiscountInfo{
			Code:            "SAVE10",
			DiscountPercent: 10,
			RemainingUses:   3,
		}, nil)
		m.accountRepo.EXPECT().AddCredits(ctx, "user-1", int64(20)).
			Return(accountWithCredits(t, "user-1", 30, fixedTime), nil)
		m.timeProvider.EXPECT().Now().Return(fixedTime)
		m.transactionRepo.EXPECT().Append(ctx, mock.MatchedBy(func(r *entity.TransactionRecord) bool {
			return r.UserID == "user-1" &&
				r.Amount == 90 &&
				r.Type == entity.TypePlanPurchase &&
				r.PaymentRef == "pay_abc" &&
				r.CreditsGranted == 20
		})).Return(nil)
		m.discounts.EXPECT().IncrementUsage(ctx, "SAVE10").Return(3, nil)

		result, err := svc.Redeem(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(30), result.NewBalance)
		assert.Equal(t, int64(90), result.AmountCharged)
	})

	t.Run("Purchase without discount charges full price", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		plain := cmd
		plain.DiscountCode = ""

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_valid").Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.accountRepo.EXPECT().AddCredits(ctx, "user-1", int64(20)).
			Return(accountWithCredits(t, "user-1", 30, fixedTime), nil)
		m.timeProvider.EXPECT().Now().Return(fixedTime)
		m.transactionRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

		result, err := svc.Redeem(ctx, plain)

		require.NoError(t, err)
		assert.Equal(t, int64(100), result.AmountCharged)
	})

	t.Run("Invalid signature aborts before any state change", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		tampered := cmd
		tampered.Signature = "sig_forged"

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_forged").
			Return(errs.ErrInvalidSignature)

		result, err := svc.Redeem(ctx, tampered)

		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
		assert.Nil(t, result)
		m.accountRepo.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything)
		m.discounts.AssertNotCalled(t, "IncrementUsage", mock.Anything, mock.Anything)
	})

	t.Run("Exhausted discount rejected before the grant", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_valid").Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.discounts.EXPECT().Validate(ctx, "SAVE10").
			Return(nil, errs.NewDiscountError("SAVE10", errs.ErrMaxUsesReached))

		result, err := svc.Redeem(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrMaxUsesReached)
		assert.Nil(t, result)
		m.accountRepo.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_valid").Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(nil, errs.ErrPlanNotFound)

		result, err := svc.Redeem(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrPlanNotFound)
		assert.Nil(t, result)
	})

	t.Run("Unknown user passes through", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		plain := cmd
		plain.DiscountCode = ""

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_valid").Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.accountRepo.EXPECT().AddCredits(ctx, "user-1", int64(20)).
			Return(nil, errs.ErrUserNotFound)

		result, err := svc.Redeem(ctx, plain)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, result)
	})

	t.Run("Grant failure becomes a redemption error", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		plain := cmd
		plain.DiscountCode = ""

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_valid").Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.accountRepo.EXPECT().AddCredits(ctx, "user-1", int64(20)).
			Return(nil, errs.ErrDatabaseConnection)

		result, err := svc.Redeem(ctx, plain)

		assert.ErrorIs(t, err, errs.ErrCreditUpdateFailed)
		assert.Nil(t, result)

		var redemptionErr *errs.RedemptionError
		require.ErrorAs(t, err, &redemptionErr)
		assert.Equal(t, "user-1", redemptionErr.UserID)
		assert.Equal(t, "pay_abc", redemptionErr.PaymentRef)
	})

	t.Run("Audit write failure does not reverse the grant", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		plain := cmd
		plain.DiscountCode = ""

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_valid").Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.accountRepo.EXPECT().AddCredits(ctx, "user-1", int64(20)).
			Return(accountWithCredits(t, "user-1", 30, fixedTime), nil)
		m.timeProvider.EXPECT().Now().Return(fixedTime)
		m.transactionRepo.EXPECT().Append(ctx, mock.Anything).Return(errs.ErrAuditWriteFailed)

		result, err := svc.Redeem(ctx, plain)

		require.NoError(t, err)
		assert.Equal(t, int64(30), result.NewBalance)
	})

	t.Run("Usage increment failure after the grant is swallowed", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_valid").Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.discounts.EXPECT().Validate(ctx, "SAVE10").Return(&entity.DiscountInfo{
			Code:            "SAVE10",
			DiscountPercent: 10,
			RemainingUses:   1,
		}, nil)
		m.accountRepo.EXPECT().AddCredits(ctx, "user-1", int64(20)).
			Return(accountWithCredits(t, "user-1", 30, fixedTime), nil)
		m.timeProvider.EXPECT().Now().Return(fixedTime)
		m.transactionRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)
		m.discounts.EXPECT().IncrementUsage(ctx, "SAVE10").
			Return(0, errs.NewDiscountError("SAVE10", errs.ErrMaxUsesReached))

		result, err := svc.Redeem(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(30), result.NewBalance)
		assert.Equal(t, int64(90), result.AmountCharged)
	})

	t.Run("Empty user ID rejected", func(t *testing.T) {
		svc, _ := newServiceForTest(t, cfg)

		anonymous := cmd
		anonymous.UserID = ""

		result, err := svc.Redeem(ctx, anonymous)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, result)
	})

	t.Run("Result never reports a negative balance", func(t *testing.T) {
		svc, m := newServiceForTest(t, cfg)

		plain := cmd
		plain.DiscountCode = ""

		m.verifier.EXPECT().VerifySignature("order_abc", "pay_abc", "sig_valid").Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).Return(plan, nil)
		m.accountRepo.EXPECT().AddCredits(ctx, "user-1", int64(20)).
			Return(accountWithCredits(t, "user-1", 20, fixedTime), nil)
		m.timeProvider.EXPECT().Now().Return(fixedTime)
		m.transactionRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)

		result, err := svc.Redeem(ctx, plain)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.NewBalance, int64(0))
	})
}

func TestRedeemDiscountErrorPassthrough(t *testing.T) {
	ctx := context.Background()
	cfg := Config{WaitlistBonusCredits: 15, WaitlistAmount: 3900}

	for _, rejection := range []error{
		errs.NewDiscountError("SAVE10", errs.ErrDiscountExpired),
		errs.ErrDiscountNotFound,
	} {
		svc, m := newServiceForTest(t, cfg)

		m.verifier.EXPECT().VerifySignature(mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.planRepo.EXPECT().GetByID(ctx, uint64(2)).
			Return(&entity.Plan{ID: 2, Price: 100, CreditsGranted: 20}, nil)
		m.discounts.EXPECT().Validate(ctx, "SAVE10").Return(nil, rejection)

		_, err := svc.Redeem(ctx, portuse.RedeemCommand{
			UserID:       "user-1",
			PlanID:       2,
			DiscountCode: "SAVE10",
			OrderID:      "order_abc",
			PaymentID:    "pay_abc",
			Signature:    "sig_valid",
		})

		assert.True(t, errors.Is(err, rejection) || errs.IsDiscountRejection(err))
	}
}
