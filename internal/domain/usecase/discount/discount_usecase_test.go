package discount

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	mcore "github.com/pictrify/credit-ledger/mocks/port/core"
	mpers "github.com/pictrify/credit-ledger/mocks/port/persistence"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func newUseCaseForTest(t *testing.T) (*UseCase, *mpers.MockDiscountRepository, *mcore.MockTimeProvider) {
	discountRepo := mpers.NewMockDiscountRepository(t)
	timeProvider := mcore.NewMockTimeProvider(t)
	logger := mcore.NewMockLogger(t)

	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewUseCase(discountRepo, timeProvider, logger), discountRepo, timeProvider
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid code normalizes and reports remaining uses", func(t *testing.T) {
		uc, repo, tp := newUseCaseForTest(t)

		repo.EXPECT().GetByCode(ctx, "SAVE10").Return(&entity.DiscountCode{
			Code:            "SAVE10",
			DiscountPercent: 10,
			MaxUses:         int64Ptr(5),
			Used:            2,
		}, nil)
		tp.EXPECT().Now().Return(now)

		info, err := uc.Validate(ctx, "  save10 ")

		require.NoError(t, err)
		assert.Equal(t, "SAVE10", info.Code)
		assert.Equal(t, int64(10), info.DiscountPercent)
		assert.Equal(t, int64(3), info.RemainingUses)
		assert.False(t, info.Unlimited)
	})

	t.Run("Code at its usage cap rejected", func(t *testing.T) {
		uc, repo, tp := newUseCaseForTest(t)

		repo.EXPECT().GetByCode(ctx, "GONE").Return(&entity.DiscountCode{
			Code:            "GONE",
			DiscountPercent: 10,
			MaxUses:         int64Ptr(5),
			Used:            5,
		}, nil)
		tp.EXPECT().Now().Return(now)

		info, err := uc.Validate(ctx, "gone")

		assert.ErrorIs(t, err, errs.ErrMaxUsesReached)
		assert.Nil(t, info)
	})

	t.Run("Expired code rejected", func(t *testing.T) {
		uc, repo, tp := newUseCaseForTest(t)

		expiry := now.Add(-24 * time.Hour)
		repo.EXPECT().GetByCode(ctx, "OLD").Return(&entity.DiscountCode{
			Code:            "OLD",
			DiscountPercent: 10,
			ExpiresAt:       &expiry,
		}, nil)
		tp.EXPECT().Now().Return(now)

		info, err := uc.Validate(ctx, "old")

		assert.ErrorIs(t, err, errs.ErrDiscountExpired)
		assert.Nil(t, info)
	})

	t.Run("Unknown code", func(t *testing.T) {
		uc, repo, _ := newUseCaseForTest(t)

		repo.EXPECT().GetByCode(ctx, "NOPE").Return(nil, errs.ErrDiscountNotFound)

		info, err := uc.Validate(ctx, "nope")

		assert.ErrorIs(t, err, errs.ErrDiscountNotFound)
		assert.Nil(t, info)
	})

	t.Run("Blank code rejected without a lookup", func(t *testing.T) {
		uc, repo, _ := newUseCaseForTest(t)

		info, err := uc.Validate(ctx, "   ")

		assert.ErrorIs(t, err, errs.ErrInvalidDiscount)
		assert.Nil(t, info)
		repo.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
	})
}

func TestUsage(t *testing.T) {
	ctx := context.Background()

	t.Run("Capped code", func(t *testing.T) {
		uc, repo, _ := newUseCaseForTest(t)

		repo.EXPECT().GetByCode(ctx, "SAVE10").Return(&entity.DiscountCode{
			Code:            "SAVE10",
			DiscountPercent: 10,
			MaxUses:         int64Ptr(5),
			Used:            3,
		}, nil)

		report, err := uc.Usage(ctx, "save10")

		require.NoError(t, err)
		assert.Equal(t, int64(3), report.CurrentUsage)
		assert.Equal(t, int64(2), report.Remaining)
		assert.True(t, report.IsValid)
	})

	t.Run("Exhausted code reports invalid", func(t *testing.T) {
		uc, repo, _ := newUseCaseForTest(t)

		repo.EXPECT().GetByCode(ctx, "GONE").Return(&entity.DiscountCode{
			Code:            "GONE",
			DiscountPercent: 10,
			MaxUses:         int64Ptr(5),
			Used:            5,
		}, nil)

		report, err := uc.Usage(ctx, "gone")

		require.NoError(t, err)
		assert.Equal(t, int64(0), report.Remaining)
		assert.False(t, report.IsValid)
	})

	t.Run("Unlimited code always valid", func(t *testing.T) {
		uc, repo, _ := newUseCaseForTest(t)

		repo.EXPECT().GetByCode(ctx, "FOREVER").Return(&entity.DiscountCode{
			Code:            "FOREVER",
			DiscountPercent: 25,
			Used:            1000,
		}, nil)

		report, err := uc.Usage(ctx, "forever")

		require.NoError(t, err)
		assert.Nil(t, report.MaxUses)
		assert.True(t, report.IsValid)
	})
}

func TestCreateCode(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid code persisted", func(t *testing.T) {
		uc, repo, tp := newUseCaseForTest(t)

		tp.EXPECT().Now().Return(now)
		repo.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.DiscountCode) bool {
			return c.Code == "SAVE10" && c.DiscountPercent == 10 && *c.MaxUses == 5
		})).Return(nil)

		code, err := uc.CreateCode(ctx, "save10", 10, int64Ptr(5), nil)

		require.NoError(t, err)
		assert.Equal(t, "SAVE10", code.Code)
	})

	t.Run("Invalid percent rejected before persistence", func(t *testing.T) {
		uc, repo, tp := newUseCaseForTest(t)

		tp.EXPECT().Now().Return(now)

		code, err := uc.CreateCode(ctx, "SAVE10", 0, nil, nil)

		assert.ErrorIs(t, err, errs.ErrInvalidDiscount)
		assert.Nil(t, code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate code", func(t *testing.T) {
		uc, repo, tp := newUseCaseForTest(t)

		tp.EXPECT().Now().Return(now)
		repo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateDiscount)

		code, err := uc.CreateCode(ctx, "SAVE10", 10, nil, nil)

		assert.ErrorIs(t, err, errs.ErrDuplicateDiscount)
		assert.Nil(t, code)
	})
}

func TestDeleteCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete normalizes the code", func(t *testing.T) {
		uc, repo, _ := newUseCaseForTest(t)

		repo.EXPECT().Delete(ctx, "SAVE10").Return(nil)

		assert.NoError(t, uc.DeleteCode(ctx, " save10 "))
	})

	t.Run("Unknown code", func(t *testing.T) {
		uc, repo, _ := newUseCaseForTest(t)

		repo.EXPECT().Delete(ctx, "NOPE").Return(errs.ErrDiscountNotFound)

		assert.ErrorIs(t, uc.DeleteCode(ctx, "nope"), errs.ErrDiscountNotFound)
	})
}

func TestIncrementUsage(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the post-increment count", func(t *testing.T) {
		uc, repo, _ := newUseCaseForTest(t)

		repo.EXPECT().IncrementUsage(ctx, "SAVE10").Return(3, nil)

		usage, err := uc.IncrementUsage(ctx, "save10")

		require.NoError(t, err)
		assert.Equal(t, int64(3), usage)
	})

	t.Run("Cap race surfaces as max uses reached", func(t *testing.T) {
		uc, repo, _ := newUseCaseForTest(t)

		repo.EXPECT().IncrementUsage(ctx, "SAVE10").
			Return(0, errs.NewDiscountError("SAVE10", errs.ErrMaxUsesReached))

		usage, err := uc.IncrementUsage(ctx, "SAVE10")

		assert.ErrorIs(t, err, errs.ErrMaxUsesReached)
		assert.Equal(t, int64(0), usage)
	})
}
