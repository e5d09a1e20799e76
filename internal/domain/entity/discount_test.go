package entity

import (
	"testing"
	"time"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCode("save10"))
	assert.Equal(t, "SAVE10", NormalizeCode("  Save10  "))
	assert.Equal(t, "SAVE10", NormalizeCode("SAVE10"))
	assert.Equal(t, "", NormalizeCode("   "))
}

func TestNewDiscountCode(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid code", func(t *testing.T) {
		code, err := NewDiscountCode("save10", 10, int64Ptr(5), nil, now)

		require.NoError(t, err)
		assert.Equal(t, "SAVE10", code.Code)
		assert.Equal(t, int64(10), code.DiscountPercent)
		assert.Equal(t, int64(5), *code.MaxUses)
		assert.Equal(t, int64(0), code.Used)
		assert.Nil(t, code.ExpiresAt)
		assert.Equal(t, now, code.CreatedAt)
	})

	t.Run("Blank code rejected", func(t *testing.T) {
		code, err := NewDiscountCode("   ", 10, nil, nil, now)

		assert.Equal(t, errs.ErrInvalidDiscount, err)
		assert.Nil(t, code)
	})

	t.Run("Percent out of range rejected", func(t *testing.T) {
		for _, percent := range []int64{0, -1, 101} {
			_, err := NewDiscountCode("SAVE10", percent, nil, nil, now)
			assert.Equal(t, errs.ErrInvalidDiscount, err)
		}
	})

	t.Run("Non-positive max uses rejected", func(t *testing.T) {
		_, err := NewDiscountCode("SAVE10", 10, int64Ptr(0), nil, now)
		assert.Equal(t, errs.ErrInvalidDiscount, err)
	})
}

func TestDiscountCodeValidate(t *testing.T) {
	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid code with remaining uses", func(t *testing.T) {
		code := &DiscountCode{Code: "SAVE10", DiscountPercent: 10, MaxUses: int64Ptr(5), Used: 2}

		info, err := code.Validate(now)

		require.NoError(t, err)
		assert.Equal(t, "SAVE10", info.Code)
		assert.Equal(t, int64(10), info.DiscountPercent)
		assert.Equal(t, int64(3), info.RemainingUses)
		assert.False(t, info.Unlimited)
	})

	t.Run("Unlimited code", func(t *testing.T) {
		code := &DiscountCode{Code: "FOREVER", DiscountPercent: 25, Used: 1000}

		info, err := code.Validate(now)

		require.NoError(t, err)
		assert.True(t, info.Unlimited)
	})

	t.Run("Expired code rejected", func(t *testing.T) {
		expiry := now.Add(-time.Hour)
		code := &DiscountCode{Code: "OLD", DiscountPercent: 10, ExpiresAt: &expiry}

		info, err := code.Validate(now)

		assert.ErrorIs(t, err, errs.ErrDiscountExpired)
		assert.Nil(t, info)
	})

	t.Run("Expiry in the future still valid", func(t *testing.T) {
		expiry := now.Add(time.Hour)
		code := &DiscountCode{Code: "FRESH", DiscountPercent: 10, ExpiresAt: &expiry}

		_, err := code.Validate(now)
		assert.NoError(t, err)
	})

	t.Run("Exhausted code rejected", func(t *testing.T) {
		code := &DiscountCode{Code: "GONE", DiscountPercent: 10, MaxUses: int64Ptr(5), Used: 5}

		info, err := code.Validate(now)

		assert.ErrorIs(t, err, errs.ErrMaxUsesReached)
		assert.Nil(t, info)

		var detailed *errs.DiscountError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, "GONE", detailed.Code)
	})

	t.Run("Remaining uses clamped to 1 for display", func(t *testing.T) {
		// Used can momentarily exceed MaxUses-1 under concurrent redemptions;
		// a valid code never reports zero remaining uses.
		code := &DiscountCode{Code: "LAST", DiscountPercent: 10, MaxUses: int64Ptr(5), Used: 4}

		info, err := code.Validate(now)

		require.NoError(t, err)
		assert.Equal(t, int64(1), info.RemainingUses)
	})
}

func TestDiscountCodeRemainingUses(t *testing.T) {
	t.Run("Capped code", func(t *testing.T) {
		code := &DiscountCode{MaxUses: int64Ptr(5), Used: 2}

		remaining, unlimited := code.RemainingUses()
		assert.Equal(t, int64(3), remaining)
		assert.False(t, unlimited)
	})

	t.Run("Overused counter clamps at zero", func(t *testing.T) {
		code := &DiscountCode{MaxUses: int64Ptr(5), Used: 7}

		remaining, _ := code.RemainingUses()
		assert.Equal(t, int64(0), remaining)
	})

	t.Run("Unlimited code", func(t *testing.T) {
		code := &DiscountCode{}

		_, unlimited := code.RemainingUses()
		assert.True(t, unlimited)
	})
}
