package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Insufficient credits", ErrInsufficientCredits, CodeInsufficientCredits},
		{"Invalid amount", ErrInvalidAmount, CodeInvalidAmount},
		{"Invalid user ID", ErrInvalidUserID, CodeInvalidUserID},
		{"Invalid signature", ErrInvalidSignature, CodeInvalidSignature},
		{"Discount expired", ErrDiscountExpired, CodeDiscountExpired},
		{"Max uses reached", ErrMaxUsesReached, CodeMaxUsesReached},
		{"Already granted", ErrAlreadyGranted, CodeAlreadyGranted},
		{"Invalid discount", ErrInvalidDiscount, CodeInvalidDiscount},
		{"User not found", ErrUserNotFound, CodeUserNotFound},
		{"Plan not found", ErrPlanNotFound, CodePlanNotFound},
		{"Discount not found", ErrDiscountNotFound, CodeDiscountNotFound},
		{"Credit update failed", ErrCreditUpdateFailed, CodeCreditUpdateFailed},
		{"Provider timeout", ErrProviderTimeout, CodeProviderTimeout},
		{"Provider error", ErrProviderError, CodeProviderError},
		{"Unknown error", errors.New("something else"), CodeInternalServer},
		{"Wrapped error keeps its code", fmt.Errorf("context: %w", ErrPlanNotFound), CodePlanNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError("user-1", 2, 1)

	assert.ErrorIs(t, err, ErrInsufficientCredits)
	assert.True(t, IsInsufficientCreditsError(err))
	assert.Contains(t, err.Error(), "user-1")
	assert.Contains(t, err.Error(), "required 2")
	assert.Contains(t, err.Error(), "available 1")

	var detailed *InsufficientCreditsError
	require.ErrorAs(t, err, &detailed)
	fields := detailed.LogFields()
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, int64(2), fields["cost"])
	assert.Equal(t, int64(1), fields["current_credits"])
}

func TestRedemptionError(t *testing.T) {
	inner := fmt.Errorf("%w: row gone", ErrCreditUpdateFailed)
	err := NewRedemptionError("user-1", 3, "SAVE10", "pay_abc", "credit grant failed", inner)

	assert.ErrorIs(t, err, ErrCreditUpdateFailed)
	assert.Equal(t, CodeCreditUpdateFailed, ErrorCode(err))

	var detailed *RedemptionError
	require.ErrorAs(t, err, &detailed)
	assert.Equal(t, uint64(3), detailed.PlanID)
	assert.Equal(t, "pay_abc", detailed.PaymentRef)
	assert.Equal(t, inner, detailed.Unwrap())
}

func TestDiscountError(t *testing.T) {
	err := NewDiscountError("SAVE10", ErrMaxUsesReached)

	assert.ErrorIs(t, err, ErrMaxUsesReached)
	assert.Equal(t, CodeMaxUsesReached, ErrorCode(err))
	assert.Contains(t, err.Error(), "SAVE10")
	assert.True(t, IsDiscountRejection(err))
}

func TestErrorClassifiers(t *testing.T) {
	t.Run("Not found family", func(t *testing.T) {
		for _, err := range []error{ErrNotFound, ErrUserNotFound, ErrPlanNotFound, ErrDiscountNotFound, ErrTransactionNotFound} {
			assert.True(t, IsNotFoundError(err))
		}
		assert.False(t, IsNotFoundError(ErrInsufficientCredits))
	})

	t.Run("Discount rejections", func(t *testing.T) {
		for _, err := range []error{ErrDiscountNotFound, ErrDiscountExpired, ErrMaxUsesReached} {
			assert.True(t, IsDiscountRejection(err))
		}
		assert.False(t, IsDiscountRejection(ErrInvalidSignature))
	})

	t.Run("Provider errors", func(t *testing.T) {
		assert.True(t, IsProviderError(ErrProviderError))
		assert.True(t, IsProviderError(ErrProviderTimeout))
		assert.False(t, IsProviderError(ErrInternalServer))
	})
}
