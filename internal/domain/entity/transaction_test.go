package entity

import (
	"testing"
	"time"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("plan_purchase"))
	assert.True(t, IsValidTransactionType("waitlist_grant"))
	assert.False(t, IsValidTransactionType("refund"))
	assert.False(t, IsValidTransactionType(""))
}

func TestNewTransactionRecord(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid purchase record", func(t *testing.T) {
		record, err := NewTransactionRecord("user-1", 9000, TypePlanPurchase, "pay_abc", 100, now)

		require.NoError(t, err)
		assert.Equal(t, "user-1", record.UserID)
		assert.Equal(t, int64(9000), record.Amount)
		assert.Equal(t, TypePlanPurchase, record.Type)
		assert.Equal(t, "pay_abc", record.PaymentRef)
		assert.Equal(t, int64(100), record.CreditsGranted)
		assert.Equal(t, now, record.CreatedAt)
	})

	t.Run("Waitlist grant keeps its fixed amount", func(t *testing.T) {
		record, err := NewTransactionRecord("user-1", 3900, TypeWaitlistGrant, "pay_xyz", 15, now)

		require.NoError(t, err)
		assert.Equal(t, TypeWaitlistGrant, record.Type)
		assert.Equal(t, int64(3900), record.Amount)
	})

	t.Run("Empty user rejected", func(t *testing.T) {
		record, err := NewTransactionRecord("", 9000, TypePlanPurchase, "pay_abc", 100, now)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, record)
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		_, err := NewTransactionRecord("user-1", -1, TypePlanPurchase, "pay_abc", 100, now)
		assert.Equal(t, errs.ErrNegativeAmount, err)
	})

	t.Run("Unknown type rejected", func(t *testing.T) {
		_, err := NewTransactionRecord("user-1", 9000, TransactionType("chargeback"), "pay_abc", 100, now)
		assert.Equal(t, errs.ErrInvalidRequest, err)
	})
}
