package entity

import (
	"testing"
	"time"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coremocks "github.com/pictrify/credit-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid account creation", func(t *testing.T) {
		account, err := NewAccount("user-1", 6, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user-1", account.ID)
		assert.Equal(t, int64(6), account.Credits())
		assert.False(t, account.IsAdmin)
		assert.NotNil(t, account.WaitlistStatus)
		assert.Equal(t, fixedTime, account.CreatedAt)
		assert.Equal(t, fixedTime, account.UpdatedAt)
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		account, err := NewAccount("", 6, mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, account)
	})

	t.Run("Negative starting credits should return error", func(t *testing.T) {
		account, err := NewAccount("user-1", -1, mockTime)

		assert.Equal(t, errs.ErrNegativeAmount, err)
		assert.Nil(t, account)
	})

	t.Run("Zero starting credits is allowed", func(t *testing.T) {
		account, err := NewAccount("user-1", 0, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), account.Credits())
	})
}

func TestAccountApplyGrant(t *testing.T) {
	initialTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	grantTime := time.Date(2023, 1, 1, 13, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(initialTime).Twice()

	account, err := NewAccount("user-1", 10, mockTime)
	require.NoError(t, err)

	mockTime.EXPECT().Now().Return(grantTime).Once()
	require.NoError(t, account.ApplyGrant(20, mockTime))

	assert.Equal(t, int64(30), account.Credits())
	assert.Equal(t, grantTime, account.UpdatedAt)

	t.Run("Negative grant rejected", func(t *testing.T) {
		err := account.ApplyGrant(-5, mockTime)
		assert.Equal(t, errs.ErrNegativeAmount, err)
		assert.Equal(t, int64(30), account.Credits())
	})
}

func TestAccountApplyDebit(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Debit within balance", func(t *testing.T) {
		account, _ := NewAccount("user-1", 6, mockTime)

		require.NoError(t, account.ApplyDebit(2, mockTime))
		assert.Equal(t, int64(4), account.Credits())
	})

	t.Run("Debit exceeding balance fails and leaves balance untouched", func(t *testing.T) {
		account, _ := NewAccount("user-1", 1, mockTime)

		err := account.ApplyDebit(2, mockTime)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Equal(t, int64(1), account.Credits())

		var detailed *errs.InsufficientCreditsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, "user-1", detailed.UserID)
		assert.Equal(t, int64(2), detailed.Cost)
		assert.Equal(t, int64(1), detailed.CurrCredits)
	})

	t.Run("Debit of the exact balance drains to zero", func(t *testing.T) {
		account, _ := NewAccount("user-1", 2, mockTime)

		require.NoError(t, account.ApplyDebit(2, mockTime))
		assert.Equal(t, int64(0), account.Credits())
	})

	t.Run("Negative cost rejected", func(t *testing.T) {
		account, _ := NewAccount("user-1", 6, mockTime)

		err := account.ApplyDebit(-1, mockTime)
		assert.Equal(t, errs.ErrNegativeAmount, err)
	})
}

func TestAccountCanConsume(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	account, _ := NewAccount("user-1", 2, mockTime)

	assert.True(t, account.CanConsume(2))
	assert.True(t, account.CanConsume(1))
	assert.False(t, account.CanConsume(3))
}

func TestAccountFlags(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Flag lifecycle", func(t *testing.T) {
		account, _ := NewAccount("user-1", 0, mockTime)

		assert.False(t, account.HasFlag(WaitlistFirstLaunch))
		account.SetFlag(WaitlistFirstLaunch, mockTime)
		assert.True(t, account.HasFlag(WaitlistFirstLaunch))
	})

	t.Run("SetFlag initializes a nil map", func(t *testing.T) {
		account := &Account{ID: "user-1"}

		account.SetFlag(WaitlistFirstLaunch, mockTime)
		assert.True(t, account.HasFlag(WaitlistFirstLaunch))
	})
}
