package entity

import (
	"time"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	coreport "github.com/pictrify/credit-ledger/internal/domain/port/core"
)

// WaitlistFirstLaunch is the per-user status flag guarding the one-time
// waitlist bonus grant.
const WaitlistFirstLaunch = "waitlist_1st_launch"

// Account represents a user's credit account. The user identity itself is
// owned by the external auth provider; this entity only stores a foreign
// reference and the ledger state attached to it.
type Account struct {
	ID             string          // Opaque user identifier from the auth provider
	credits        int64           // Credit balance (private, never negative)
	IsAdmin        bool            // Grants access to the admin surface
	WaitlistStatus map[string]bool // One-time grant flags, e.g. waitlist_1st_launch
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount creates a new account with the given ID and starting credit grant
func NewAccount(id string, startingCredits int64, timeProvider coreport.TimeProvider) (*Account, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}
	if startingCredits < 0 {
		return nil, errs.ErrNegativeAmount
	}

	now := timeProvider.Now()
	return &Account{
		ID:             id,
		credits:        startingCredits,
		WaitlistStatus: map[string]bool{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Credits returns the current credit balance
func (a *Account) Credits() int64 {
	return a.credits
}

// SetCredits updates the balance directly (for internal use, like repositories)
func (a *Account) SetCredits(credits int64, timeProvider coreport.TimeProvider) {
	a.credits = credits
	a.UpdatedAt = timeProvider.Now()
}

// CanConsume checks if the account has enough credits for a debit of the given cost
func (a *Account) CanConsume(cost int64) bool {
	return a.credits >= cost
}

// ApplyGrant adds the given number of credits to the balance
func (a *Account) ApplyGrant(amount int64, timeProvider coreport.TimeProvider) error {
	if amount < 0 {
		return errs.ErrNegativeAmount
	}
	a.credits += amount
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// ApplyDebit subtracts cost from the balance if sufficient credits exist.
// Returns error if the balance would go negative.
func (a *Account) ApplyDebit(cost int64, timeProvider coreport.TimeProvider) error {
	if cost < 0 {
		return errs.ErrNegativeAmount
	}
	if a.credits < cost {
		return errs.NewInsufficientCreditsError(a.ID, cost, a.credits)
	}
	a.credits -= cost
	a.UpdatedAt = timeProvider.Now()
	return nil
}

// HasFlag reports whether a one-time grant flag is already set
func (a *Account) HasFlag(flag string) bool {
	return a.WaitlistStatus[flag]
}

// SetFlag marks a one-time grant flag as set
func (a *Account) SetFlag(flag string, timeProvider coreport.TimeProvider) {
	if a.WaitlistStatus == nil {
		a.WaitlistStatus = map[string]bool{}
	}
	a.WaitlistStatus[flag] = true
	a.UpdatedAt = timeProvider.Now()
}
