package entity

import (
	"time"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
)

// TransactionType enumerates the kinds of ledger transactions
type TransactionType string

const (
	// TypePlanPurchase marks a credit purchase through a plan
	TypePlanPurchase TransactionType = "plan_purchase"
	// TypeWaitlistGrant marks the promotional waitlist bonus grant
	TypeWaitlistGrant TransactionType = "waitlist_grant"
)

// IsValidTransactionType checks if the given string is a valid transaction type
func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TypePlanPurchase, TypeWaitlistGrant:
		return true
	default:
		return false
	}
}

// TransactionRecord is an append-only audit entry for a completed purchase or
// promotional grant. A failed write here must never reverse a credit grant
// that already committed.
type TransactionRecord struct {
	ID             uint64
	UserID         string
	Amount         int64 // Charged amount in minor currency units
	Type           TransactionType
	PaymentRef     string // External payment reference, empty for pure grants
	CreditsGranted int64
	CreatedAt      time.Time
}

// NewTransactionRecord creates a transaction record after validating its fields
func NewTransactionRecord(
	userID string,
	amount int64,
	txType TransactionType,
	paymentRef string,
	creditsGranted int64,
	now time.Time,
) (*TransactionRecord, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if amount < 0 {
		return nil, errs.ErrNegativeAmount
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, errs.ErrInvalidRequest
	}

	return &TransactionRecord{
		UserID:         userID,
		Amount:         amount,
		Type:           txType,
		PaymentRef:     paymentRef,
		CreditsGranted: creditsGranted,
		CreatedAt:      now,
	}, nil
}
