package entity

import (
	"strings"
	"time"

	errs "github.com/pictrify/credit-ledger/internal/domain/error"
)

// DiscountCode represents a promotional code capping how many times a
// percentage discount may be applied.
type DiscountCode struct {
	ID              uint64
	Code            string     // Normalized upper-case identifier
	DiscountPercent int64      // 1-100
	MaxUses         *int64     // nil means unlimited
	Used            int64      // Times the code has been redeemed
	ExpiresAt       *time.Time // nil means never expires
	CreatedAt       time.Time
}

// DiscountInfo is the result of a successful validation
type DiscountInfo struct {
	Code            string
	DiscountPercent int64
	RemainingUses   int64 // Meaningless when Unlimited is true
	Unlimited       bool
}

// NormalizeCode upper-cases and trims a raw discount code for lookup
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NewDiscountCode creates a discount code after normalizing and validating its fields
func NewDiscountCode(code string, percent int64, maxUses *int64, expiresAt *time.Time, now time.Time) (*DiscountCode, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, errs.ErrInvalidDiscount
	}
	if percent < 1 || percent > 100 {
		return nil, errs.ErrInvalidDiscount
	}
	if maxUses != nil && *maxUses <= 0 {
		return nil, errs.ErrInvalidDiscount
	}

	return &DiscountCode{
		Code:            normalized,
		DiscountPercent: percent,
		MaxUses:         maxUses,
		ExpiresAt:       expiresAt,
		CreatedAt:       now,
	}, nil
}

// IsExpired reports whether the code is past its expiry at the given time
func (d *DiscountCode) IsExpired(now time.Time) bool {
	return d.ExpiresAt != nil && d.ExpiresAt.Before(now)
}

// IsExhausted reports whether the usage cap has been reached
func (d *DiscountCode) IsExhausted() bool {
	return d.MaxUses != nil && d.Used >= *d.MaxUses
}

// RemainingUses returns the number of uses left and whether the code is unlimited
func (d *DiscountCode) RemainingUses() (int64, bool) {
	if d.MaxUses == nil {
		return 0, true
	}
	remaining := *d.MaxUses - d.Used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, false
}

// Validate checks the code against expiry and the usage cap at the given time.
// On success it returns the discount details. The returned RemainingUses is
// clamped to a minimum of 1 for display; cap enforcement happens against the
// unclamped counter in the registry.
func (d *DiscountCode) Validate(now time.Time) (*DiscountInfo, error) {
	if d.IsExpired(now) {
		return nil, errs.NewDiscountError(d.Code, errs.ErrDiscountExpired)
	}
	if d.IsExhausted() {
		return nil, errs.NewDiscountError(d.Code, errs.ErrMaxUsesReached)
	}

	remaining, unlimited := d.RemainingUses()
	if !unlimited && remaining < 1 {
		remaining = 1
	}

	return &DiscountInfo{
		Code:            d.Code,
		DiscountPercent: d.DiscountPercent,
		RemainingUses:   remaining,
		Unlimited:       unlimited,
	}, nil
}
