package dto

import "time"

// ValidateDiscountRequest represents the API request for validating a code
type ValidateDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// DiscountInfoResponse represents a successfully validated discount
type DiscountInfoResponse struct {
	Code            string `json:"code"`
	DiscountPercent int64  `json:"discountPercent"`
	RemainingUses   int64  `json:"remainingUses,omitempty"`
	Unlimited       bool   `json:"unlimited"`
}

// UsageResponse represents a discount code's consumption state
type UsageResponse struct {
	Code            string `json:"code"`
	CurrentUsage    int64  `json:"currentUsage"`
	MaxUses         *int64 `json:"maxUses"`
	Remaining       int64  `json:"remaining"`
	IsValid         bool   `json:"isValid"`
	DiscountPercent int64  `json:"discountPercent"`
}

// CreateDiscountRequest represents the admin request for registering a code
type CreateDiscountRequest struct {
	Code            string     `json:"code" binding:"required"`
	DiscountPercent int64      `json:"discountPercent" binding:"required,min=1,max=100"`
	MaxUses         *int64     `json:"maxUses"`
	ExpiresAt       *time.Time `json:"expiresAt"`
}

// DiscountResponse represents a discount code in admin responses
type DiscountResponse struct {
	ID              uint64     `json:"id"`
	Code            string     `json:"code"`
	DiscountPercent int64      `json:"discountPercent"`
	MaxUses         *int64     `json:"maxUses"`
	Used            int64      `json:"used"`
	ExpiresAt       *time.Time `json:"expiresAt"`
	CreatedAt       time.Time  `json:"createdAt"`
}
