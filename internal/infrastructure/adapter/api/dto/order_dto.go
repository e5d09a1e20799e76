package dto

// CreateOrderRequest represents the API request for starting a plan purchase
type CreateOrderRequest struct {
	PlanID       uint64 `json:"planId" binding:"required"`
	DiscountCode string `json:"discountCode"`
}

// OrderResponse represents a created payment order
type OrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // Minor currency units
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// RedeemRequest represents the API request for completing a plan purchase
type RedeemRequest struct {
	PlanID       uint64 `json:"planId" binding:"required"`
	DiscountCode string `json:"discountCode"`
	OrderID      string `json:"orderId" binding:"required"`
	PaymentID    string `json:"paymentId" binding:"required"`
	Signature    string `json:"signature" binding:"required"`
}

// WaitlistRedeemRequest represents the API request for the waitlist purchase
type WaitlistRedeemRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// RedeemResponse represents the outcome of a successful redemption
type RedeemResponse struct {
	Success       bool  `json:"success"`
	NewBalance    int64 `json:"newBalance"`
	AmountCharged int64 `json:"amountCharged"` // Minor currency units
}
