package dto

import "time"

// PlanResponse represents a purchasable plan in API responses
type PlanResponse struct {
	ID             uint64   `json:"id"`
	Name           string   `json:"name"`
	Price          int64    `json:"price"` // Minor currency units
	CreditsGranted int64    `json:"creditsGranted"`
	IsPopular      bool     `json:"isPopular"`
	Benefits       []string `json:"benefits"`
}

// CreatePlanRequest represents the admin request for registering a plan
type CreatePlanRequest struct {
	Name           string   `json:"name" binding:"required"`
	Price          int64    `json:"price" binding:"required,min=1"`
	CreditsGranted int64    `json:"creditsGranted" binding:"required,min=1"`
	IsPopular      bool     `json:"isPopular"`
	Benefits       []string `json:"benefits"`
}

// UpdatePlanRequest represents the admin request for replacing a plan
type UpdatePlanRequest struct {
	Name           string   `json:"name" binding:"required"`
	Price          int64    `json:"price" binding:"required,min=1"`
	CreditsGranted int64    `json:"creditsGranted" binding:"required,min=1"`
	IsPopular      bool     `json:"isPopular"`
	Benefits       []string `json:"benefits"`
}

// TransactionResponse represents an audit log entry in API responses
type TransactionResponse struct {
	ID             uint64    `json:"id"`
	UserID         string    `json:"userId"`
	Amount         int64     `json:"amount"` // Minor currency units
	Type           string    `json:"type"`
	PaymentRef     string    `json:"paymentRef,omitempty"`
	CreditsGranted int64     `json:"creditsGranted"`
	CreatedAt      time.Time `json:"createdAt"`
}
