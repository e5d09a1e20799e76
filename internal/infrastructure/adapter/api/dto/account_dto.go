package dto

import "time"

// AccountResponse represents an account in API responses
type AccountResponse struct {
	UserID    string    `json:"userId"`
	Credits   int64     `json:"credits"`
	IsAdmin   bool      `json:"isAdmin,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BalanceResponse represents the API response for a balance query
type BalanceResponse struct {
	UserID  string `json:"userId"`
	Credits int64  `json:"credits"`
}
