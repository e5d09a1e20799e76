package dto

// ErrorResponse is the JSON error body returned by every API endpoint.
// Code carries the ledger error code, not the HTTP status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
