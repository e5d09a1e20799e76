package dto

// TransformResponse represents the outcome of a paid image transformation
type TransformResponse struct {
	ImageURL         string `json:"imageUrl"`
	RemainingCredits int64  `json:"remainingCredits"`
}
