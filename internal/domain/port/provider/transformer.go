package provider

import "context"

// TransformRequest carries the image payload and style for a transformation
type TransformRequest struct {
	Image       []byte
	ContentType string
	Style       string
}

// TransformResult is the outcome of a successful transformation
type TransformResult struct {
	ImageURL string
}

// Transformer is the external image-generation provider. Calls are slow
// (seconds) and billed per successful call only.
type Transformer interface {
	// Transform generates a styled image from the request payload.
	//
	// Possible errors:
	// - ErrProviderTimeout: if the bounded call deadline elapsed
	// - ErrProviderError: on any other provider failure
	Transform(ctx context.Context, req TransformRequest) (*TransformResult, error)
}
