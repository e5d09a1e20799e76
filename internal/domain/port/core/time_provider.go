package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain so that expiry checks
// and timestamps can be controlled in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
