package api

import (
	"context"
	"time"
)

// isRetryable reports whether a status code should trigger a retry.
func (c *Client) isRetryable(statusCode int) bool {
	for _, code := range c.retryOn {
		if code == statusCode {
			return true
		}
	}
	return false
}

// retryWait sleeps before the next retry attempt, honoring cancellation.
// The delay grows linearly with the attempt number.
func (c *Client) retryWait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(time.Duration(attempt+1) * c.retryDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
