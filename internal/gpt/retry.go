package gpt

import (
	"context"
	"strings"
	"time"
)

const (
	retryMaxAttempts = 3
	retryBaseDelay   = time.Second
)

// RetryWithBackoff runs fn up to three times, doubling the delay from one
// second between attempts. Only rate-limit failures are retried; every other
// failure propagates immediately.
func RetryWithBackoff(ctx context.Context, fn func() (string, error)) (string, error) {
	var lastErr error
	delay := retryBaseDelay
	for attempt := 1; attempt <= retryMaxAttempts; attempt++ {
		out, err := fn()
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !isRateLimited(err) || attempt == retryMaxAttempts {
			return "", err
		}
		if err := sleepCtx(ctx, delay); err != nil {
			return "", err
		}
		delay *= 2
	}
	return "", lastErr
}

// isRateLimited classifies a failure as the 429/backoff case by message
// text, the same way the service errors surface it.
func isRateLimited(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") || strings.Contains(msg, "rate")
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
