package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when a remote backend does not answer.
var ErrUnavailable = errors.New("cache unavailable")

// RetryableError flags a transient backend failure.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable flags err as transient. Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err, or anything it wraps, is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

var (
	backoffBase = 100 * time.Millisecond
	maxAttempts = 3
)

// RetryWithBackoff runs fn until it succeeds, returns a non-transient error,
// or maxAttempts is reached. The wait doubles after each failed attempt.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	err := fn()
	for wait, n := backoffBase, 1; n < maxAttempts && IsRetryable(err); wait, n = wait*2, n+1 {
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		err = fn()
	}
	return err
}
