package responder

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrEmptyReply indicates the provider returned no usable text.
type ErrEmptyReply struct {
	Err error
}

func (e *ErrEmptyReply) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("empty reply: %v", e.Err)
	}
	return "empty reply"
}

func (e *ErrEmptyReply) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reply provider unavailable: %v", e.Err)
	}
	return "reply provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }
