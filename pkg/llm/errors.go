package llm

import "errors"

// Sentinel errors providers wrap so callers can pick a fallback
// without knowing the backend.
var (
	// ErrRateLimited means the backend rejected the call for quota reasons.
	ErrRateLimited = errors.New("llm: rate limited")

	// ErrUnavailable covers network failures, timeouts and 5xx responses.
	ErrUnavailable = errors.New("llm: service unavailable")
)
