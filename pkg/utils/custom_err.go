package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamUnavailable marks a SaaS upstream that could not be
	// reached or answered with a non-success status. This is the only
	// per-request failure that escalates to the caller; bad individual
	// records are absorbed where they are parsed.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	ErrUpstreamNotConfigured = errors.New("upstream credentials missing")
	ErrInvalidSnapshot       = errors.New("invalid snapshot payload")
	ErrHistoryStore          = errors.New("history store error")
)

// UpstreamError wraps ErrUpstreamUnavailable with the upstream's own
// message so the surface can pass it through.
func UpstreamError(source string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, source, cause)
}
