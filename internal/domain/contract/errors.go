package contract

import "errors"

// ErrNotFound is the definitive "contract does not exist" signal from the
// external system. It is terminal: never retried and never cached, so a
// contract that appears upstream later is picked up on the next lookup.
var ErrNotFound = errors.New("contract not found")

// ErrTimeout is raised when the overall resolver deadline elapses across all
// retry attempts. Distinct from ErrNotFound so callers can answer with a
// "retry later" message instead of "unknown contract".
var ErrTimeout = errors.New("contract lookup timed out")

// ErrAuthFailed is raised when the external system rejects our credentials.
// User-facing handling is identical to ErrTimeout.
var ErrAuthFailed = errors.New("contract lookup authentication failed")

// ErrUpstream covers unclassified external failures.
var ErrUpstream = errors.New("contract lookup failed")

// ErrorCode maps a resolver error to its stable pipeline error code.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "CONTRACT_NOT_FOUND"
	case errors.Is(err, ErrTimeout):
		return "CRM_TIMEOUT"
	case errors.Is(err, ErrAuthFailed):
		return "CRM_AUTH_FAILED"
	default:
		return "CRM_ERROR"
	}
}

// IsRetryable reports whether a lookup error is worth another attempt.
// A definitive not-found result is not; transport errors and timeouts are.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrAuthFailed)
}
