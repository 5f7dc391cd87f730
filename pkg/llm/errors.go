package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnconfigured means no usable API credential is present. Reported
	// once per session as a persistent status, never retried.
	ErrUnconfigured = errors.New("generation provider not configured: missing API key")

	// ErrQuotaExceeded means the remote signalled rate/quota exhaustion
	// (a 429 or a quota marker in the failure body). Recovered locally by
	// falling back to static resources; never shown raw to the end user.
	ErrQuotaExceeded = errors.New("generation quota exceeded")
)

// ServiceError covers every other remote failure: auth problems, transport
// errors, timeouts, malformed responses. It is surfaced to the caller as a
// short message and is not retried.
type ServiceError struct {
	Status  int // HTTP status when known, 0 otherwise
	Message string
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("generation service error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("generation service error: %s", e.Message)
}
