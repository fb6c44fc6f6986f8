package github

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrConfigMissing means no token or repository is configured.
	ErrConfigMissing = errors.New("github: token or repository not configured")

	// ErrUnauthorized means the token was rejected.
	ErrUnauthorized = errors.New("github: token invalid or expired")

	// ErrPermissionDenied means the token lacks write access to the repository.
	ErrPermissionDenied = errors.New("github: no write permission on repository")

	// ErrRemoteNotFound means the repository or path does not exist.
	ErrRemoteNotFound = errors.New("github: resource not found")

	// ErrConflict means the branch moved while an atomic commit was in
	// flight. Callers retry from a fresh snapshot.
	ErrConflict = errors.New("github: branch moved during commit")
)

// RateLimitError carries the reset time reported by the API.
type RateLimitError struct {
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limited, resets at %s", e.ResetAt.UTC().Format(time.RFC3339))
}

// TransportError wraps network-level failures so callers can distinguish them
// from API-status failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("github: transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError covers HTTP statuses that have no dedicated sentinel.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: unexpected status %d: %s", e.Status, e.Message)
}
