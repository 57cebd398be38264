package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrNotYetAvailable means an upstream dataset has not been published yet.
	// Callers fall back to a stored copy or report the dataset as pending.
	ErrNotYetAvailable = errors.New("dataset not yet available")
	// ErrTransport means the upstream could not be reached. Retrying is the caller's call.
	ErrTransport = errors.New("upstream transport failure")
	// ErrSchemaMismatch means an upstream file lacks a required column.
	ErrSchemaMismatch = errors.New("upstream schema mismatch")
)

// staleEligible reports whether err allows serving a previously stored copy.
func staleEligible(err error) bool {
	return errors.Is(err, ErrNotYetAvailable) || errors.Is(err, ErrTransport) || errors.Is(err, ErrDependencyUnavailable)
}
