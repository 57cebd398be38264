package storage

import (
	"errors"
	"time"
)

// ErrNotConfigured is returned by a backend that has no credentials or target.
var ErrNotConfigured = errors.New("storage backend not configured")

// Backend names the tier that served or accepted a value.
type Backend string

const (
	BackendNone     Backend = "none"
	BackendPrimary  Backend = "primary"
	BackendFallback Backend = "fallback"
)

type PersistOptions struct {
	TTL   time.Duration
	Force bool
}

type PersistResult struct {
	Backend Backend `json:"backend"`
	Stored  bool    `json:"stored"`
	Skipped bool    `json:"skipped"`
}
