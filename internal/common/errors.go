// Package common defines shared constants and sentinel errors used across
// client and server layers of ReportKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Identity errors.
	ErrorDuplicatePhone      = errors.New("account with this phone already exists")
	ErrorDuplicateMember     = errors.New("linked user with this name already exists")
	ErrorBadCredentials      = errors.New("incorrect credentials")
	ErrorCannotRemovePrimary = errors.New("cannot remove the main account")
	ErrorRecoveryIDExhausted = errors.New("could not allocate a unique recovery id")

	// Validation errors.
	ErrorInvalidInput = errors.New("invalid input")

	// Storage collaborator errors.
	ErrorIO              = errors.New("storage i/o failure")
	ErrorArtifactMissing = errors.New("artifact missing from storage")
	ErrorUnsupported     = errors.New("operation not supported by storage backend")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
