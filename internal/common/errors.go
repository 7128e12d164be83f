// Package common defines shared constants and sentinel errors used across
// client and server layers of Atelier. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal        = errors.New("internal error")
	ErrorUnauthorized    = errors.New("unauthorized")
	ErrorUnauthenticated = errors.New("unauthenticated")
	ErrorValidation      = errors.New("validation error")
	ErrorAlreadyExists   = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Artwork persistence errors.
	//
	// ErrUploadRejected: the blob write failed, nothing was persisted.
	// ErrPersistedPartialFailure: the blob was written but its row was not;
	// the blob stays orphaned until the row insert is retried.
	// ErrDeletionBlocked: the blob could not be removed, the artwork is intact.
	ErrUploadRejected          = errors.New("upload rejected")
	ErrPersistedPartialFailure = errors.New("persisted partial failure")
	ErrDeletionBlocked         = errors.New("deletion blocked")

	// ErrUnavailable reports a blob that no longer exists when a capability
	// URL is requested for it. Readers render a placeholder.
	ErrUnavailable = errors.New("blob unavailable")

	// ErrOutOfRange is returned when an age is computed for a date before birth.
	ErrOutOfRange = errors.New("date out of range")
)
