// Package common defines shared constants and sentinel errors used across
// client and server layers of ComboVault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Combo validation errors. Each maps to exactly one rejected field so the
	// caller can tell which precondition failed.
	ErrNameTooLong      = errors.New("combo name too long")
	ErrInvalidDamage    = errors.New("invalid damage value")
	ErrInvalidMeterGain = errors.New("invalid meter gain value")
	ErrInvalidMoveCount = errors.New("invalid move count")
	ErrTooManyMoves     = errors.New("too many moves")

	// Allocation-layer errors.
	ErrComboAlreadyExists = errors.New("combo already exists")

	// ErrDestinationNotFound is returned by Close when the account named to
	// receive the reclaimed deposit does not exist. Kept apart from
	// ErrorNotFound so callers cannot confuse it with a missing combo.
	ErrDestinationNotFound = errors.New("destination account not found")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
