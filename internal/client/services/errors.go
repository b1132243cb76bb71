package services

import "errors"

// Sentinel errors returned by AuthService before any network call is made.
var (
	// ErrMissingResetToken: ResetPassword was invoked without a reset token.
	ErrMissingResetToken = errors.New("Invalid reset token")
	// ErrEmailNotFound: ResendVerification was invoked with no pending email
	// on record.
	ErrEmailNotFound = errors.New("Email address not found")
)
