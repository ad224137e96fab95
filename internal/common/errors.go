// Package common defines shared constants and sentinel errors used across
// the ideatrack client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Validation errors: surfaced immediately, never retried.
	ErrMissingEmployeeNumber = errors.New("employee number is required")
	ErrMissingOTP            = errors.New("otp is required")
	ErrMissingCredentials    = errors.New("login response is missing token or user")
	ErrInvalidStatus         = errors.New("invalid idea status")

	// Remote errors with a dedicated local recovery policy.
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")

	ErrNotFound = errors.New("not found")
)
