// Package common defines shared constants, sentinel errors and small
// validation helpers used across the needmarket client layers. Callers
// should use errors.Is to match the sentinel values.
package common

import "errors"

var (
	// Transport / API errors.
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// ErrMalformedResponse marks a 2xx auth response that is missing either
	// the user record or the token. Such a response must never produce a
	// half-authenticated session.
	ErrMalformedResponse = errors.New("malformed server response")

	// Validation errors (pre-flight, before any network call).
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)
