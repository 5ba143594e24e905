package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token is malformed, carries a bad
	// signature, or otherwise failed verification.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has passed its expiry.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates a login attempt with an unknown email
	// or a wrong password. The two cases are deliberately indistinguishable
	// to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
