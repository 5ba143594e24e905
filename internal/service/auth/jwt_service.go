package auth

import (
	"context"
	"time"
)

// JWTService defines operations for issuing and verifying bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed token carrying the subject (the
	// account's email) with a fixed validity window from issuance.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken verifies the provided token string and extracts the
	// claims. The token may be supplied raw or prefixed with the "Bearer "
	// scheme marker, which is stripped before verification. Returns the
	// claims if the token is valid, ErrExpiredToken if it has passed its
	// expiry, or ErrInvalidToken for any other failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified claim set extracted from a bearer token.
type Claims struct {
	// Subject is the email of the account the token was issued for.
	Subject string

	// IssuedAt is when the token was signed.
	IssuedAt time.Time

	// ExpiresAt is when the token stops being accepted.
	ExpiresAt time.Time

	// ID is the unique token identifier (jti claim).
	ID string
}
