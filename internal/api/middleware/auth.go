package middleware

import (
	"net/http"

	"todoserver/internal/api/shared"
	"todoserver/internal/service/auth"
)

// Response messages for the authentication gate.
const (
	msgAuthorizationRequired = "Authorization required"
	msgInvalidCredentials    = "Invalid credentials"
)

// AuthMiddleware gates protected routes behind bearer-token verification.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate verifies the bearer token from the Authorization header and
// adds the verified subject to the request context for authorized requests.
// A missing header fails with 401; a present but invalid, expired, or
// malformed token fails with 403. The header value may be the raw token or
// carry the "Bearer " scheme marker. No state is mutated on any path.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgAuthorizationRequired)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), authHeader)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusForbidden, msgInvalidCredentials, err)
			return
		}

		ctx := shared.SetSubject(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
