package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/logger"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/response"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

type contextKey string

const claimsContextKey contextKey = "user_claims"

// Middleware authenticates requests and enforces role requirements. The
// caller's identity always comes from the token subject, never from request
// parameters.
type Middleware struct {
	tokens *TokenManager
	logger *logger.Logger
}

// NewMiddleware creates the authentication middleware
func NewMiddleware(tokens *TokenManager, log *logger.Logger) *Middleware {
	return &Middleware{tokens: tokens, logger: log}
}

// RequireAuth rejects requests without a valid Bearer token and stores the
// claims on the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.WriteError(w, m.logger, types.NewAuthError("Authentication required!"))
			return
		}

		claims, err := m.tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			m.logger.WithError(err).Debug("Token validation failed")
			response.WriteError(w, m.logger, types.NewAuthError("Invalid or expired token!"))
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole wraps RequireAuth and additionally rejects callers whose role
// does not match.
func (m *Middleware) RequireRole(role types.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.Role != role {
				response.WriteError(w, m.logger, types.NewAuthError("Insufficient permissions!"))
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// ClaimsFromContext returns the authenticated user's claims, if any.
func ClaimsFromContext(ctx context.Context) (*types.UserClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*types.UserClaims)
	return claims, ok
}
