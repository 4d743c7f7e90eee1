package middleware

import (
	"context"
	"net/http"
	"strings"
)

// TokenValidator is the interface for access token validation
type TokenValidator interface {
	// Method ValidateAccessToken checks the signature, expiry and type of an access token
	// and returns the learner id it was issued for.
	ValidateAccessToken(token string) (int, error)
}

// AuthMiddleware validates JWT access token and stores the learner id in the request context
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			learnerID, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithLearnerID(r.Context(), learnerID)))
		})
	}
}

// extractToken reads the token from the Authorization header, then from the access_token cookie
func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}

	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// GetLearnerID retrieves the learner ID from context
func GetLearnerID(ctx context.Context) (int, bool) {
	learnerID, ok := ctx.Value(learnerIDKey).(int)
	return learnerID, ok
}

// WithLearnerID returns a copy of ctx carrying the learner ID
func WithLearnerID(ctx context.Context, learnerID int) context.Context {
	return context.WithValue(ctx, learnerIDKey, learnerID)
}
