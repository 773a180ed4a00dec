package middleware

import (
	"context"
	"net/http"
	"strings"

	"organizerdashboard/internal/delivery/http/helpers"
)

type contextKey string

const bearerTokenKey contextKey = "bearerToken"

// SetBearerToken returns a context carrying the caller's bearer token.
func SetBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerTokenKey, token)
}

// BearerTokenFromContext returns the caller's bearer token, if present.
// The credential provider injected into the organizer client reads it from
// here, so no global credential state exists.
func BearerTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenKey).(string)
	return token, ok
}

// RequireBearer returns a wrapper that extracts the Bearer token from the
// Authorization header and stores it in the request context. The token is
// passed through to the remote organizer service, which enforces it; only a
// missing or malformed header is rejected here, with 401.
func RequireBearer() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing token")
				return
			}
			r = r.WithContext(SetBearerToken(r.Context(), token))
			next(w, r)
		}
	}
}
