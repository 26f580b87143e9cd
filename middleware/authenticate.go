package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	enrollauth "github.com/registrarhq/enrollauth"
	"github.com/registrarhq/enrollauth/token"
)

type claimsContextKey struct{}
type rawTokenContextKey struct{}

// ClaimsFromContext returns the verified identity claims attached by
// [Authenticate].
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*token.Claims)
	return claims, ok
}

// RawTokenFromContext returns the raw bearer token attached by
// [Authenticate]. The authorization gates need it for the registry
// liveness check.
func RawTokenFromContext(ctx context.Context) (string, bool) {
	raw, ok := ctx.Value(rawTokenContextKey{}).(string)
	return raw, ok
}

// Authenticate is the authentication gate. It extracts the bearer token,
// verifies signature and expiry through the engine, and attaches the
// decoded claims plus the raw token to the request context. It does not
// consult the session registry; liveness belongs to the authorization
// gates, which re-check it on every role-gated call.
func Authenticate(engine *enrollauth.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, bearerPrefix) {
				writeError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			raw := header[len(bearerPrefix):]
			if raw == "" {
				writeError(w, http.StatusUnauthorized, "Token is required")
				return
			}

			ctx := enrollauth.WithClientIP(r.Context(), clientIP(r))
			claims, err := engine.VerifyToken(ctx, raw)
			if err != nil {
				writeError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx = context.WithValue(ctx, claimsContextKey{}, claims)
			ctx = context.WithValue(ctx, rawTokenContextKey{}, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

const bearerPrefix = "Bearer "

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
