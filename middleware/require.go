package middleware

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	enrollauth "github.com/registrarhq/enrollauth"
)

// RequireAdmin is the admin variant of the authorization gate. It must run
// after [Authenticate].
func RequireAdmin(engine *enrollauth.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			raw, okTok := RawTokenFromContext(r.Context())
			if !ok || !okTok {
				writeError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			if _, err := engine.AuthorizeAdmin(r.Context(), claims, raw); err != nil {
				rejectAuthz(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireStudent is the student variant of the authorization gate. Beyond
// the admin variant's checks it binds the caller to the {studentId} path
// variable, so a student token only opens that student's own resource. It
// must run after [Authenticate] on a route carrying {studentId}.
func RequireStudent(engine *enrollauth.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			raw, okTok := RawTokenFromContext(r.Context())
			if !ok || !okTok {
				writeError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			resourceID := mux.Vars(r)["studentId"]
			if _, err := engine.AuthorizeStudent(r.Context(), claims, raw, resourceID); err != nil {
				rejectAuthz(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// rejectAuthz maps authorization failures to the wire. Role and resource
// mismatches are forbidden; unknown accounts and revoked tokens are
// unauthorized.
func rejectAuthz(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, enrollauth.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, "Unauthorized user")
	case errors.Is(err, enrollauth.ErrRoleMismatch),
		errors.Is(err, enrollauth.ErrResourceIdentityMismatch):
		writeError(w, http.StatusForbidden, "Forbidden access")
	case errors.Is(err, enrollauth.ErrTokenRevoked):
		writeError(w, http.StatusUnauthorized, "Invalid token")
	default:
		writeError(w, http.StatusInternalServerError, "Something is wrong, please try again")
	}
}
