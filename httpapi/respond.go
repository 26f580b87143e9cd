package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	enrollauth "github.com/registrarhq/enrollauth"
)

// response is the uniform envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, response{Success: true, Message: message, Data: data})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Success: false, Message: message})
}

// validationFailure is the one response shape outside the envelope: shape
// errors reply with the offending detail and no success flag.
func validationFailure(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"message": "Validation failed",
		"errors":  detail,
	})
}

// writeEngineError resolves a domain error at the boundary. Anything not in
// the taxonomy is an internal fault and surfaces as a generic 500 with no
// detail leaked.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, enrollauth.ErrInvalidCredentials):
		writeFailure(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, enrollauth.ErrUserNotFound):
		writeFailure(w, http.StatusUnauthorized, "Unauthorized user")
	case errors.Is(err, enrollauth.ErrTokenRevoked):
		writeFailure(w, http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, enrollauth.ErrTokenInvalid):
		writeFailure(w, http.StatusForbidden, "Invalid or expired token")
	case errors.Is(err, enrollauth.ErrRoleMismatch),
		errors.Is(err, enrollauth.ErrResourceIdentityMismatch):
		writeFailure(w, http.StatusForbidden, "Forbidden access")
	case errors.Is(err, enrollauth.ErrStudentNotFound):
		writeFailure(w, http.StatusNotFound, "StudentId does not exists")
	case errors.Is(err, enrollauth.ErrDuplicateEnrollment):
		writeFailure(w, http.StatusConflict, "Enrollment is already exists")
	case errors.Is(err, enrollauth.ErrEnrollmentNotFound):
		writeFailure(w, http.StatusNotFound, "Enrollment does not exists")
	default:
		writeFailure(w, http.StatusInternalServerError, "Something is wrong, please try again")
	}
}

// recoverPanics converts an unexpected fault into the generic 500 envelope
// so nothing propagates past the handler boundary.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("httpapi: panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				writeFailure(w, http.StatusInternalServerError, "Something is wrong, please try again")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
