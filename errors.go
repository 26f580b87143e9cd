package enrollauth

import (
	"errors"

	"github.com/registrarhq/enrollauth/ledger"
)

var (
	// ErrInvalidCredentials is returned by Login when no account matches
	// the presented username/password pair.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound is returned when an authenticated claim names an
	// account that no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrTokenInvalid is returned when a token fails signature or expiry
	// verification.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrTokenRevoked is returned when a structurally valid token is no
	// longer live in the session registry.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrRoleMismatch is returned when the account's role does not satisfy
	// the gate's required role.
	ErrRoleMismatch = errors.New("role mismatch")
	// ErrResourceIdentityMismatch is returned when a student acts on a
	// resource bound to a different student identity.
	ErrResourceIdentityMismatch = errors.New("resource identity mismatch")
	// ErrStudentNotFound is returned when the path-level student is absent
	// from the roster.
	ErrStudentNotFound = errors.New("student not found")
	// ErrEngineNotReady is returned when an Engine method is called on an
	// engine that was not built through [Builder.Build].
	ErrEngineNotReady = errors.New("engine not initialized")

	// ErrDuplicateEnrollment is re-exported from the ledger package so
	// callers can match it without importing ledger directly.
	ErrDuplicateEnrollment = ledger.ErrDuplicateEnrollment
	// ErrEnrollmentNotFound is re-exported from the ledger package.
	ErrEnrollmentNotFound = ledger.ErrEnrollmentNotFound
)
