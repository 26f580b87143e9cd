package enrollauth

import (
	"io"

	internalaudit "github.com/registrarhq/enrollauth/internal/audit"
	internalmetrics "github.com/registrarhq/enrollauth/internal/metrics"
)

// Role is an account's authorization class. Exactly two roles exist; this
// is not a general RBAC system.
type Role string

const (
	// RoleAdmin may list accounts, view all enrollments, and reset the
	// ledger.
	RoleAdmin Role = "ADMIN"
	// RoleStudent may read and mutate enrollments for its own studentId
	// only.
	RoleStudent Role = "STUDENT"
)

// Account is an identity record. Password is an opaque credential compared
// verbatim; provisioning and hashing are outside this core. StudentID is
// present and meaningful only for [RoleStudent].
type Account struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	StudentID string `json:"studentId,omitempty"`
	Role      Role   `json:"role"`
}

// Student is a roster entry. The roster decides which studentIds exist at
// all, independently of whether any account maps to them.
type Student struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name,omitempty"`
}

// StudentEnrollments pairs a student with their current course list, as
// returned by listing and mutation operations. Courses reflects ledger
// state at the time of the call, never a client-supplied echo.
type StudentEnrollments struct {
	StudentID string   `json:"studentId"`
	Courses   []string `json:"courses"`
}

// LoginResult is returned by [Engine.Login] on success.
type LoginResult struct {
	Token     string
	Role      Role
	StudentID string
}

// AccountProvider is the interface callers implement to integrate
// enrollauth with their account storage. The in-memory implementation in
// store/ satisfies it; a persistent store can be substituted without
// touching the gates.
type AccountProvider interface {
	// GetByUsername returns the account for username or [ErrUserNotFound].
	GetByUsername(username string) (*Account, error)
	// GetByCredentials returns the account matching both username and
	// password, or [ErrInvalidCredentials].
	GetByCredentials(username, password string) (*Account, error)
	// List returns all accounts.
	List() []Account
	// Reset restores the account collection to its seed state.
	Reset() error
}

// StudentRoster answers existence queries for path-level student
// identifiers.
type StudentRoster interface {
	Exists(studentID string) bool
	ListStudents() []Student
}

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit
// dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess counts successful credential checks.
	MetricLoginSuccess = internalmetrics.MetricLoginSuccess
	// MetricLoginFailure counts rejected credential checks.
	MetricLoginFailure = internalmetrics.MetricLoginFailure
	// MetricLogout counts successful revocations via logout.
	MetricLogout = internalmetrics.MetricLogout
	// MetricTokenRejected counts signature/expiry verification failures.
	MetricTokenRejected = internalmetrics.MetricTokenRejected
	// MetricTokenRevoked counts liveness rejections of otherwise valid
	// tokens.
	MetricTokenRevoked = internalmetrics.MetricTokenRevoked
	// MetricAuthzDenied counts role and resource-identity rejections.
	MetricAuthzDenied = internalmetrics.MetricAuthzDenied
	// MetricEnrollmentAdded counts successful ledger inserts.
	MetricEnrollmentAdded = internalmetrics.MetricEnrollmentAdded
	// MetricEnrollmentDuplicate counts inserts rejected by the uniqueness
	// invariant.
	MetricEnrollmentDuplicate = internalmetrics.MetricEnrollmentDuplicate
	// MetricEnrollmentRemoved counts successful ledger deletes.
	MetricEnrollmentRemoved = internalmetrics.MetricEnrollmentRemoved
	// MetricEnrollmentMissing counts deletes of absent records.
	MetricEnrollmentMissing = internalmetrics.MetricEnrollmentMissing
	// MetricReset counts administrative resets of either collection.
	MetricReset = internalmetrics.MetricReset
)

// Metrics holds the engine's atomic counters.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a [Metrics] instance configured by cfg. When Enabled
// is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{Enabled: cfg.Enabled})
}
