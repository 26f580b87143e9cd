package enrollauth

import (
	"context"
	"time"

	internalaudit "github.com/registrarhq/enrollauth/internal/audit"
	"github.com/registrarhq/enrollauth/ledger"
	"github.com/registrarhq/enrollauth/session"
	"github.com/registrarhq/enrollauth/token"
)

// Engine is the access-control core: token issuance and verification,
// role- and identity-based authorization with session revocation, and
// ownership-consistent enrollment mutations.
//
// Engine instances are safe for concurrent use after [Builder.Build].
type Engine struct {
	config   Config
	codec    *token.Codec
	registry session.Registry
	accounts AccountProvider
	roster   StudentRoster
	ledger   *ledger.Ledger
	audit    *internalaudit.Dispatcher
	metrics  *Metrics
}

// Close releases engine resources. Currently that is the audit
// dispatcher's relay goroutine.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped reports audit events discarded due to a full buffer.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of the engine counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

const (
	auditEventLogin             = "login"
	auditEventLogout            = "logout"
	auditEventTokenRejected     = "token_rejected"
	auditEventAuthzDenied       = "authz_denied"
	auditEventEnrollmentAdded   = "enrollment_added"
	auditEventEnrollmentRemoved = "enrollment_removed"
	auditEventAccountsReset     = "accounts_reset"
	auditEventEnrollmentsReset  = "enrollments_reset"
)

func (e *Engine) emitAudit(ctx context.Context, eventType string, success bool, username, studentID, courseID string, failure error) {
	if e == nil || e.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Username:  username,
		StudentID: studentID,
		CourseID:  courseID,
		IP:        clientIPFromContext(ctx),
		Success:   success,
	}
	if failure != nil {
		event.Error = failure.Error()
	}
	e.audit.Emit(ctx, event)
}
