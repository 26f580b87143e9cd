package enrollauth

import (
	"context"

	"github.com/registrarhq/enrollauth/ledger"
	"github.com/registrarhq/enrollauth/token"
)

// Overview returns every roster student with their current course list,
// for the administrative listing.
func (e *Engine) Overview() []StudentEnrollments {
	if e == nil || e.roster == nil {
		return nil
	}

	students := e.roster.ListStudents()
	overview := make([]StudentEnrollments, 0, len(students))
	for _, s := range students {
		overview = append(overview, StudentEnrollments{
			StudentID: s.StudentID,
			Courses:   e.ledger.CoursesOf(s.StudentID),
		})
	}
	return overview
}

// CoursesOf returns one student's course list for an authenticated caller.
// The student must exist on the roster and the claim must map to an
// existing account; a student-role caller may only read their own list.
// Admin callers pass for any roster student. This read path has no
// liveness check: it is gated by authentication only.
func (e *Engine) CoursesOf(ctx context.Context, claims *token.Claims, studentID string) (*StudentEnrollments, error) {
	if e == nil || e.roster == nil {
		return nil, ErrEngineNotReady
	}

	if !e.roster.Exists(studentID) {
		return nil, ErrStudentNotFound
	}

	account, err := e.accounts.GetByUsername(claims.Username)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if account.Role == RoleStudent && account.StudentID != studentID {
		e.metricInc(MetricAuthzDenied)
		e.emitAudit(ctx, auditEventAuthzDenied, false, account.Username, studentID, "", ErrResourceIdentityMismatch)
		return nil, ErrResourceIdentityMismatch
	}

	return &StudentEnrollments{
		StudentID: studentID,
		Courses:   e.ledger.CoursesOf(studentID),
	}, nil
}

// Enroll adds a (student, course) association on behalf of the
// authenticated student. Three identity sources must agree pairwise before
// the ledger is touched: the path student, the student bound to the
// caller's account, and the student named in the payload. The path student
// must also exist on the roster.
func (e *Engine) Enroll(ctx context.Context, account *Account, pathStudentID string, record ledger.Record) (*StudentEnrollments, error) {
	if e == nil || e.ledger == nil {
		return nil, ErrEngineNotReady
	}

	if !e.roster.Exists(pathStudentID) {
		return nil, ErrStudentNotFound
	}
	if err := e.checkOwnership(ctx, account, pathStudentID, record); err != nil {
		return nil, err
	}

	if err := e.ledger.Add(record); err != nil {
		e.metricInc(MetricEnrollmentDuplicate)
		e.emitAudit(ctx, auditEventEnrollmentAdded, false, account.Username, record.StudentID, record.CourseID, err)
		return nil, err
	}

	e.metricInc(MetricEnrollmentAdded)
	e.emitAudit(ctx, auditEventEnrollmentAdded, true, account.Username, record.StudentID, record.CourseID, nil)
	return &StudentEnrollments{
		StudentID: pathStudentID,
		Courses:   e.ledger.CoursesOf(pathStudentID),
	}, nil
}

// Unenroll removes a (student, course) association under the same
// three-way ownership check as [Engine.Enroll]. Here the ownership check
// runs before the roster check, so a mismatched caller learns nothing
// about which studentIds exist.
func (e *Engine) Unenroll(ctx context.Context, account *Account, pathStudentID string, record ledger.Record) (*StudentEnrollments, error) {
	if e == nil || e.ledger == nil {
		return nil, ErrEngineNotReady
	}

	if err := e.checkOwnership(ctx, account, pathStudentID, record); err != nil {
		return nil, err
	}
	if !e.roster.Exists(pathStudentID) {
		return nil, ErrStudentNotFound
	}

	if err := e.ledger.Remove(record.StudentID, record.CourseID); err != nil {
		e.metricInc(MetricEnrollmentMissing)
		e.emitAudit(ctx, auditEventEnrollmentRemoved, false, account.Username, record.StudentID, record.CourseID, err)
		return nil, err
	}

	e.metricInc(MetricEnrollmentRemoved)
	e.emitAudit(ctx, auditEventEnrollmentRemoved, true, account.Username, record.StudentID, record.CourseID, nil)
	return &StudentEnrollments{
		StudentID: pathStudentID,
		Courses:   e.ledger.CoursesOf(pathStudentID),
	}, nil
}

// ResetEnrollments restores the ledger to its seed contents.
func (e *Engine) ResetEnrollments(ctx context.Context) error {
	if e == nil || e.ledger == nil {
		return ErrEngineNotReady
	}

	e.ledger.Reset()
	e.metricInc(MetricReset)
	e.emitAudit(ctx, auditEventEnrollmentsReset, true, "", "", "", nil)
	return nil
}

// checkOwnership enforces pairwise agreement of the path identifier, the
// account's bound identity, and the payload identifier.
func (e *Engine) checkOwnership(ctx context.Context, account *Account, pathStudentID string, record ledger.Record) error {
	if pathStudentID != record.StudentID ||
		account.StudentID != pathStudentID ||
		account.StudentID != record.StudentID {
		e.metricInc(MetricAuthzDenied)
		e.emitAudit(ctx, auditEventAuthzDenied, false, account.Username, pathStudentID, record.CourseID, ErrResourceIdentityMismatch)
		return ErrResourceIdentityMismatch
	}
	return nil
}
