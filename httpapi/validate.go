package httpapi

import (
	"regexp"

	"github.com/registrarhq/enrollauth/ledger"
)

// Shape validation is a pre-check only: it answers pass/fail with a short
// detail string and never consults application state.

var (
	studentIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{2,15}$`)
	courseIDPattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]{2,15}$`)
)

func validateStudentID(studentID string) (string, bool) {
	if studentID == "" {
		return "StudentId is required", false
	}
	if !studentIDPattern.MatchString(studentID) {
		return "StudentId is invalid", false
	}
	return "", true
}

func validateEnrollmentBody(body ledger.Record) (string, bool) {
	if detail, ok := validateStudentID(body.StudentID); !ok {
		return detail, false
	}
	if body.CourseID == "" {
		return "CourseId is required", false
	}
	if !courseIDPattern.MatchString(body.CourseID) {
		return "CourseId is invalid", false
	}
	return "", true
}
