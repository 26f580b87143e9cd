package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/registrarhq/enrollauth/ledger"
	"github.com/registrarhq/enrollauth/middleware"
)

func (h *handlers) listEnrollments(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, "Enrollments Information", h.engine.Overview())
}

func (h *handlers) resetEnrollments(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ResetEnrollments(r.Context()); err != nil {
		writeEngineError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "enrollments database has been reset", nil)
}

func (h *handlers) studentCourses(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)["studentId"]
	if detail, ok := validateStudentID(studentID); !ok {
		validationFailure(w, detail)
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Authorization header is required")
		return
	}

	data, err := h.engine.CoursesOf(r.Context(), claims, studentID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "Enrollment information", data)
}

// decodeEnrollment parses and shape-validates a mutation request. The
// authorization gate has already bound the caller to the path student;
// payload agreement is the engine's three-way check.
func (h *handlers) decodeEnrollment(w http.ResponseWriter, r *http.Request) (string, ledger.Record, bool) {
	studentID := mux.Vars(r)["studentId"]
	if detail, ok := validateStudentID(studentID); !ok {
		validationFailure(w, detail)
		return "", ledger.Record{}, false
	}

	var body ledger.Record
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		validationFailure(w, "Request body is invalid")
		return "", ledger.Record{}, false
	}
	if detail, ok := validateEnrollmentBody(body); !ok {
		validationFailure(w, detail)
		return "", ledger.Record{}, false
	}
	return studentID, body, true
}

func (h *handlers) enroll(w http.ResponseWriter, r *http.Request) {
	studentID, body, ok := h.decodeEnrollment(w, r)
	if !ok {
		return
	}

	account, err := h.accountFromContext(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	data, err := h.engine.Enroll(r.Context(), account, studentID, body)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	message := fmt.Sprintf("Student %s && Course %s has been added successfully", studentID, body.CourseID)
	writeSuccess(w, http.StatusCreated, message, data)
}

func (h *handlers) unenroll(w http.ResponseWriter, r *http.Request) {
	studentID, body, ok := h.decodeEnrollment(w, r)
	if !ok {
		return
	}

	account, err := h.accountFromContext(r)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	data, err := h.engine.Unenroll(r.Context(), account, studentID, body)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	message := fmt.Sprintf("Student %s && Course %s has been deleted successfully", studentID, body.CourseID)
	writeSuccess(w, http.StatusOK, message, data)
}
