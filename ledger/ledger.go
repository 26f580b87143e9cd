package ledger

import (
	"errors"
	"sync"
)

// ErrDuplicateEnrollment is returned by [Ledger.Add] when the
// (studentID, courseID) pair is already present.
var ErrDuplicateEnrollment = errors.New("enrollment already exists")

// ErrEnrollmentNotFound is returned by [Ledger.Remove] when no matching
// record exists.
var ErrEnrollmentNotFound = errors.New("enrollment does not exist")

// Record is a single student-course association. The pair is the
// ledger's composite key.
type Record struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}

// Ledger is an in-memory set of enrollment records with a uniqueness
// invariant on (StudentID, CourseID). All methods are safe for
// concurrent use; mutations are serialized under a single mutex so the
// duplicate-check-then-insert sequence cannot race.
type Ledger struct {
	mu      sync.Mutex
	records []Record
	seed    []Record
}

// New creates a Ledger pre-populated from seed. Reset restores the
// ledger to exactly this state. The seed slice is copied; duplicate
// seed pairs are dropped silently.
func New(seed []Record) *Ledger {
	l := &Ledger{}
	for _, r := range seed {
		dup := false
		for _, s := range l.seed {
			if s.StudentID == r.StudentID && s.CourseID == r.CourseID {
				dup = true
				break
			}
		}
		if !dup {
			l.seed = append(l.seed, r)
		}
	}
	l.records = append([]Record(nil), l.seed...)
	return l
}

// Add inserts a record, failing with [ErrDuplicateEnrollment] if the
// key is already present.
func (l *Ledger) Add(r Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.index(r.StudentID, r.CourseID) != -1 {
		return ErrDuplicateEnrollment
	}
	l.records = append(l.records, r)
	return nil
}

// Remove deletes exactly one record, failing with
// [ErrEnrollmentNotFound] if no record matches.
func (l *Ledger) Remove(studentID, courseID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.index(studentID, courseID)
	if i == -1 {
		return ErrEnrollmentNotFound
	}
	l.records = append(l.records[:i], l.records[i+1:]...)
	return nil
}

// CoursesOf returns the course IDs for a student in insertion order.
// The result is never nil, so callers can serialize it as an empty
// JSON array rather than null.
func (l *Ledger) CoursesOf(studentID string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	courses := make([]string, 0)
	for _, r := range l.records {
		if r.StudentID == studentID {
			courses = append(courses, r.CourseID)
		}
	}
	return courses
}

// Has reports whether the (studentID, courseID) pair is present.
func (l *Ledger) Has(studentID, courseID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index(studentID, courseID) != -1
}

// Len returns the number of records currently held.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Snapshot returns a copy of all records in insertion order.
func (l *Ledger) Snapshot() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Record(nil), l.records...)
}

// Reset restores the ledger to its seed contents.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append([]Record(nil), l.seed...)
}

// index must be called with l.mu held.
func (l *Ledger) index(studentID, courseID string) int {
	for i, r := range l.records {
		if r.StudentID == studentID && r.CourseID == courseID {
			return i
		}
	}
	return -1
}
