package store

import (
	"sync"

	enrollauth "github.com/registrarhq/enrollauth"
)

// Memory is the process-wide in-memory account store and student roster.
// It is seeded once at construction and can be restored to that seed by an
// administrative reset. Memory implements [enrollauth.AccountProvider] and
// [enrollauth.StudentRoster].
type Memory struct {
	mu           sync.RWMutex
	accounts     []enrollauth.Account
	students     []enrollauth.Student
	seedAccounts []enrollauth.Account
}

// NewMemory creates a store seeded with the given accounts and students.
// Both slices are copied. The roster is fixed for the life of the store;
// only accounts participate in Reset.
func NewMemory(accounts []enrollauth.Account, students []enrollauth.Student) *Memory {
	m := &Memory{
		seedAccounts: append([]enrollauth.Account(nil), accounts...),
		students:     append([]enrollauth.Student(nil), students...),
	}
	m.accounts = append([]enrollauth.Account(nil), m.seedAccounts...)
	return m
}

// GetByUsername implements [enrollauth.AccountProvider].
func (m *Memory) GetByUsername(username string) (*enrollauth.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.accounts {
		if m.accounts[i].Username == username {
			a := m.accounts[i]
			return &a, nil
		}
	}
	return nil, enrollauth.ErrUserNotFound
}

// GetByCredentials implements [enrollauth.AccountProvider]. The password is
// compared verbatim; hashing is an account-provisioning concern outside
// this core.
func (m *Memory) GetByCredentials(username, password string) (*enrollauth.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.accounts {
		if m.accounts[i].Username == username && m.accounts[i].Password == password {
			a := m.accounts[i]
			return &a, nil
		}
	}
	return nil, enrollauth.ErrInvalidCredentials
}

// List implements [enrollauth.AccountProvider].
func (m *Memory) List() []enrollauth.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]enrollauth.Account(nil), m.accounts...)
}

// Reset implements [enrollauth.AccountProvider], restoring the seed state.
func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append([]enrollauth.Account(nil), m.seedAccounts...)
	return nil
}

// Exists implements [enrollauth.StudentRoster].
func (m *Memory) Exists(studentID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.students {
		if m.students[i].StudentID == studentID {
			return true
		}
	}
	return false
}

// ListStudents returns the roster in seed order.
func (m *Memory) ListStudents() []enrollauth.Student {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]enrollauth.Student(nil), m.students...)
}
