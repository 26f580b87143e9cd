// Package ledger holds the in-memory enrollment ledger: the set of current
// student-course associations guarded by a uniqueness invariant on the
// (studentID, courseID) pair.
//
// # Architecture boundaries
//
// The ledger is pure state. It knows nothing about accounts, tokens, or
// roles; identity-consistency checks happen in the engine before a mutation
// reaches this package.
//
// # What this package must NOT do
//
//   - Perform authorization or roster existence checks.
//   - Perform I/O of any kind.
//   - Import enrollauth or any sibling package.
package ledger
