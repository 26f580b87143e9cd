// Package middleware exposes the HTTP gates built on top of the
// enrollauth Engine.
//
// # Gates
//
//   - [Authenticate] — bearer extraction plus stateless signature/expiry
//     verification; attaches claims and the raw token to the context.
//   - [RequireAdmin] — admin-role authorization with liveness re-check.
//   - [RequireStudent] — student-role authorization bound to the
//     {studentId} path variable, with liveness re-check.
//
// Authentication and authorization are deliberately split: login, logout,
// and reset routes need only the former, while every role-gated route
// re-verifies session liveness in the latter.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It does NOT
// implement authentication logic itself — all decisions are delegated to
// the Engine.
//
// # What this package must NOT do
//
//   - Parse or create tokens directly (delegates to Engine).
//   - Touch the session registry (Engine handles liveness).
//   - Make authorization decisions beyond pass/reject from the Engine.
package middleware
