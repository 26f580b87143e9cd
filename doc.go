// Package enrollauth is the access-control core of a small student-record
// service: bearer-token authentication, role- and identity-based
// authorization with per-account session revocation, and an ownership-
// consistent enrollment ledger.
//
// The package is designed for concurrent server workloads: Engine methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// enrollauth is the public surface. It exposes [Engine], [Builder], [Config],
// sentinel errors, and value types. Token encoding lives in token/, session
// liveness in session/, ledger state in ledger/, and the HTTP adapters in
// middleware/ and httpapi/. Audit dispatch and metrics storage live under
// internal/ and are re-exported here as type aliases.
//
// # Security model
//
// A token is accepted only when its signature verifies and its expiry has
// not passed. Role-gated operations additionally require that the session
// registry still lists the token as live for the owning account. The first two checks are stateless; the
// third is what makes logout effective against already-issued tokens.
//
// # What this package must NOT do
//
//   - Parse HTTP requests or write HTTP responses (httpapi and middleware
//     translate transport into Engine calls).
//   - Hash or otherwise transform stored credentials; provisioning is out of
//     scope and comparisons are verbatim.
//   - Import any sub-package that re-imports enrollauth (no import cycles).
package enrollauth
