// Package session tracks live session tokens per account and answers the
// liveness question the authorization gate asks on every protected call.
//
// # Backends
//
//   - [MemoryRegistry] — mutex-guarded in-process sets, the default.
//   - [RedisRegistry] — Redis-backed, for shared or restart-surviving state.
//
// Both implement [Registry] and are interchangeable from the engine's point
// of view.
//
// # Architecture boundaries
//
// The registry stores opaque token strings. It never parses, signs, or
// expires them; expiry is a property of the token itself and is checked by
// the codec at verification time, not swept here in the background.
//
// # What this package must NOT do
//
//   - Inspect token contents.
//   - Perform application-level authorization decisions (the engine
//     interprets membership).
//   - Import enrollauth or any sibling package.
package session
