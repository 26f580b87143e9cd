// Package token encodes and decodes signed, expiring identity claims as
// opaque HS256 JWT strings.
//
// # Architecture boundaries
//
// The codec is stateless. A token that verifies here is syntactically valid
// and unexpired, nothing more; whether the session behind it is still live
// is decided by the session registry during authorization.
//
// # What this package must NOT do
//
//   - Consult the session registry or any account store.
//   - Mutate account state on issuance.
//   - Import enrollauth or any sibling package.
package token
