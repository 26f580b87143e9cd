// Package httpapi exposes the record-keeping service's REST surface on a
// gorilla/mux router.
//
// Every endpoint answers with the uniform {success, message, data?/error?}
// envelope; shape-validation failures answer {message, errors} with 400. A
// recovery middleware turns panics into the generic 500 envelope so no
// fault propagates past a handler.
//
// # Architecture boundaries
//
// Handlers parse requests, run the shape pre-checks, call the Engine, and
// map sentinel errors to statuses. All policy — credential checks, gate
// ordering, three-way ownership agreement, ledger invariants — lives in the
// Engine and its packages.
package httpapi
