// Package store provides the in-memory account store and student roster
// that back the engine by default.
//
// # Architecture boundaries
//
// The store holds identity records and roster entries; it performs no
// credential policy beyond verbatim comparison and no authorization. The
// engine depends on the root-package interfaces, so a persistent
// implementation can replace this one without touching the gates.
package store
