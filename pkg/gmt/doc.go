// Package gmt wraps the GMT (Generic Mapping Tools) C API session object.
//
// A Session owns exactly one native GMT session handle: created by
// NewSession, destroyed at most once by Close, with every operation checking
// liveness before touching the pointer. Module execution goes through
// CallModule, which rejects unknown module names before any native call and
// renders arguments with GMT's space-separator convention. Grids loaded with
// ReadGrid are derived resources: they hold a back-reference to the session
// and are checked against its liveness at use time, never an ownership edge.
//
// Sessions are not safe for concurrent use; GMT documents no reentrancy for
// a single API handle, so the binding adds no locking and callers provide
// external mutual exclusion instead.
package gmt
