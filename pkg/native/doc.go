// Package native holds the pieces shared by all three bindings in this
// repository: the handle lifecycle state machine, the error taxonomy exposed
// to callers, and the Status variant produced at the foreign-call boundary.
//
// The bindings (pkg/gmt, pkg/tess, pkg/mlt) each own exactly one opaque
// pointer handed out by their native library. This package makes the shared
// rules explicit: a handle is created once, destroyed at most once, and every
// operation checks liveness before touching the pointer. Raw native status
// codes never leave the cgo boundary; they are converted to a Status here and
// to a typed error before callers see them.
package native
