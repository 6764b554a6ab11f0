package native

import "unsafe"

// State tracks a wrapper's position in the handle lifecycle.
//
//	Uninitialized -> Active          (native create succeeded)
//	Uninitialized -> CreationFailed  (terminal; never becomes Active)
//	Active        -> Closed          (terminal; destructor ran exactly once)
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateClosed
	StateCreationFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	case StateCreationFailed:
		return "creation-failed"
	default:
		return "unknown"
	}
}

// Handle pairs an opaque native pointer with its liveness state. The pointer
// is non-nil iff the state is Active; it has been passed to the native
// destructor iff the state is Closed. Wrappers embed a Handle and route every
// pointer access through Ptr so the liveness check cannot be skipped.
//
// Handle performs no locking. A wrapper shared across goroutines needs
// external mutual exclusion, same as the native libraries it fronts.
type Handle struct {
	ptr   unsafe.Pointer
	state State
}

// Activate records a successful native create.
func Activate(ptr unsafe.Pointer) Handle {
	return Handle{ptr: ptr, state: StateActive}
}

// Failed records a native create failure. The resulting handle is terminal;
// Ptr and Release never yield a pointer from it.
func Failed() Handle {
	return Handle{state: StateCreationFailed}
}

// Ptr returns the native pointer, or an ErrInactiveHandle failure for op if
// the handle is not active. This is the first statement of every wrapper
// method that touches native state.
func (h *Handle) Ptr(op string) (unsafe.Pointer, error) {
	if h.state != StateActive {
		return nil, NewError(op, ErrInactiveHandle, h.state.String())
	}
	return h.ptr, nil
}

// Release transitions the handle to Closed and returns the native pointer
// exactly once. Subsequent calls return (nil, false), which is what makes a
// wrapper's Close idempotent: the destructor only runs when ok is true.
func (h *Handle) Release() (unsafe.Pointer, bool) {
	if h.state != StateActive {
		return nil, false
	}
	ptr := h.ptr
	h.ptr = nil
	h.state = StateClosed
	return ptr, true
}

// State returns the current lifecycle state.
func (h *Handle) State() State { return h.state }

// Active reports whether operations are currently permitted.
func (h *Handle) Active() bool { return h.state == StateActive }
