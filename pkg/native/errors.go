package native

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds a binding can surface. Callers match
// with errors.Is; the concrete *Error carries the operation name and any
// diagnostic text reported by the native library.
var (
	// ErrHandleCreation reports that the native factory returned null or a
	// failure status. Fatal to that wrapper instance, not to the process.
	ErrHandleCreation = errors.New("native handle creation failed")

	// ErrInactiveHandle reports an operation attempted after Close. Always
	// recoverable by checking liveness first.
	ErrInactiveHandle = errors.New("native handle is not active")

	// ErrUnsupportedOperation reports an unknown operation name. The native
	// library is never called for these.
	ErrUnsupportedOperation = errors.New("unsupported native operation")

	// ErrNativeCall reports a nonzero status from a native call. Whether it
	// is transient or permanent depends on the wrapped library; the binding
	// does not guess and never retries.
	ErrNativeCall = errors.New("native call failed")

	// ErrBufferLifetime reports an attempt to borrow a buffer whose lifetime
	// policy requires a copy.
	ErrBufferLifetime = errors.New("buffer lifetime policy violation")

	// ErrInvalidArgument reports a caller-supplied argument that violates a
	// documented precondition of the native calling convention.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary (non-cgo build or unsupported platform).
	ErrNotBuilt = errors.New("native bindings not built")
)

// Error is the failure record attached to every error crossing a binding
// boundary. Kind is one of the sentinels above; Native holds the text from
// the library's own last-error accessor when one exists.
type Error struct {
	Op     string // operation that failed, e.g. "gmt.CallModule"
	Kind   error  // taxonomy sentinel
	Native string // diagnostic text from the native library, may be empty
}

func (e *Error) Error() string {
	if e.Native != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Native)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind }

// NewError builds a failure record for op with the given kind and native
// diagnostic text.
func NewError(op string, kind error, native string) *Error {
	return &Error{Op: op, Kind: kind, Native: native}
}

// CallError converts a failed Status into a failure record for op. It must
// only be called with a non-ok status.
func CallError(op string, st Status) *Error {
	return &Error{Op: op, Kind: ErrNativeCall, Native: st.Message}
}
