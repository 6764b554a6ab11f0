package gmt

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/native/logging"
)

// DefaultPad is the boundary padding GMT expects from external bindings.
const DefaultPad = 2

// Config carries session construction parameters.
type Config struct {
	// Tag identifies the session in GMT's own diagnostics. Defaults to
	// "nativekit-<uuid>" so concurrent sessions stay distinguishable.
	Tag string
	// Pad is the grid boundary padding; 0 selects DefaultPad.
	Pad uint
	// Logger receives debug-level traces of create/close/invoke. Defaults
	// to a no-op logger.
	Logger logging.Logger
}

// Session owns one native GMT session handle.
type Session struct {
	h   native.Handle
	rt  Runtime
	tag string
	log logging.Logger
}

// NewSession creates a GMT session against the linked native library.
func NewSession(cfg Config) (*Session, error) {
	return NewSessionWithRuntime(nativeRuntime{}, cfg)
}

// NewSessionWithRuntime creates a session against a caller-supplied Runtime.
// Tests use this to run the full wrapper logic over a fake native layer.
func NewSessionWithRuntime(rt Runtime, cfg Config) (*Session, error) {
	const op = "gmt.NewSession"
	if rt == nil {
		return nil, native.NewError(op, native.ErrInvalidArgument, "nil runtime")
	}
	tag := cfg.Tag
	if tag == "" {
		tag = "nativekit-" + uuid.NewString()
	}
	pad := cfg.Pad
	if pad == 0 {
		pad = DefaultPad
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	ptr, st := rt.CreateSession(tag, pad)
	if !st.Ok() {
		if st.IsNotBuilt() {
			return nil, native.NewError(op, native.ErrNotBuilt, "")
		}
		// No handle exists, so nothing is ever destroyed for this failure.
		return nil, native.NewError(op, native.ErrHandleCreation, st.Message)
	}

	s := &Session{h: native.Activate(ptr), rt: rt, tag: tag, log: log}
	s.log.Debug(context.Background(), "gmt session created", "tag", tag)
	runtime.SetFinalizer(s, func(s *Session) { _ = s.Close() })
	return s, nil
}

// Close destroys the native session. Idempotent: the destructor runs at most
// once, and later calls are no-ops.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	ptr, ok := s.h.Release()
	if !ok {
		return nil
	}
	runtime.SetFinalizer(s, nil)
	s.log.Debug(context.Background(), "gmt session destroyed", "tag", s.tag)
	if st := s.rt.DestroySession(ptr); !st.Ok() && !st.IsNotBuilt() {
		return native.CallError("gmt.Close", st)
	}
	return nil
}

// Alive reports whether the session handle is active. Satisfies
// ndarray.Owner so borrowed grid views can track the session's lifetime.
func (s *Session) Alive() bool { return s.h.Active() }

// State returns the session's lifecycle state.
func (s *Session) State() native.State { return s.h.State() }

// Tag returns the tag the session was created with.
func (s *Session) Tag() string { return s.tag }

// Info returns version information reported by the native library.
func (s *Session) Info() (map[string]string, error) {
	ptr, err := s.h.Ptr("gmt.Info")
	if err != nil {
		return nil, err
	}
	major, minor, patch := s.rt.Version(ptr)
	runtime.KeepAlive(s)
	return map[string]string{
		"gmt_version":       fmt.Sprintf("%d.%d.%d", major, minor, patch),
		"gmt_version_major": fmt.Sprintf("%d", major),
		"gmt_version_minor": fmt.Sprintf("%d", minor),
		"gmt_version_patch": fmt.Sprintf("%d", patch),
	}, nil
}
