package mlt

import (
	"context"
	"runtime"

	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/native/logging"
)

// Config carries factory construction parameters.
type Config struct {
	// ModuleDir points at the MLT module directory; empty selects the
	// compiled-in default path.
	ModuleDir string
	// Logger receives debug-level traces. Defaults to a no-op logger.
	Logger logging.Logger
}

// Factory owns the MLT repository. MLT keeps factory state in process-wide
// globals, so at most one Factory should be open at a time; the wrapper does
// not enforce that beyond what the native library itself does.
type Factory struct {
	h   native.Handle
	rt  Runtime
	log logging.Logger
}

// Open initializes the MLT factory against the linked native library.
func Open(cfg Config) (*Factory, error) {
	return OpenWithRuntime(nativeRuntime{}, cfg)
}

// OpenWithRuntime initializes the factory against a caller-supplied Runtime.
// Tests use this to run the full wrapper logic over a fake native layer.
func OpenWithRuntime(rt Runtime, cfg Config) (*Factory, error) {
	const op = "mlt.Open"
	if rt == nil {
		return nil, native.NewError(op, native.ErrInvalidArgument, "nil runtime")
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	ptr, st := rt.FactoryInit(cfg.ModuleDir)
	if !st.Ok() {
		if st.IsNotBuilt() {
			return nil, native.NewError(op, native.ErrNotBuilt, "")
		}
		return nil, native.NewError(op, native.ErrHandleCreation, st.Message)
	}

	f := &Factory{h: native.Activate(ptr), rt: rt, log: log}
	f.log.Debug(context.Background(), "mlt factory initialized", "module_dir", cfg.ModuleDir)
	runtime.SetFinalizer(f, func(f *Factory) { _ = f.Close() })
	return f, nil
}

// Close tears down the factory. Idempotent. Profiles and services created
// from this factory must be closed first; MLT frees module state here.
func (f *Factory) Close() error {
	if f == nil {
		return nil
	}
	if _, ok := f.h.Release(); !ok {
		return nil
	}
	runtime.SetFinalizer(f, nil)
	f.log.Debug(context.Background(), "mlt factory closed")
	f.rt.FactoryClose()
	return nil
}

// Alive reports whether the factory is active.
func (f *Factory) Alive() bool { return f.h.Active() }

// State returns the factory's lifecycle state.
func (f *Factory) State() native.State { return f.h.State() }
