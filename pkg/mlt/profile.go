package mlt

import (
	"runtime"
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Profile describes the frame geometry and rate every service created from
// it renders against. It is derived from a Factory and checks the factory's
// liveness on use.
type Profile struct {
	fac *Factory
	h   native.Handle
}

// NewProfile builds a profile by name, e.g. "atsc_1080p_25". An empty name
// selects MLT's environment default.
func (f *Factory) NewProfile(name string) (*Profile, error) {
	const op = "mlt.NewProfile"
	if _, err := f.h.Ptr(op); err != nil {
		return nil, err
	}

	ptr, st := f.rt.NewProfile(name)
	runtime.KeepAlive(f)
	if !st.Ok() {
		if st.IsNotBuilt() {
			return nil, native.NewError(op, native.ErrNotBuilt, "")
		}
		return nil, native.NewError(op, native.ErrHandleCreation, st.Message)
	}
	p := &Profile{fac: f, h: native.Activate(ptr)}
	runtime.SetFinalizer(p, func(p *Profile) { _ = p.Close() })
	return p, nil
}

// ptr resolves the profile pointer after checking both the profile and its
// parent factory are alive.
func (p *Profile) ptr(op string) (unsafe.Pointer, error) {
	ptr, err := p.h.Ptr(op)
	if err != nil {
		return nil, err
	}
	if !p.fac.Alive() {
		return nil, native.NewError(op, native.ErrInactiveHandle, "parent factory closed")
	}
	return ptr, nil
}

// Geometry returns the profile's frame size and rate.
func (p *Profile) Geometry() (width, height, frameRateNum, frameRateDen int, err error) {
	ptr, err := p.ptr("mlt.Profile.Geometry")
	if err != nil {
		return 0, 0, 0, 0, err
	}
	w, h, num, den := p.fac.rt.ProfileGeometry(ptr)
	runtime.KeepAlive(p)
	return w, h, num, den, nil
}

// FPS returns the profile frame rate.
func (p *Profile) FPS() (float64, error) {
	ptr, err := p.ptr("mlt.Profile.FPS")
	if err != nil {
		return 0, err
	}
	fps := p.fac.rt.ProfileFPS(ptr)
	runtime.KeepAlive(p)
	return fps, nil
}

// Alive reports whether the profile and its parent factory are active.
func (p *Profile) Alive() bool { return p.h.Active() && p.fac.Alive() }

// State returns the profile's lifecycle state.
func (p *Profile) State() native.State { return p.h.State() }

// Close frees the profile. Idempotent. Closing after the factory has shut
// down skips the native free; the factory teardown already reclaimed it.
func (p *Profile) Close() error {
	if p == nil {
		return nil
	}
	ptr, ok := p.h.Release()
	if !ok {
		return nil
	}
	runtime.SetFinalizer(p, nil)
	if !p.fac.Alive() {
		return nil
	}
	p.fac.rt.CloseProfile(ptr)
	return nil
}
