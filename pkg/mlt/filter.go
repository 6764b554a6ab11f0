package mlt

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Filter is a handle over one native filter service, e.g. "greyscale" or
// "watermark".
type Filter struct {
	prof *Profile
	h    native.Handle
}

// NewFilter asks the factory for a filter by id with an optional argument.
func (p *Profile) NewFilter(id, arg string) (*Filter, error) {
	const op = "mlt.NewFilter"
	ptr, err := p.ptr(op)
	if err != nil {
		return nil, err
	}

	fptr, st := p.fac.rt.NewFilter(ptr, id, arg)
	runtime.KeepAlive(p)
	if !st.Ok() {
		if st.IsNotBuilt() {
			return nil, native.NewError(op, native.ErrNotBuilt, "")
		}
		return nil, native.NewError(op, native.ErrHandleCreation,
			fmt.Sprintf("filter %q: %s", id, st.Message))
	}
	f := &Filter{prof: p, h: native.Activate(fptr)}
	runtime.SetFinalizer(f, func(f *Filter) { _ = f.Close() })
	return f, nil
}

func (f *Filter) ptr(op string) (unsafe.Pointer, error) {
	ptr, err := f.h.Ptr(op)
	if err != nil {
		return nil, err
	}
	if !f.prof.Alive() {
		return nil, native.NewError(op, native.ErrInactiveHandle, "parent profile closed")
	}
	return ptr, nil
}

// Properties returns the filter's property table.
func (f *Filter) Properties() (*Properties, error) {
	ptr, err := f.ptr("mlt.Filter.Properties")
	if err != nil {
		return nil, err
	}
	props := f.prof.fac.rt.FilterProperties(ptr)
	runtime.KeepAlive(f)
	return &Properties{rt: f.prof.fac.rt, owner: f, props: props}, nil
}

// Alive reports whether the filter and its parent chain are active.
func (f *Filter) Alive() bool { return f.h.Active() && f.prof.Alive() }

// State returns the filter's lifecycle state.
func (f *Filter) State() native.State { return f.h.State() }

// Close frees the filter. Idempotent.
func (f *Filter) Close() error {
	if f == nil {
		return nil
	}
	ptr, ok := f.h.Release()
	if !ok {
		return nil
	}
	runtime.SetFinalizer(f, nil)
	if !f.prof.Alive() {
		return nil
	}
	f.prof.fac.rt.CloseFilter(ptr)
	return nil
}
