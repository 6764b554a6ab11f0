package mlt

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Source is anything a consumer can pull frames from. Producer and Playlist
// both satisfy it.
type Source interface {
	sourcePtr(op string) (unsafe.Pointer, error)
}

// Producer is a handle over one native producer service. It is derived from
// a Profile and checks the profile chain's liveness on use.
type Producer struct {
	prof *Profile
	h    native.Handle
}

// NewProducer asks the factory for a producer, e.g. service "avformat" with
// a file path resource, or "color" with a color name. An empty service lets
// MLT pick one from the resource.
func (p *Profile) NewProducer(service, resource string) (*Producer, error) {
	const op = "mlt.NewProducer"
	ptr, err := p.ptr(op)
	if err != nil {
		return nil, err
	}

	pptr, st := p.fac.rt.NewProducer(ptr, service, resource)
	runtime.KeepAlive(p)
	if !st.Ok() {
		if st.IsNotBuilt() {
			return nil, native.NewError(op, native.ErrNotBuilt, "")
		}
		return nil, native.NewError(op, native.ErrHandleCreation,
			fmt.Sprintf("service %q resource %q: %s", service, resource, st.Message))
	}
	prod := &Producer{prof: p, h: native.Activate(pptr)}
	runtime.SetFinalizer(prod, func(prod *Producer) { _ = prod.Close() })
	return prod, nil
}

func (pr *Producer) ptr(op string) (unsafe.Pointer, error) {
	ptr, err := pr.h.Ptr(op)
	if err != nil {
		return nil, err
	}
	if !pr.prof.Alive() {
		return nil, native.NewError(op, native.ErrInactiveHandle, "parent profile closed")
	}
	return ptr, nil
}

func (pr *Producer) sourcePtr(op string) (unsafe.Pointer, error) { return pr.ptr(op) }

// Length returns the producer's length in frames.
func (pr *Producer) Length() (int, error) {
	ptr, err := pr.ptr("mlt.Producer.Length")
	if err != nil {
		return 0, err
	}
	n := pr.prof.fac.rt.ProducerLength(ptr)
	runtime.KeepAlive(pr)
	return n, nil
}

// In returns the in point.
func (pr *Producer) In() (int, error) {
	ptr, err := pr.ptr("mlt.Producer.In")
	if err != nil {
		return 0, err
	}
	n := pr.prof.fac.rt.ProducerIn(ptr)
	runtime.KeepAlive(pr)
	return n, nil
}

// Out returns the out point.
func (pr *Producer) Out() (int, error) {
	ptr, err := pr.ptr("mlt.Producer.Out")
	if err != nil {
		return 0, err
	}
	n := pr.prof.fac.rt.ProducerOut(ptr)
	runtime.KeepAlive(pr)
	return n, nil
}

// SetInOut sets the playable range. Both positions are frame indices; out
// must not precede in.
func (pr *Producer) SetInOut(in, out int) error {
	const op = "mlt.Producer.SetInOut"
	ptr, err := pr.ptr(op)
	if err != nil {
		return err
	}
	if in < 0 || out < in {
		return native.NewError(op, native.ErrInvalidArgument,
			fmt.Sprintf("range [%d, %d]", in, out))
	}
	st := pr.prof.fac.rt.ProducerSetInOut(ptr, in, out)
	runtime.KeepAlive(pr)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Frame seeks to index and renders a frame. The frame is a derived resource;
// close it before its producer.
func (pr *Producer) Frame(index int) (*Frame, error) {
	const op = "mlt.Producer.Frame"
	ptr, err := pr.ptr(op)
	if err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, native.NewError(op, native.ErrInvalidArgument,
			fmt.Sprintf("negative frame index %d", index))
	}

	fptr, st := pr.prof.fac.rt.ProducerFrame(ptr, index)
	runtime.KeepAlive(pr)
	if !st.Ok() {
		return nil, native.CallError(op, st)
	}
	fr := &Frame{prod: pr, h: native.Activate(fptr)}
	runtime.SetFinalizer(fr, func(fr *Frame) { _ = fr.Close() })
	return fr, nil
}

// Attach adds a filter to the producer's service chain. The filter stays
// owned by the caller and must outlive the producer's rendering.
func (pr *Producer) Attach(f *Filter) error {
	const op = "mlt.Producer.Attach"
	ptr, err := pr.ptr(op)
	if err != nil {
		return err
	}
	fptr, err := f.h.Ptr(op)
	if err != nil {
		return err
	}
	st := pr.prof.fac.rt.ProducerAttach(ptr, fptr)
	runtime.KeepAlive(pr)
	runtime.KeepAlive(f)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Properties returns the producer's property table.
func (pr *Producer) Properties() (*Properties, error) {
	ptr, err := pr.ptr("mlt.Producer.Properties")
	if err != nil {
		return nil, err
	}
	props := pr.prof.fac.rt.ProducerProperties(ptr)
	runtime.KeepAlive(pr)
	return &Properties{rt: pr.prof.fac.rt, owner: pr, props: props}, nil
}

// Alive reports whether the producer and its parent chain are active.
func (pr *Producer) Alive() bool { return pr.h.Active() && pr.prof.Alive() }

// State returns the producer's lifecycle state.
func (pr *Producer) State() native.State { return pr.h.State() }

// Close frees the producer. Idempotent. A close after the profile chain has
// shut down skips the native free.
func (pr *Producer) Close() error {
	if pr == nil {
		return nil
	}
	ptr, ok := pr.h.Release()
	if !ok {
		return nil
	}
	runtime.SetFinalizer(pr, nil)
	if !pr.prof.Alive() {
		return nil
	}
	pr.prof.fac.rt.CloseProducer(ptr)
	return nil
}
