package mlt

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Consumer is a handle over one native consumer service, e.g. "avformat"
// for encoding or "sdl2" for preview.
type Consumer struct {
	prof *Profile
	h    native.Handle
}

// NewConsumer asks the factory for a consumer, e.g. id "avformat" with a
// target path argument.
func (p *Profile) NewConsumer(id, arg string) (*Consumer, error) {
	const op = "mlt.NewConsumer"
	ptr, err := p.ptr(op)
	if err != nil {
		return nil, err
	}

	cptr, st := p.fac.rt.NewConsumer(ptr, id, arg)
	runtime.KeepAlive(p)
	if !st.Ok() {
		if st.IsNotBuilt() {
			return nil, native.NewError(op, native.ErrNotBuilt, "")
		}
		return nil, native.NewError(op, native.ErrHandleCreation,
			fmt.Sprintf("consumer %q: %s", id, st.Message))
	}
	c := &Consumer{prof: p, h: native.Activate(cptr)}
	runtime.SetFinalizer(c, func(c *Consumer) { _ = c.Close() })
	return c, nil
}

func (c *Consumer) ptr(op string) (unsafe.Pointer, error) {
	ptr, err := c.h.Ptr(op)
	if err != nil {
		return nil, err
	}
	if !c.prof.Alive() {
		return nil, native.NewError(op, native.ErrInactiveHandle, "parent profile closed")
	}
	return ptr, nil
}

// Connect attaches a source (producer or playlist) to the consumer.
func (c *Consumer) Connect(src Source) error {
	const op = "mlt.Consumer.Connect"
	ptr, err := c.ptr(op)
	if err != nil {
		return err
	}
	if src == nil {
		return native.NewError(op, native.ErrInvalidArgument, "nil source")
	}
	sptr, err := src.sourcePtr(op)
	if err != nil {
		return err
	}
	st := c.prof.fac.rt.ConsumerConnect(ptr, sptr)
	runtime.KeepAlive(c)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Start launches the consumer thread.
func (c *Consumer) Start() error {
	const op = "mlt.Consumer.Start"
	ptr, err := c.ptr(op)
	if err != nil {
		return err
	}
	st := c.prof.fac.rt.ConsumerStart(ptr)
	runtime.KeepAlive(c)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Stop halts the consumer thread.
func (c *Consumer) Stop() error {
	const op = "mlt.Consumer.Stop"
	ptr, err := c.ptr(op)
	if err != nil {
		return err
	}
	st := c.prof.fac.rt.ConsumerStop(ptr)
	runtime.KeepAlive(c)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// IsStopped reports whether the consumer has stopped.
func (c *Consumer) IsStopped() (bool, error) {
	ptr, err := c.ptr("mlt.Consumer.IsStopped")
	if err != nil {
		return false, err
	}
	stopped := c.prof.fac.rt.ConsumerIsStopped(ptr)
	runtime.KeepAlive(c)
	return stopped, nil
}

// Properties returns the consumer's property table.
func (c *Consumer) Properties() (*Properties, error) {
	ptr, err := c.ptr("mlt.Consumer.Properties")
	if err != nil {
		return nil, err
	}
	props := c.prof.fac.rt.ConsumerProperties(ptr)
	runtime.KeepAlive(c)
	return &Properties{rt: c.prof.fac.rt, owner: c, props: props}, nil
}

// Alive reports whether the consumer and its parent chain are active.
func (c *Consumer) Alive() bool { return c.h.Active() && c.prof.Alive() }

// State returns the consumer's lifecycle state.
func (c *Consumer) State() native.State { return c.h.State() }

// Close frees the consumer. Idempotent.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	ptr, ok := c.h.Release()
	if !ok {
		return nil
	}
	runtime.SetFinalizer(c, nil)
	if !c.prof.Alive() {
		return nil
	}
	c.prof.fac.rt.CloseConsumer(ptr)
	return nil
}
