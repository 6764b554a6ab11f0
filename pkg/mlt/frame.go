package mlt

import (
	"runtime"
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/ndarray"
)

// Frame is a derived resource: one rendered frame pulled from a producer.
// It keeps a back-reference to its producer, never ownership of it.
type Frame struct {
	prod *Producer
	h    native.Handle
}

func (fr *Frame) ptr(op string) (unsafe.Pointer, error) {
	ptr, err := fr.h.Ptr(op)
	if err != nil {
		return nil, err
	}
	if !fr.prod.Alive() {
		return nil, native.NewError(op, native.ErrInactiveHandle, "parent producer closed")
	}
	return ptr, nil
}

// Image renders the frame in the requested format and returns the pixels as
// a (height, width, channels) uint8 view. The shape comes from the geometry
// the native call reported, not from the profile. The result is always a
// copy: MLT owns the frame buffer and rewrites it on the next render, so no
// borrowed view could be kept valid.
func (fr *Frame) Image(format ImageFormat) (*ndarray.Array, error) {
	const op = "mlt.Frame.Image"
	ptr, err := fr.ptr(op)
	if err != nil {
		return nil, err
	}

	buf, info, st := fr.prod.prof.fac.rt.FrameImage(ptr, format)
	if !st.Ok() {
		runtime.KeepAlive(fr)
		return nil, native.CallError(op, st)
	}
	arr, err := ndarray.FromNative(buf,
		[]int{info.Height, info.Width, info.Channels}, ndarray.Uint8, ndarray.Copy, nil)
	runtime.KeepAlive(fr)
	return arr, err
}

// Properties returns the frame's property table.
func (fr *Frame) Properties() (*Properties, error) {
	ptr, err := fr.ptr("mlt.Frame.Properties")
	if err != nil {
		return nil, err
	}
	props := fr.prod.prof.fac.rt.FrameProperties(ptr)
	runtime.KeepAlive(fr)
	return &Properties{rt: fr.prod.prof.fac.rt, owner: fr, props: props}, nil
}

// Alive reports whether the frame and its parent chain are active.
func (fr *Frame) Alive() bool { return fr.h.Active() && fr.prod.Alive() }

// State returns the frame's lifecycle state.
func (fr *Frame) State() native.State { return fr.h.State() }

// Close frees the frame. Idempotent. A close after the producer has shut
// down skips the native free; producer teardown already reclaimed it.
func (fr *Frame) Close() error {
	if fr == nil {
		return nil
	}
	ptr, ok := fr.h.Release()
	if !ok {
		return nil
	}
	runtime.SetFinalizer(fr, nil)
	if !fr.prod.Alive() {
		return nil
	}
	fr.prod.prof.fac.rt.CloseFrame(ptr)
	return nil
}
