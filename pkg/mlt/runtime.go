package mlt

import (
	"unsafe"

	bindmlt "github.com/nativekit/nativekit-go/internal/bindings/mlt"
	"github.com/nativekit/nativekit-go/pkg/native"
)

// ImageFormat selects the pixel layout requested from the frame renderer.
type ImageFormat int

const (
	FormatRGB     ImageFormat = ImageFormat(bindmlt.FormatRGB)
	FormatRGBA    ImageFormat = ImageFormat(bindmlt.FormatRGBA)
	FormatYUV422  ImageFormat = ImageFormat(bindmlt.FormatYUV422)
	FormatYUV420P ImageFormat = ImageFormat(bindmlt.FormatYUV420P)
)

// ImageInfo describes a rendered frame buffer. Width and Height are the
// geometry the native call reported, which may differ from what the profile
// advertised.
type ImageInfo struct {
	Format   ImageFormat
	Width    int
	Height   int
	Channels int
}

// Runtime is the native capability surface the wrappers consume. Tests
// substitute a fake; production code uses the cgo layer.
type Runtime interface {
	FactoryInit(directory string) (unsafe.Pointer, native.Status)
	FactoryClose()

	NewProfile(name string) (unsafe.Pointer, native.Status)
	ProfileGeometry(profile unsafe.Pointer) (width, height, frameRateNum, frameRateDen int)
	ProfileFPS(profile unsafe.Pointer) float64
	CloseProfile(profile unsafe.Pointer)

	NewProducer(profile unsafe.Pointer, service, resource string) (unsafe.Pointer, native.Status)
	ProducerLength(producer unsafe.Pointer) int
	ProducerIn(producer unsafe.Pointer) int
	ProducerOut(producer unsafe.Pointer) int
	ProducerSetInOut(producer unsafe.Pointer, in, out int) native.Status
	ProducerFrame(producer unsafe.Pointer, index int) (unsafe.Pointer, native.Status)
	ProducerAttach(producer, filter unsafe.Pointer) native.Status
	CloseProducer(producer unsafe.Pointer)

	FrameImage(frame unsafe.Pointer, format ImageFormat) (unsafe.Pointer, ImageInfo, native.Status)
	CloseFrame(frame unsafe.Pointer)

	NewConsumer(profile unsafe.Pointer, id, arg string) (unsafe.Pointer, native.Status)
	ConsumerConnect(consumer, producer unsafe.Pointer) native.Status
	ConsumerStart(consumer unsafe.Pointer) native.Status
	ConsumerStop(consumer unsafe.Pointer) native.Status
	ConsumerIsStopped(consumer unsafe.Pointer) bool
	CloseConsumer(consumer unsafe.Pointer)

	NewFilter(profile unsafe.Pointer, id, arg string) (unsafe.Pointer, native.Status)
	CloseFilter(filter unsafe.Pointer)

	NewPlaylist(profile unsafe.Pointer) (unsafe.Pointer, native.Status)
	PlaylistCount(playlist unsafe.Pointer) int
	PlaylistAppend(playlist, producer unsafe.Pointer, in, out int) native.Status
	PlaylistInsert(playlist, producer unsafe.Pointer, where, in, out int) native.Status
	PlaylistRemove(playlist unsafe.Pointer, where int) native.Status
	PlaylistClear(playlist unsafe.Pointer) native.Status
	PlaylistProducer(playlist unsafe.Pointer) unsafe.Pointer
	ClosePlaylist(playlist unsafe.Pointer)

	ProducerProperties(producer unsafe.Pointer) unsafe.Pointer
	ConsumerProperties(consumer unsafe.Pointer) unsafe.Pointer
	FilterProperties(filter unsafe.Pointer) unsafe.Pointer
	FrameProperties(frame unsafe.Pointer) unsafe.Pointer
	PropsSet(props unsafe.Pointer, name, value string) native.Status
	PropsGet(props unsafe.Pointer, name string) string
	PropsGetInt(props unsafe.Pointer, name string) int
	PropsGetDouble(props unsafe.Pointer, name string) float64
}

type nativeRuntime struct{}

func (nativeRuntime) FactoryInit(directory string) (unsafe.Pointer, native.Status) {
	return bindmlt.FactoryInit(directory)
}

func (nativeRuntime) FactoryClose() { bindmlt.FactoryClose() }

func (nativeRuntime) NewProfile(name string) (unsafe.Pointer, native.Status) {
	return bindmlt.NewProfile(name)
}

func (nativeRuntime) ProfileGeometry(profile unsafe.Pointer) (int, int, int, int) {
	return bindmlt.ProfileGeometry(profile)
}

func (nativeRuntime) ProfileFPS(profile unsafe.Pointer) float64 {
	return bindmlt.ProfileFPS(profile)
}

func (nativeRuntime) CloseProfile(profile unsafe.Pointer) { bindmlt.CloseProfile(profile) }

func (nativeRuntime) NewProducer(profile unsafe.Pointer, service, resource string) (unsafe.Pointer, native.Status) {
	return bindmlt.NewProducer(profile, service, resource)
}

func (nativeRuntime) ProducerLength(p unsafe.Pointer) int { return bindmlt.ProducerLength(p) }

func (nativeRuntime) ProducerIn(p unsafe.Pointer) int { return bindmlt.ProducerIn(p) }

func (nativeRuntime) ProducerOut(p unsafe.Pointer) int { return bindmlt.ProducerOut(p) }

func (nativeRuntime) ProducerSetInOut(p unsafe.Pointer, in, out int) native.Status {
	return bindmlt.ProducerSetInOut(p, in, out)
}

func (nativeRuntime) ProducerFrame(p unsafe.Pointer, index int) (unsafe.Pointer, native.Status) {
	return bindmlt.ProducerFrame(p, index)
}

func (nativeRuntime) ProducerAttach(p, f unsafe.Pointer) native.Status {
	return bindmlt.ProducerAttach(p, f)
}

func (nativeRuntime) CloseProducer(p unsafe.Pointer) { bindmlt.CloseProducer(p) }

func (nativeRuntime) FrameImage(frame unsafe.Pointer, format ImageFormat) (unsafe.Pointer, ImageInfo, native.Status) {
	buf, info, st := bindmlt.FrameImage(frame, bindmlt.ImageFormat(format))
	return buf, ImageInfo{
		Format:   ImageFormat(info.Format),
		Width:    info.Width,
		Height:   info.Height,
		Channels: info.Channels,
	}, st
}

func (nativeRuntime) CloseFrame(frame unsafe.Pointer) { bindmlt.CloseFrame(frame) }

func (nativeRuntime) NewConsumer(profile unsafe.Pointer, id, arg string) (unsafe.Pointer, native.Status) {
	return bindmlt.NewConsumer(profile, id, arg)
}

func (nativeRuntime) ConsumerConnect(c, p unsafe.Pointer) native.Status {
	return bindmlt.ConsumerConnect(c, p)
}

func (nativeRuntime) ConsumerStart(c unsafe.Pointer) native.Status { return bindmlt.ConsumerStart(c) }

func (nativeRuntime) ConsumerStop(c unsafe.Pointer) native.Status { return bindmlt.ConsumerStop(c) }

func (nativeRuntime) ConsumerIsStopped(c unsafe.Pointer) bool { return bindmlt.ConsumerIsStopped(c) }

func (nativeRuntime) CloseConsumer(c unsafe.Pointer) { bindmlt.CloseConsumer(c) }

func (nativeRuntime) NewFilter(profile unsafe.Pointer, id, arg string) (unsafe.Pointer, native.Status) {
	return bindmlt.NewFilter(profile, id, arg)
}

func (nativeRuntime) CloseFilter(f unsafe.Pointer) { bindmlt.CloseFilter(f) }

func (nativeRuntime) NewPlaylist(profile unsafe.Pointer) (unsafe.Pointer, native.Status) {
	return bindmlt.NewPlaylist(profile)
}

func (nativeRuntime) PlaylistCount(pl unsafe.Pointer) int { return bindmlt.PlaylistCount(pl) }

func (nativeRuntime) PlaylistAppend(pl, p unsafe.Pointer, in, out int) native.Status {
	return bindmlt.PlaylistAppend(pl, p, in, out)
}

func (nativeRuntime) PlaylistInsert(pl, p unsafe.Pointer, where, in, out int) native.Status {
	return bindmlt.PlaylistInsert(pl, p, where, in, out)
}

func (nativeRuntime) PlaylistRemove(pl unsafe.Pointer, where int) native.Status {
	return bindmlt.PlaylistRemove(pl, where)
}

func (nativeRuntime) PlaylistClear(pl unsafe.Pointer) native.Status {
	return bindmlt.PlaylistClear(pl)
}

func (nativeRuntime) PlaylistProducer(pl unsafe.Pointer) unsafe.Pointer {
	return bindmlt.PlaylistProducer(pl)
}

func (nativeRuntime) ClosePlaylist(pl unsafe.Pointer) { bindmlt.ClosePlaylist(pl) }

func (nativeRuntime) ProducerProperties(p unsafe.Pointer) unsafe.Pointer {
	return bindmlt.ProducerProperties(p)
}

func (nativeRuntime) ConsumerProperties(c unsafe.Pointer) unsafe.Pointer {
	return bindmlt.ConsumerProperties(c)
}

func (nativeRuntime) FilterProperties(f unsafe.Pointer) unsafe.Pointer {
	return bindmlt.FilterProperties(f)
}

func (nativeRuntime) FrameProperties(f unsafe.Pointer) unsafe.Pointer {
	return bindmlt.FrameProperties(f)
}

func (nativeRuntime) PropsSet(props unsafe.Pointer, name, value string) native.Status {
	return bindmlt.PropsSet(props, name, value)
}

func (nativeRuntime) PropsGet(props unsafe.Pointer, name string) string {
	return bindmlt.PropsGet(props, name)
}

func (nativeRuntime) PropsGetInt(props unsafe.Pointer, name string) int {
	return bindmlt.PropsGetInt(props, name)
}

func (nativeRuntime) PropsGetDouble(props unsafe.Pointer, name string) float64 {
	return bindmlt.PropsGetDouble(props, name)
}
