//go:build !cgo || windows

package mlt

import (
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Stub implementations for non-cgo builds or Windows.

func FactoryInit(string) (unsafe.Pointer, native.Status) { return nil, native.NotBuilt }

func FactoryClose() {}

func NewProfile(string) (unsafe.Pointer, native.Status) { return nil, native.NotBuilt }

func ProfileGeometry(unsafe.Pointer) (width, height, frameRateNum, frameRateDen int) {
	return 0, 0, 0, 0
}

func ProfileFPS(unsafe.Pointer) float64 { return 0 }

func CloseProfile(unsafe.Pointer) {}

func NewProducer(unsafe.Pointer, string, string) (unsafe.Pointer, native.Status) {
	return nil, native.NotBuilt
}

func ProducerLength(unsafe.Pointer) int { return 0 }

func ProducerIn(unsafe.Pointer) int { return 0 }

func ProducerOut(unsafe.Pointer) int { return 0 }

func ProducerSetInOut(unsafe.Pointer, int, int) native.Status { return native.NotBuilt }

func ProducerFrame(unsafe.Pointer, int) (unsafe.Pointer, native.Status) {
	return nil, native.NotBuilt
}

func ProducerAttach(_, _ unsafe.Pointer) native.Status { return native.NotBuilt }

func CloseProducer(unsafe.Pointer) {}

func FrameImage(unsafe.Pointer, ImageFormat) (unsafe.Pointer, ImageInfo, native.Status) {
	return nil, ImageInfo{}, native.NotBuilt
}

func CloseFrame(unsafe.Pointer) {}

func NewConsumer(unsafe.Pointer, string, string) (unsafe.Pointer, native.Status) {
	return nil, native.NotBuilt
}

func ConsumerConnect(_, _ unsafe.Pointer) native.Status { return native.NotBuilt }

func ConsumerStart(unsafe.Pointer) native.Status { return native.NotBuilt }

func ConsumerStop(unsafe.Pointer) native.Status { return native.NotBuilt }

func ConsumerIsStopped(unsafe.Pointer) bool { return true }

func CloseConsumer(unsafe.Pointer) {}

func NewFilter(unsafe.Pointer, string, string) (unsafe.Pointer, native.Status) {
	return nil, native.NotBuilt
}

func CloseFilter(unsafe.Pointer) {}

func NewPlaylist(unsafe.Pointer) (unsafe.Pointer, native.Status) { return nil, native.NotBuilt }

func PlaylistCount(unsafe.Pointer) int { return 0 }

func PlaylistAppend(_, _ unsafe.Pointer, _, _ int) native.Status { return native.NotBuilt }

func PlaylistInsert(_, _ unsafe.Pointer, _, _, _ int) native.Status { return native.NotBuilt }

func PlaylistRemove(unsafe.Pointer, int) native.Status { return native.NotBuilt }

func PlaylistClear(unsafe.Pointer) native.Status { return native.NotBuilt }

func PlaylistProducer(unsafe.Pointer) unsafe.Pointer { return nil }

func ClosePlaylist(unsafe.Pointer) {}

func ProducerProperties(unsafe.Pointer) unsafe.Pointer { return nil }

func ConsumerProperties(unsafe.Pointer) unsafe.Pointer { return nil }

func FilterProperties(unsafe.Pointer) unsafe.Pointer { return nil }

func FrameProperties(unsafe.Pointer) unsafe.Pointer { return nil }

func PropsSet(unsafe.Pointer, string, string) native.Status { return native.NotBuilt }

func PropsGet(unsafe.Pointer, string) string { return "" }

func PropsGetInt(unsafe.Pointer, string) int { return 0 }

func PropsGetDouble(unsafe.Pointer, string) float64 { return 0 }
