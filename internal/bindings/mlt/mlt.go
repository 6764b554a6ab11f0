//go:build cgo && !windows

package mlt

/*
#cgo pkg-config: mlt-framework-7
#cgo LDFLAGS: -lmlt-7
#include <stdlib.h>
#include <framework/mlt.h>
*/
import "C"

import (
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

func cstr(s string) *C.char {
	if s == "" {
		return nil
	}
	return C.CString(s)
}

func cfree(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

// FactoryInit loads the MLT repository. An empty directory lets MLT use its
// compiled-in module path.
func FactoryInit(directory string) (unsafe.Pointer, native.Status) {
	cDir := cstr(directory)
	defer cfree(cDir)

	repo := C.mlt_factory_init(cDir)
	if repo == nil {
		return nil, native.Status{Code: 1, Message: "mlt_factory_init returned NULL"}
	}
	return unsafe.Pointer(repo), native.OK
}

// FactoryClose tears down the global factory state.
func FactoryClose() {
	C.mlt_factory_close()
}

// NewProfile builds a profile by name; empty name selects the default
// profile from the environment.
func NewProfile(name string) (unsafe.Pointer, native.Status) {
	cName := cstr(name)
	defer cfree(cName)

	p := C.mlt_profile_init(cName)
	if p == nil {
		return nil, native.Status{Code: 1, Message: "mlt_profile_init returned NULL"}
	}
	return unsafe.Pointer(p), native.OK
}

// ProfileGeometry reads the profile's frame geometry and rate.
func ProfileGeometry(profile unsafe.Pointer) (width, height, frameRateNum, frameRateDen int) {
	p := (C.mlt_profile)(profile)
	return int(p.width), int(p.height), int(p.frame_rate_num), int(p.frame_rate_den)
}

// ProfileFPS returns the profile frame rate as a float.
func ProfileFPS(profile unsafe.Pointer) float64 {
	return float64(C.mlt_profile_fps((C.mlt_profile)(profile)))
}

// CloseProfile frees the profile.
func CloseProfile(profile unsafe.Pointer) {
	C.mlt_profile_close((C.mlt_profile)(profile))
}

// NewProducer asks the factory for a producer service. A NULL return means
// the service is unknown or the resource could not be opened.
func NewProducer(profile unsafe.Pointer, service, resource string) (unsafe.Pointer, native.Status) {
	cService := cstr(service)
	defer cfree(cService)
	cResource := cstr(resource)
	defer cfree(cResource)

	p := C.mlt_factory_producer((C.mlt_profile)(profile), cService, unsafe.Pointer(cResource))
	if p == nil {
		return nil, native.Status{Code: 1, Message: "mlt_factory_producer returned NULL"}
	}
	return unsafe.Pointer(p), native.OK
}

// ProducerLength returns the producer's length in frames.
func ProducerLength(producer unsafe.Pointer) int {
	return int(C.mlt_producer_get_length((C.mlt_producer)(producer)))
}

// ProducerIn returns the in point.
func ProducerIn(producer unsafe.Pointer) int {
	return int(C.mlt_producer_get_in((C.mlt_producer)(producer)))
}

// ProducerOut returns the out point.
func ProducerOut(producer unsafe.Pointer) int {
	return int(C.mlt_producer_get_out((C.mlt_producer)(producer)))
}

// ProducerSetInOut sets the producer's in and out points.
func ProducerSetInOut(producer unsafe.Pointer, in, out int) native.Status {
	rc := C.mlt_producer_set_in_and_out((C.mlt_producer)(producer),
		C.mlt_position(in), C.mlt_position(out))
	return native.FromCode(int(rc), "mlt_producer_set_in_and_out failed")
}

// ProducerFrame seeks to index and fetches a frame. The frame is a derived
// resource; it must be closed before its producer.
func ProducerFrame(producer unsafe.Pointer, index int) (unsafe.Pointer, native.Status) {
	p := (C.mlt_producer)(producer)
	C.mlt_producer_seek(p, C.mlt_position(index))

	var frame C.mlt_frame
	rc := C.mlt_service_get_frame(C.mlt_producer_service(p), &frame, 0)
	if rc != 0 || frame == nil {
		return nil, native.Status{Code: int(rc), Message: "mlt_service_get_frame failed"}
	}
	return unsafe.Pointer(frame), native.OK
}

// ProducerAttach attaches a filter to the producer's service chain.
func ProducerAttach(producer, filter unsafe.Pointer) native.Status {
	rc := C.mlt_service_attach(C.mlt_producer_service((C.mlt_producer)(producer)),
		(C.mlt_filter)(filter))
	return native.FromCode(int(rc), "mlt_service_attach failed")
}

// CloseProducer frees the producer.
func CloseProducer(producer unsafe.Pointer) {
	C.mlt_producer_close((C.mlt_producer)(producer))
}

// FrameImage renders the frame into the requested format and returns the
// native buffer with its authoritative geometry. The buffer is owned by the
// frame and is only valid until the next call touching the frame.
func FrameImage(frame unsafe.Pointer, format ImageFormat) (unsafe.Pointer, ImageInfo, native.Status) {
	var buf *C.uint8_t
	f := C.mlt_image_format(format)
	var width, height C.int

	rc := C.mlt_frame_get_image((C.mlt_frame)(frame), &buf, &f, &width, &height, 0)
	if rc != 0 || buf == nil {
		return nil, ImageInfo{}, native.Status{Code: int(rc), Message: "mlt_frame_get_image failed"}
	}

	got := ImageFormat(f)
	info := ImageInfo{
		Format:   got,
		Width:    int(width),
		Height:   int(height),
		Channels: got.Channels(),
	}
	return unsafe.Pointer(buf), info, native.OK
}

// CloseFrame frees the frame.
func CloseFrame(frame unsafe.Pointer) {
	C.mlt_frame_close((C.mlt_frame)(frame))
}

// NewConsumer asks the factory for a consumer service.
func NewConsumer(profile unsafe.Pointer, id, service string) (unsafe.Pointer, native.Status) {
	cID := cstr(id)
	defer cfree(cID)
	cService := cstr(service)
	defer cfree(cService)

	c := C.mlt_factory_consumer((C.mlt_profile)(profile), cID, unsafe.Pointer(cService))
	if c == nil {
		return nil, native.Status{Code: 1, Message: "mlt_factory_consumer returned NULL"}
	}
	return unsafe.Pointer(c), native.OK
}

// ConsumerConnect attaches a producer to the consumer.
func ConsumerConnect(consumer, producer unsafe.Pointer) native.Status {
	rc := C.mlt_consumer_connect((C.mlt_consumer)(consumer),
		C.mlt_producer_service((C.mlt_producer)(producer)))
	return native.FromCode(int(rc), "mlt_consumer_connect failed")
}

// ConsumerStart starts the consumer thread.
func ConsumerStart(consumer unsafe.Pointer) native.Status {
	rc := C.mlt_consumer_start((C.mlt_consumer)(consumer))
	return native.FromCode(int(rc), "mlt_consumer_start failed")
}

// ConsumerStop stops the consumer thread.
func ConsumerStop(consumer unsafe.Pointer) native.Status {
	rc := C.mlt_consumer_stop((C.mlt_consumer)(consumer))
	return native.FromCode(int(rc), "mlt_consumer_stop failed")
}

// ConsumerIsStopped reports whether the consumer has stopped.
func ConsumerIsStopped(consumer unsafe.Pointer) bool {
	return C.mlt_consumer_is_stopped((C.mlt_consumer)(consumer)) != 0
}

// CloseConsumer frees the consumer.
func CloseConsumer(consumer unsafe.Pointer) {
	C.mlt_consumer_close((C.mlt_consumer)(consumer))
}

// NewFilter asks the factory for a filter service.
func NewFilter(profile unsafe.Pointer, id, arg string) (unsafe.Pointer, native.Status) {
	cID := cstr(id)
	defer cfree(cID)
	cArg := cstr(arg)
	defer cfree(cArg)

	f := C.mlt_factory_filter((C.mlt_profile)(profile), cID, unsafe.Pointer(cArg))
	if f == nil {
		return nil, native.Status{Code: 1, Message: "mlt_factory_filter returned NULL"}
	}
	return unsafe.Pointer(f), native.OK
}

// CloseFilter frees the filter.
func CloseFilter(filter unsafe.Pointer) {
	C.mlt_filter_close((C.mlt_filter)(filter))
}

// NewPlaylist builds an empty playlist bound to the profile.
func NewPlaylist(profile unsafe.Pointer) (unsafe.Pointer, native.Status) {
	pl := C.mlt_playlist_new((C.mlt_profile)(profile))
	if pl == nil {
		return nil, native.Status{Code: 1, Message: "mlt_playlist_new returned NULL"}
	}
	return unsafe.Pointer(pl), native.OK
}

// PlaylistCount returns the number of clips.
func PlaylistCount(playlist unsafe.Pointer) int {
	return int(C.mlt_playlist_count((C.mlt_playlist)(playlist)))
}

// PlaylistAppend appends a producer clip with in/out points (-1 for full).
func PlaylistAppend(playlist, producer unsafe.Pointer, in, out int) native.Status {
	rc := C.mlt_playlist_append_io((C.mlt_playlist)(playlist),
		(C.mlt_producer)(producer), C.mlt_position(in), C.mlt_position(out))
	return native.FromCode(int(rc), "mlt_playlist_append_io failed")
}

// PlaylistInsert inserts a producer clip at the given position.
func PlaylistInsert(playlist, producer unsafe.Pointer, where, in, out int) native.Status {
	rc := C.mlt_playlist_insert((C.mlt_playlist)(playlist),
		(C.mlt_producer)(producer), C.int(where), C.mlt_position(in), C.mlt_position(out))
	return native.FromCode(int(rc), "mlt_playlist_insert failed")
}

// PlaylistRemove removes the clip at the given position.
func PlaylistRemove(playlist unsafe.Pointer, where int) native.Status {
	rc := C.mlt_playlist_remove((C.mlt_playlist)(playlist), C.int(where))
	return native.FromCode(int(rc), "mlt_playlist_remove failed")
}

// PlaylistClear removes all clips.
func PlaylistClear(playlist unsafe.Pointer) native.Status {
	rc := C.mlt_playlist_clear((C.mlt_playlist)(playlist))
	return native.FromCode(int(rc), "mlt_playlist_clear failed")
}

// PlaylistProducer returns the playlist viewed as a producer. The result
// aliases the playlist and must not be closed separately.
func PlaylistProducer(playlist unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.mlt_playlist_producer((C.mlt_playlist)(playlist)))
}

// ClosePlaylist frees the playlist.
func ClosePlaylist(playlist unsafe.Pointer) {
	C.mlt_playlist_close((C.mlt_playlist)(playlist))
}

// Property table accessors. Each wrapper type carries its own properties
// object; the generic get/set below operate on whichever table is passed.

// ProducerProperties returns the producer's property table.
func ProducerProperties(producer unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.mlt_producer_properties((C.mlt_producer)(producer)))
}

// ConsumerProperties returns the consumer's property table.
func ConsumerProperties(consumer unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.mlt_consumer_properties((C.mlt_consumer)(consumer)))
}

// FilterProperties returns the filter's property table.
func FilterProperties(filter unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.mlt_filter_properties((C.mlt_filter)(filter)))
}

// FrameProperties returns the frame's property table.
func FrameProperties(frame unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.mlt_frame_properties((C.mlt_frame)(frame)))
}

// PropsSet sets a string property.
func PropsSet(props unsafe.Pointer, name, value string) native.Status {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))

	rc := C.mlt_properties_set((C.mlt_properties)(props), cName, cValue)
	return native.FromCode(int(rc), "mlt_properties_set failed")
}

// PropsGet reads a string property; the native value is copied because MLT
// owns and may rewrite the returned pointer.
func PropsGet(props unsafe.Pointer, name string) string {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	v := C.mlt_properties_get((C.mlt_properties)(props), cName)
	if v == nil {
		return ""
	}
	return C.GoString(v)
}

// PropsGetInt reads an int property.
func PropsGetInt(props unsafe.Pointer, name string) int {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return int(C.mlt_properties_get_int((C.mlt_properties)(props), cName))
}

// PropsGetDouble reads a double property.
func PropsGetDouble(props unsafe.Pointer, name string) float64 {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return float64(C.mlt_properties_get_double((C.mlt_properties)(props), cName))
}
