package mlt_test

import (
	"strconv"
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/mlt"
	"github.com/nativekit/nativekit-go/pkg/native"
)

// fakeRuntime is a scriptable MLT layer. Every handle it vends is tracked
// by kind; using one after its close panics so liveness-check bypasses
// crash the test instead of silently reusing a dead pointer.
type fakeRuntime struct {
	failFactory  bool
	factoryMsg   string
	failProducer bool
	producerMsg  string
	failFrame    bool
	frameMsg     string

	live       map[unsafe.Pointer]string
	props      map[unsafe.Pointer]map[string]string
	ownerProps map[unsafe.Pointer]unsafe.Pointer
	clips      map[unsafe.Pointer][]unsafe.Pointer
	aliases    map[unsafe.Pointer]unsafe.Pointer

	frameBuf []byte

	lastService  string
	lastResource string
	inPoint      int
	outPoint     int

	calls struct {
		factoryClose, closeProfile, closeProducer, closeFrame int
		closeConsumer, closeFilter, closePlaylist             int
		frameImage, connect, start, stop, setInOut, attach    int
	}
}

func (f *fakeRuntime) alloc(kind string) unsafe.Pointer {
	if f.live == nil {
		f.live = map[unsafe.Pointer]string{}
	}
	p := unsafe.Pointer(new(byte))
	f.live[p] = kind
	return p
}

func (f *fakeRuntime) check(p unsafe.Pointer, kind string) {
	got, ok := f.live[p]
	if !ok {
		panic("fakeRuntime: " + kind + " handle used after close")
	}
	if got != kind {
		panic("fakeRuntime: handle kind mismatch: want " + kind + ", have " + got)
	}
}

func (f *fakeRuntime) drop(p unsafe.Pointer, kind string) {
	f.check(p, kind)
	delete(f.live, p)
}

func (f *fakeRuntime) FactoryInit(directory string) (unsafe.Pointer, native.Status) {
	if f.failFactory {
		return nil, native.Status{Code: 1, Message: f.factoryMsg}
	}
	return f.alloc("factory"), native.OK
}

func (f *fakeRuntime) FactoryClose() { f.calls.factoryClose++ }

func (f *fakeRuntime) NewProfile(name string) (unsafe.Pointer, native.Status) {
	return f.alloc("profile"), native.OK
}

func (f *fakeRuntime) ProfileGeometry(p unsafe.Pointer) (int, int, int, int) {
	f.check(p, "profile")
	return 1920, 1080, 25, 1
}

func (f *fakeRuntime) ProfileFPS(p unsafe.Pointer) float64 {
	f.check(p, "profile")
	return 25
}

func (f *fakeRuntime) CloseProfile(p unsafe.Pointer) {
	f.drop(p, "profile")
	f.calls.closeProfile++
}

func (f *fakeRuntime) NewProducer(profile unsafe.Pointer, service, resource string) (unsafe.Pointer, native.Status) {
	f.check(profile, "profile")
	f.lastService = service
	f.lastResource = resource
	if f.failProducer {
		return nil, native.Status{Code: 1, Message: f.producerMsg}
	}
	return f.alloc("producer"), native.OK
}

func (f *fakeRuntime) ProducerLength(p unsafe.Pointer) int {
	f.check(p, "producer")
	return 250
}

func (f *fakeRuntime) ProducerIn(p unsafe.Pointer) int {
	f.check(p, "producer")
	return f.inPoint
}

func (f *fakeRuntime) ProducerOut(p unsafe.Pointer) int {
	f.check(p, "producer")
	if f.outPoint == 0 {
		return 249
	}
	return f.outPoint
}

func (f *fakeRuntime) ProducerSetInOut(p unsafe.Pointer, in, out int) native.Status {
	f.check(p, "producer")
	f.calls.setInOut++
	f.inPoint, f.outPoint = in, out
	return native.OK
}

func (f *fakeRuntime) ProducerFrame(p unsafe.Pointer, index int) (unsafe.Pointer, native.Status) {
	f.check(p, "producer")
	if f.failFrame {
		return nil, native.Status{Code: 1, Message: f.frameMsg}
	}
	return f.alloc("frame"), native.OK
}

func (f *fakeRuntime) ProducerAttach(p, filter unsafe.Pointer) native.Status {
	f.check(p, "producer")
	f.check(filter, "filter")
	f.calls.attach++
	return native.OK
}

func (f *fakeRuntime) CloseProducer(p unsafe.Pointer) {
	f.drop(p, "producer")
	f.calls.closeProducer++
}

// FrameImage renders a 4x4 RGB test pattern. The buffer is retained on the
// fake so the returned pointer stays valid, and overwritten on the next
// render the way the real frame buffer is.
func (f *fakeRuntime) FrameImage(frame unsafe.Pointer, format mlt.ImageFormat) (unsafe.Pointer, mlt.ImageInfo, native.Status) {
	f.check(frame, "frame")
	f.calls.frameImage++
	f.frameBuf = make([]byte, 4*4*3)
	for i := range f.frameBuf {
		f.frameBuf[i] = byte(i)
	}
	info := mlt.ImageInfo{Format: mlt.FormatRGB, Width: 4, Height: 4, Channels: 3}
	return unsafe.Pointer(&f.frameBuf[0]), info, native.OK
}

func (f *fakeRuntime) CloseFrame(frame unsafe.Pointer) {
	f.drop(frame, "frame")
	f.calls.closeFrame++
}

func (f *fakeRuntime) NewConsumer(profile unsafe.Pointer, id, arg string) (unsafe.Pointer, native.Status) {
	f.check(profile, "profile")
	return f.alloc("consumer"), native.OK
}

func (f *fakeRuntime) ConsumerConnect(c, p unsafe.Pointer) native.Status {
	f.check(c, "consumer")
	if kind := f.live[p]; kind != "producer" && kind != "playlist-producer" {
		panic("fakeRuntime: connecting a non-producer source")
	}
	f.calls.connect++
	return native.OK
}

func (f *fakeRuntime) ConsumerStart(c unsafe.Pointer) native.Status {
	f.check(c, "consumer")
	f.calls.start++
	return native.OK
}

func (f *fakeRuntime) ConsumerStop(c unsafe.Pointer) native.Status {
	f.check(c, "consumer")
	f.calls.stop++
	return native.OK
}

func (f *fakeRuntime) ConsumerIsStopped(c unsafe.Pointer) bool {
	f.check(c, "consumer")
	return f.calls.stop >= f.calls.start
}

func (f *fakeRuntime) CloseConsumer(c unsafe.Pointer) {
	f.drop(c, "consumer")
	f.calls.closeConsumer++
}

func (f *fakeRuntime) NewFilter(profile unsafe.Pointer, id, arg string) (unsafe.Pointer, native.Status) {
	f.check(profile, "profile")
	return f.alloc("filter"), native.OK
}

func (f *fakeRuntime) CloseFilter(p unsafe.Pointer) {
	f.drop(p, "filter")
	f.calls.closeFilter++
}

func (f *fakeRuntime) NewPlaylist(profile unsafe.Pointer) (unsafe.Pointer, native.Status) {
	f.check(profile, "profile")
	if f.clips == nil {
		f.clips = map[unsafe.Pointer][]unsafe.Pointer{}
	}
	pl := f.alloc("playlist")
	f.clips[pl] = nil
	return pl, native.OK
}

func (f *fakeRuntime) PlaylistCount(pl unsafe.Pointer) int {
	f.check(pl, "playlist")
	return len(f.clips[pl])
}

func (f *fakeRuntime) PlaylistAppend(pl, p unsafe.Pointer, in, out int) native.Status {
	f.check(pl, "playlist")
	f.check(p, "producer")
	f.clips[pl] = append(f.clips[pl], p)
	return native.OK
}

func (f *fakeRuntime) PlaylistInsert(pl, p unsafe.Pointer, where, in, out int) native.Status {
	f.check(pl, "playlist")
	f.check(p, "producer")
	clips := f.clips[pl]
	if where > len(clips) {
		where = len(clips)
	}
	clips = append(clips[:where], append([]unsafe.Pointer{p}, clips[where:]...)...)
	f.clips[pl] = clips
	return native.OK
}

func (f *fakeRuntime) PlaylistRemove(pl unsafe.Pointer, where int) native.Status {
	f.check(pl, "playlist")
	clips := f.clips[pl]
	if where < 0 || where >= len(clips) {
		return native.Status{Code: 1, Message: "clip index out of range"}
	}
	f.clips[pl] = append(clips[:where], clips[where+1:]...)
	return native.OK
}

func (f *fakeRuntime) PlaylistClear(pl unsafe.Pointer) native.Status {
	f.check(pl, "playlist")
	f.clips[pl] = nil
	return native.OK
}

func (f *fakeRuntime) PlaylistProducer(pl unsafe.Pointer) unsafe.Pointer {
	f.check(pl, "playlist")
	if f.aliases == nil {
		f.aliases = map[unsafe.Pointer]unsafe.Pointer{}
	}
	alias, ok := f.aliases[pl]
	if !ok {
		alias = f.alloc("playlist-producer")
		f.aliases[pl] = alias
	}
	return alias
}

func (f *fakeRuntime) ClosePlaylist(pl unsafe.Pointer) {
	f.drop(pl, "playlist")
	if alias, ok := f.aliases[pl]; ok {
		delete(f.live, alias)
	}
	f.calls.closePlaylist++
}

func (f *fakeRuntime) propsFor(owner unsafe.Pointer) unsafe.Pointer {
	if f.ownerProps == nil {
		f.ownerProps = map[unsafe.Pointer]unsafe.Pointer{}
		f.props = map[unsafe.Pointer]map[string]string{}
	}
	p, ok := f.ownerProps[owner]
	if !ok {
		p = unsafe.Pointer(new(byte))
		f.ownerProps[owner] = p
		f.props[p] = map[string]string{}
	}
	return p
}

func (f *fakeRuntime) ProducerProperties(p unsafe.Pointer) unsafe.Pointer {
	f.check(p, "producer")
	return f.propsFor(p)
}

func (f *fakeRuntime) ConsumerProperties(c unsafe.Pointer) unsafe.Pointer {
	f.check(c, "consumer")
	return f.propsFor(c)
}

func (f *fakeRuntime) FilterProperties(p unsafe.Pointer) unsafe.Pointer {
	f.check(p, "filter")
	return f.propsFor(p)
}

func (f *fakeRuntime) FrameProperties(p unsafe.Pointer) unsafe.Pointer {
	f.check(p, "frame")
	return f.propsFor(p)
}

func (f *fakeRuntime) PropsSet(props unsafe.Pointer, name, value string) native.Status {
	table, ok := f.props[props]
	if !ok {
		panic("fakeRuntime: unknown property table")
	}
	table[name] = value
	return native.OK
}

func (f *fakeRuntime) PropsGet(props unsafe.Pointer, name string) string {
	return f.props[props][name]
}

func (f *fakeRuntime) PropsGetInt(props unsafe.Pointer, name string) int {
	n, _ := strconv.Atoi(f.props[props][name])
	return n
}

func (f *fakeRuntime) PropsGetDouble(props unsafe.Pointer, name string) float64 {
	v, _ := strconv.ParseFloat(f.props[props][name], 64)
	return v
}
