package gmt_test

import (
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/gmt"
	"github.com/nativekit/nativekit-go/pkg/native"
)

// fakeRuntime is a scriptable native layer. It asserts (by panicking) when a
// handle is used after its destroy, so any liveness-check bypass in the
// wrapper surfaces as a test crash rather than silent pointer reuse.
type fakeRuntime struct {
	failCreate    bool
	createMsg     string
	failModule    string // module name whose dispatch fails
	moduleErrText string

	token     byte // session identity; its address is the fake handle
	destroyed bool

	gridToken    byte
	gridFreed    bool
	gridMeta     gmt.GridMeta
	gridData     []float32
	failReadGrid bool
	readGridMsg  string

	calls struct {
		create, destroy, version, callModule int
		readGrid, gridData, writeGrid, freeGrid int
	}

	lastModule string
	lastArgs   string
}

func (f *fakeRuntime) sessionPtr() unsafe.Pointer { return unsafe.Pointer(&f.token) }

func (f *fakeRuntime) gridPtr() unsafe.Pointer { return unsafe.Pointer(&f.gridToken) }

func (f *fakeRuntime) checkSession(ptr unsafe.Pointer) {
	if ptr != f.sessionPtr() {
		panic("fakeRuntime: unknown session handle")
	}
	if f.destroyed {
		panic("fakeRuntime: session handle used after destroy")
	}
}

func (f *fakeRuntime) CreateSession(tag string, pad uint) (unsafe.Pointer, native.Status) {
	f.calls.create++
	if f.failCreate {
		return nil, native.Status{Code: 1, Message: f.createMsg}
	}
	return f.sessionPtr(), native.OK
}

func (f *fakeRuntime) DestroySession(api unsafe.Pointer) native.Status {
	f.checkSession(api)
	f.calls.destroy++
	f.destroyed = true
	return native.OK
}

func (f *fakeRuntime) Version(api unsafe.Pointer) (int, int, int) {
	f.checkSession(api)
	f.calls.version++
	return 6, 5, 0
}

func (f *fakeRuntime) CallModule(api unsafe.Pointer, module, args string) native.Status {
	f.checkSession(api)
	f.calls.callModule++
	f.lastModule = module
	f.lastArgs = args
	if module == f.failModule {
		return native.Status{Code: 78, Message: f.moduleErrText}
	}
	return native.OK
}

func (f *fakeRuntime) ReadGrid(api unsafe.Pointer, path string) (unsafe.Pointer, gmt.GridMeta, native.Status) {
	f.checkSession(api)
	f.calls.readGrid++
	if f.failReadGrid {
		return nil, gmt.GridMeta{}, native.Status{Code: 1, Message: f.readGridMsg}
	}
	return f.gridPtr(), f.gridMeta, native.OK
}

func (f *fakeRuntime) GridData(grid unsafe.Pointer) unsafe.Pointer {
	if grid != f.gridPtr() {
		panic("fakeRuntime: unknown grid handle")
	}
	if f.gridFreed {
		panic("fakeRuntime: grid handle used after free")
	}
	f.calls.gridData++
	return unsafe.Pointer(&f.gridData[0])
}

func (f *fakeRuntime) WriteGrid(api, grid unsafe.Pointer, path string) native.Status {
	f.checkSession(api)
	f.calls.writeGrid++
	return native.OK
}

func (f *fakeRuntime) FreeGrid(api, grid unsafe.Pointer) native.Status {
	f.checkSession(api)
	if grid != f.gridPtr() {
		panic("fakeRuntime: unknown grid handle")
	}
	if f.gridFreed {
		panic("fakeRuntime: double free of grid handle")
	}
	f.calls.freeGrid++
	f.gridFreed = true
	return native.OK
}

// newGridFake builds a fake with a canned 4x4 float32 grid.
func newGridFake() *fakeRuntime {
	f := &fakeRuntime{}
	f.gridMeta = gmt.GridMeta{
		Rows: 4,
		Cols: 4,
		WESN: [4]float64{0, 3, 0, 3},
		Inc:  [2]float64{1, 1},
	}
	f.gridData = make([]float32, 16)
	for i := range f.gridData {
		f.gridData[i] = float32(i) * 0.5
	}
	return f
}
