package gmt

import (
	"unsafe"

	bindgmt "github.com/nativekit/nativekit-go/internal/bindings/gmt"
	"github.com/nativekit/nativekit-go/pkg/native"
)

// GridMeta mirrors the native grid header fields. Shape always comes from
// here, never from a caller-supplied size.
type GridMeta struct {
	Rows         int
	Cols         int
	Registration int
	WESN         [4]float64
	Inc          [2]float64
}

// Runtime is the native capability surface the session consumes. The default
// implementation forwards to the cgo layer; tests substitute fakes the same
// way the transport interface is substituted in network bindings.
type Runtime interface {
	CreateSession(tag string, pad uint) (unsafe.Pointer, native.Status)
	DestroySession(api unsafe.Pointer) native.Status
	Version(api unsafe.Pointer) (major, minor, patch int)
	CallModule(api unsafe.Pointer, module, args string) native.Status
	ReadGrid(api unsafe.Pointer, path string) (unsafe.Pointer, GridMeta, native.Status)
	GridData(grid unsafe.Pointer) unsafe.Pointer
	WriteGrid(api, grid unsafe.Pointer, path string) native.Status
	FreeGrid(api, grid unsafe.Pointer) native.Status
}

type nativeRuntime struct{}

func (nativeRuntime) CreateSession(tag string, pad uint) (unsafe.Pointer, native.Status) {
	return bindgmt.CreateSession(tag, pad)
}

func (nativeRuntime) DestroySession(api unsafe.Pointer) native.Status {
	return bindgmt.DestroySession(api)
}

func (nativeRuntime) Version(api unsafe.Pointer) (int, int, int) {
	return bindgmt.Version(api)
}

func (nativeRuntime) CallModule(api unsafe.Pointer, module, args string) native.Status {
	return bindgmt.CallModule(api, module, args)
}

func (nativeRuntime) ReadGrid(api unsafe.Pointer, path string) (unsafe.Pointer, GridMeta, native.Status) {
	grid, info, st := bindgmt.ReadGrid(api, path)
	if !st.Ok() {
		return nil, GridMeta{}, st
	}
	return grid, GridMeta{
		Rows:         info.Rows,
		Cols:         info.Cols,
		Registration: info.Registration,
		WESN:         info.WESN,
		Inc:          info.Inc,
	}, st
}

func (nativeRuntime) GridData(grid unsafe.Pointer) unsafe.Pointer {
	return bindgmt.GridData(grid)
}

func (nativeRuntime) WriteGrid(api, grid unsafe.Pointer, path string) native.Status {
	return bindgmt.WriteGrid(api, grid, path)
}

func (nativeRuntime) FreeGrid(api, grid unsafe.Pointer) native.Status {
	return bindgmt.FreeGrid(api, grid)
}
