//go:build cgo && !windows

package gmt

/*
#cgo pkg-config: gmt
#cgo LDFLAGS: -lgmt
#include <stdlib.h>
#include "gmt.h"
#include "gmt_resources.h"
*/
import "C"

import (
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// lastError drains GMT's own error reporting for the session. GMT keeps the
// text of the most recent failure; reading it after a success returns stale
// text, so callers only consult this on a nonzero status.
func lastError(api unsafe.Pointer) string {
	if api == nil {
		return ""
	}
	msg := C.GMT_Error_Message(api)
	if msg == nil {
		return ""
	}
	return C.GoString(msg)
}

// CreateSession opens a GMT session in external mode. A nil return from the
// native factory is the only failure signal; GMT offers no error text before
// a session exists.
func CreateSession(tag string, pad uint) (unsafe.Pointer, native.Status) {
	cTag := C.CString(tag)
	defer C.free(unsafe.Pointer(cTag))

	api := C.GMT_Create_Session(cTag, C.uint(pad), C.GMT_SESSION_EXTERNAL, nil)
	if api == nil {
		return nil, native.Status{Code: 1, Message: "GMT_Create_Session returned NULL"}
	}
	return api, native.OK
}

// DestroySession tears the session down. Called at most once per session by
// the wrapper's Close.
func DestroySession(api unsafe.Pointer) native.Status {
	rc := C.GMT_Destroy_Session(api)
	return native.FromCode(int(rc), lastError(nil))
}

// Version reports the linked GMT library version.
func Version(api unsafe.Pointer) (major, minor, patch int) {
	var maj, min, pat C.uint
	C.GMT_Get_Version(api, &maj, &min, &pat)
	return int(maj), int(min), int(pat)
}

// CallModule runs a GMT module with a pre-rendered argument string. The
// status is converted here, immediately on return, so nothing downstream
// sees GMT's raw codes.
func CallModule(api unsafe.Pointer, module, args string) native.Status {
	cModule := C.CString(module)
	defer C.free(unsafe.Pointer(cModule))
	cArgs := C.CString(args)
	defer C.free(unsafe.Pointer(cArgs))

	rc := C.GMT_Call_Module(api, cModule, C.GMT_MODULE_CMD, unsafe.Pointer(cArgs))
	if rc != C.GMT_NOERROR {
		return native.FromCode(int(rc), lastError(api))
	}
	return native.OK
}

// ReadGrid loads a grid file into a native GMT_GRID (container and data).
// The returned pointer is owned by the session; FreeGrid must run before the
// session is destroyed.
func ReadGrid(api unsafe.Pointer, path string) (unsafe.Pointer, GridInfo, native.Status) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	grid := C.GMT_Read_Data(api, C.GMT_IS_GRID, C.GMT_IS_FILE, C.GMT_IS_SURFACE,
		C.GMT_CONTAINER_AND_DATA, nil, cPath, nil)
	if grid == nil {
		return nil, GridInfo{}, native.Status{Code: 1, Message: lastError(api)}
	}

	g := (*C.struct_GMT_GRID)(grid)
	h := g.header
	info := GridInfo{
		Rows:         int(h.n_rows),
		Cols:         int(h.n_columns),
		Registration: int(h.registration),
		WESN:         [4]float64{float64(h.wesn[0]), float64(h.wesn[1]), float64(h.wesn[2]), float64(h.wesn[3])},
		Inc:          [2]float64{float64(h.inc[0]), float64(h.inc[1])},
	}
	return unsafe.Pointer(grid), info, native.OK
}

// GridData returns the base pointer of the grid's float sample array.
func GridData(grid unsafe.Pointer) unsafe.Pointer {
	g := (*C.struct_GMT_GRID)(grid)
	return unsafe.Pointer(g.data)
}

// WriteGrid writes a native grid to path.
func WriteGrid(api, grid unsafe.Pointer, path string) native.Status {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	rc := C.GMT_Write_Data(api, C.GMT_IS_GRID, C.GMT_IS_FILE, C.GMT_IS_SURFACE,
		C.GMT_CONTAINER_AND_DATA, nil, cPath, grid)
	if rc != C.GMT_NOERROR {
		return native.FromCode(int(rc), lastError(api))
	}
	return native.OK
}

// FreeGrid releases a grid previously returned by ReadGrid.
func FreeGrid(api, grid unsafe.Pointer) native.Status {
	rc := C.GMT_Destroy_Data(api, grid)
	return native.FromCode(int(rc), lastError(api))
}
