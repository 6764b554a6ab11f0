//go:build !cgo || windows

package gmt

import (
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Stub implementations for non-cgo builds or Windows. The package compiles
// everywhere; calls report native.NotBuilt.

func CreateSession(string, uint) (unsafe.Pointer, native.Status) {
	return nil, native.NotBuilt
}

func DestroySession(unsafe.Pointer) native.Status { return native.NotBuilt }

func Version(unsafe.Pointer) (major, minor, patch int) { return 0, 0, 0 }

func CallModule(unsafe.Pointer, string, string) native.Status { return native.NotBuilt }

func ReadGrid(unsafe.Pointer, string) (unsafe.Pointer, GridInfo, native.Status) {
	return nil, GridInfo{}, native.NotBuilt
}

func GridData(unsafe.Pointer) unsafe.Pointer { return nil }

func WriteGrid(_, _ unsafe.Pointer, _ string) native.Status { return native.NotBuilt }

func FreeGrid(_, _ unsafe.Pointer) native.Status { return native.NotBuilt }
