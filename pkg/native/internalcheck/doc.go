// Package internalcheck provides internal validation and testing utilities.
//
// This package contains policy tests used internally by the nativekit-go
// library to keep the cgo surface confined. It is not intended for external
// use and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the nativekit library. Use the public API
// provided by pkg/gmt, pkg/tess, and pkg/mlt instead.
package internalcheck
