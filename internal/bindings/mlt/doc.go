// Package mlt holds the cgo surface for the MLT multimedia framework C API
// (framework/mlt.h). This package should ONLY be imported by pkg/mlt.
//
// MLT reports failure through NULL returns and nonzero ints; it has no
// last-error accessor, so statuses carry the failing call's name. Image
// buffers returned by mlt_frame_get_image are owned by the frame and are
// invalidated by the next call on the same frame, which is why the public
// layer copies them by default.
package mlt
