// Package tess holds the cgo surface for the Tesseract OCR C API
// (capi.h). This package should ONLY be imported by pkg/tess. Tesseract has
// no per-handle last-error accessor, so failure statuses carry only the
// failing call's name; the public layer attaches the operation context.
package tess
