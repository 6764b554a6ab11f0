// Package tess wraps the Tesseract OCR engine's C API.
//
// An Engine owns exactly one TessBaseAPI instance: created and initialized
// by New, torn down at most once by Close. Initialization failure is a
// terminal state — the wrapper never becomes usable and no handle survives
// it. Images are handed in as ndarray views (height, width, 3) and the
// binding keeps the pixel buffer referenced for as long as Tesseract's
// documented buffer contract requires.
//
// Tesseract does not document the TessBaseAPI as reentrant; the binding
// adds no locking, and an Engine shared across goroutines needs external
// mutual exclusion.
package tess
