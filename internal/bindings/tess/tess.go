//go:build cgo && !windows

package tess

/*
#cgo pkg-config: tesseract lept
#cgo LDFLAGS: -ltesseract -llept
#include <stdlib.h>
#include <tesseract/capi.h>
#include <leptonica/allheaders.h>
*/
import "C"

import (
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Create allocates a TessBaseAPI instance. Initialization is a separate
// step; a created-but-uninitialized instance must still be deleted.
func Create() (unsafe.Pointer, native.Status) {
	api := C.TessBaseAPICreate()
	if api == nil {
		return nil, native.Status{Code: 1, Message: "TessBaseAPICreate returned NULL"}
	}
	return unsafe.Pointer(api), native.OK
}

// Init initializes the engine with a tessdata path and language. An empty
// datapath lets Tesseract fall back to its compiled-in default.
func Init(api unsafe.Pointer, datapath, language string) native.Status {
	var cPath *C.char
	if datapath != "" {
		cPath = C.CString(datapath)
		defer C.free(unsafe.Pointer(cPath))
	}
	cLang := C.CString(language)
	defer C.free(unsafe.Pointer(cLang))

	rc := C.TessBaseAPIInit3((*C.TessBaseAPI)(api), cPath, cLang)
	return native.FromCode(int(rc), "TessBaseAPIInit3 failed")
}

// Destroy ends recognition and deletes the instance. Runs at most once.
func Destroy(api unsafe.Pointer) {
	h := (*C.TessBaseAPI)(api)
	C.TessBaseAPIEnd(h)
	C.TessBaseAPIDelete(h)
}

// SetImage hands raw pixel data to the engine. Tesseract copies internally
// on demand, but the documented contract is that data must stay valid until
// the next SetImage or Clear, so the caller keeps the Go slice alive.
func SetImage(api unsafe.Pointer, data []byte, width, height, bytesPerPixel, bytesPerLine int) {
	C.TessBaseAPISetImage((*C.TessBaseAPI)(api),
		(*C.uchar)(unsafe.Pointer(&data[0])),
		C.int(width), C.int(height), C.int(bytesPerPixel), C.int(bytesPerLine))
}

// SetRectangle restricts recognition to a sub-region of the current image.
func SetRectangle(api unsafe.Pointer, left, top, width, height int) {
	C.TessBaseAPISetRectangle((*C.TessBaseAPI)(api),
		C.int(left), C.int(top), C.int(width), C.int(height))
}

// Recognize runs recognition on the current image.
func Recognize(api unsafe.Pointer) native.Status {
	rc := C.TessBaseAPIRecognize((*C.TessBaseAPI)(api), nil)
	return native.FromCode(int(rc), "TessBaseAPIRecognize failed")
}

// goText converts a Tesseract-allocated string and frees it through the
// library's own deleter, never the C runtime's.
func goText(text *C.char) string {
	if text == nil {
		return ""
	}
	out := C.GoString(text)
	C.TessDeleteText(text)
	return out
}

// UTF8Text returns the recognized text.
func UTF8Text(api unsafe.Pointer) string {
	return goText(C.TessBaseAPIGetUTF8Text((*C.TessBaseAPI)(api)))
}

// HOCRText returns the recognition result in hOCR format.
func HOCRText(api unsafe.Pointer, page int) string {
	return goText(C.TessBaseAPIGetHOCRText((*C.TessBaseAPI)(api), C.int(page)))
}

// TSVText returns the recognition result in TSV format.
func TSVText(api unsafe.Pointer, page int) string {
	return goText(C.TessBaseAPIGetTsvText((*C.TessBaseAPI)(api), C.int(page)))
}

// BoxText returns the recognition result in box-file format.
func BoxText(api unsafe.Pointer, page int) string {
	return goText(C.TessBaseAPIGetBoxText((*C.TessBaseAPI)(api), C.int(page)))
}

// UNLVText returns the recognition result in UNLV format.
func UNLVText(api unsafe.Pointer) string {
	return goText(C.TessBaseAPIGetUNLVText((*C.TessBaseAPI)(api)))
}

// MeanConfidence returns the mean word confidence (0-100).
func MeanConfidence(api unsafe.Pointer) int {
	return int(C.TessBaseAPIMeanTextConf((*C.TessBaseAPI)(api)))
}

// Spans walks the result iterator at the given level. The iterator is a
// native derived resource; it is created and destroyed entirely within this
// call so its lifetime can never outlive the engine.
func Spans(api unsafe.Pointer, level int) []Span {
	ri := C.TessBaseAPIGetIterator((*C.TessBaseAPI)(api))
	if ri == nil {
		return nil
	}
	defer C.TessResultIteratorDelete(ri)

	pi := C.TessResultIteratorGetPageIterator(ri)
	lvl := C.TessPageIteratorLevel(level)

	var spans []Span
	for {
		text := C.TessResultIteratorGetUTF8Text(ri, lvl)
		if text != nil {
			var l, t, r, b C.int
			C.TessPageIteratorBoundingBox(pi, lvl, &l, &t, &r, &b)
			spans = append(spans, Span{
				Text:       goText(text),
				Confidence: float32(C.TessResultIteratorConfidence(ri, lvl)),
				Left:       int(l),
				Top:        int(t),
				Width:      int(r - l),
				Height:     int(b - t),
			})
		}
		if C.TessPageIteratorNext(pi, lvl) == 0 {
			break
		}
	}
	return spans
}

// SetVariable sets a Tesseract runtime variable.
func SetVariable(api unsafe.Pointer, name, value string) bool {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))
	return C.TessBaseAPISetVariable((*C.TessBaseAPI)(api), cName, cValue) != 0
}

// IntVariable reads an integer variable.
func IntVariable(api unsafe.Pointer, name string) (int, bool) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var v C.int
	ok := C.TessBaseAPIGetIntVariable((*C.TessBaseAPI)(api), cName, &v) != 0
	return int(v), ok
}

// BoolVariable reads a boolean variable.
func BoolVariable(api unsafe.Pointer, name string) (bool, bool) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var v C.BOOL
	ok := C.TessBaseAPIGetBoolVariable((*C.TessBaseAPI)(api), cName, &v) != 0
	return v != 0, ok
}

// FloatVariable reads a double variable.
func FloatVariable(api unsafe.Pointer, name string) (float64, bool) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	var v C.double
	ok := C.TessBaseAPIGetDoubleVariable((*C.TessBaseAPI)(api), cName, &v) != 0
	return float64(v), ok
}

// StringVariable reads a string variable. The returned text is owned by the
// engine, so it is copied here.
func StringVariable(api unsafe.Pointer, name string) (string, bool) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	v := C.TessBaseAPIGetStringVariable((*C.TessBaseAPI)(api), cName)
	if v == nil {
		return "", false
	}
	return C.GoString(v), true
}

// SetPageSegMode sets the page segmentation mode.
func SetPageSegMode(api unsafe.Pointer, mode int) {
	C.TessBaseAPISetPageSegMode((*C.TessBaseAPI)(api), C.TessPageSegMode(mode))
}

// PageSegMode returns the current page segmentation mode.
func PageSegMode(api unsafe.Pointer) int {
	return int(C.TessBaseAPIGetPageSegMode((*C.TessBaseAPI)(api)))
}

// DetectOrientationScript runs orientation and script detection.
func DetectOrientationScript(api unsafe.Pointer) (Orientation, bool) {
	var deg C.int
	var conf, scriptConf C.float
	var script *C.char

	ok := C.TessBaseAPIDetectOrientationScript((*C.TessBaseAPI)(api),
		&deg, &conf, &script, &scriptConf) != 0
	if !ok || script == nil {
		return Orientation{}, false
	}
	return Orientation{
		Degrees:          int(deg),
		Confidence:       float32(conf),
		Script:           C.GoString(script),
		ScriptConfidence: float32(scriptConf),
	}, true
}

// ThresholdedImage copies the binarized page image out of the engine as an
// 8bpp grayscale buffer. The Pix objects are destroyed before returning, so
// the result is always binding-owned memory.
func ThresholdedImage(api unsafe.Pointer) ([]byte, int, int) {
	pix := C.TessBaseAPIGetThresholdedImage((*C.TessBaseAPI)(api))
	if pix == nil {
		return nil, 0, 0
	}
	defer C.pixDestroy(&pix)

	var pix8 *C.PIX
	switch C.pixGetDepth(pix) {
	case 1:
		pix8 = C.pixConvert1To8(nil, pix, 0, 255)
	case 8:
		pix8 = C.pixClone(pix)
	default:
		return nil, 0, 0
	}
	if pix8 == nil {
		return nil, 0, 0
	}
	defer C.pixDestroy(&pix8)

	width := int(C.pixGetWidth(pix8))
	height := int(C.pixGetHeight(pix8))
	data := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var val C.l_uint32
			C.pixGetPixel(pix8, C.l_int32(x), C.l_int32(y), &val)
			data[y*width+x] = byte(val)
		}
	}
	return data, width, height
}

// Clear drops recognition results and the current image.
func Clear(api unsafe.Pointer) {
	C.TessBaseAPIClear((*C.TessBaseAPI)(api))
}

// ClearAdaptiveClassifier resets the adaptive classifier.
func ClearAdaptiveClassifier(api unsafe.Pointer) {
	C.TessBaseAPIClearAdaptiveClassifier((*C.TessBaseAPI)(api))
}

// Datapath returns the tessdata directory the engine was initialized with.
func Datapath(api unsafe.Pointer) string {
	return C.GoString(C.TessBaseAPIGetDatapath((*C.TessBaseAPI)(api)))
}

// InitLanguages returns the languages the engine was initialized with.
func InitLanguages(api unsafe.Pointer) string {
	return C.GoString(C.TessBaseAPIGetInitLanguagesAsString((*C.TessBaseAPI)(api)))
}

// Version reports the linked Tesseract library version.
func Version() string {
	return C.GoString(C.TessVersion())
}
