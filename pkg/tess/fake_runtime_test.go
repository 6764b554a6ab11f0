package tess_test

import (
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/tess"
)

// fakeRuntime is a scriptable TessBaseAPI. It panics when the handle is
// used after Destroy so liveness-check bypasses crash the test instead of
// silently reusing a dead pointer.
type fakeRuntime struct {
	failCreate bool
	createMsg  string
	failInit   bool
	initMsg    string

	token     byte
	destroyed bool

	text      string
	spans     []tess.Span
	meanConf  int
	psm       int
	variables map[string]string

	lastImage struct {
		data   []byte
		width  int
		height int
		bpp    int
		bpl    int
	}

	calls struct {
		create, init, destroy, setImage, recognize, text int
	}
}

func (f *fakeRuntime) ptr() unsafe.Pointer { return unsafe.Pointer(&f.token) }

func (f *fakeRuntime) check(api unsafe.Pointer) {
	if api != f.ptr() {
		panic("fakeRuntime: unknown engine handle")
	}
	if f.destroyed {
		panic("fakeRuntime: engine handle used after destroy")
	}
}

func (f *fakeRuntime) Create() (unsafe.Pointer, native.Status) {
	f.calls.create++
	if f.failCreate {
		return nil, native.Status{Code: 1, Message: f.createMsg}
	}
	return f.ptr(), native.OK
}

func (f *fakeRuntime) Init(api unsafe.Pointer, datapath, language string) native.Status {
	f.check(api)
	f.calls.init++
	if f.failInit {
		return native.Status{Code: -1, Message: f.initMsg}
	}
	return native.OK
}

func (f *fakeRuntime) Destroy(api unsafe.Pointer) {
	if api != f.ptr() {
		panic("fakeRuntime: destroying unknown handle")
	}
	if f.destroyed {
		panic("fakeRuntime: double destroy")
	}
	f.calls.destroy++
	f.destroyed = true
}

func (f *fakeRuntime) SetImage(api unsafe.Pointer, data []byte, w, h, bpp, bpl int) {
	f.check(api)
	f.calls.setImage++
	f.lastImage.data = data
	f.lastImage.width = w
	f.lastImage.height = h
	f.lastImage.bpp = bpp
	f.lastImage.bpl = bpl
}

func (f *fakeRuntime) SetRectangle(api unsafe.Pointer, l, t, w, h int) { f.check(api) }

func (f *fakeRuntime) Recognize(api unsafe.Pointer) native.Status {
	f.check(api)
	f.calls.recognize++
	return native.OK
}

func (f *fakeRuntime) UTF8Text(api unsafe.Pointer) string {
	f.check(api)
	f.calls.text++
	return f.text
}

func (f *fakeRuntime) HOCRText(api unsafe.Pointer, page int) string {
	f.check(api)
	return "<div class='ocr_page'>" + f.text + "</div>"
}

func (f *fakeRuntime) TSVText(api unsafe.Pointer, page int) string { f.check(api); return "" }

func (f *fakeRuntime) BoxText(api unsafe.Pointer, page int) string { f.check(api); return "" }

func (f *fakeRuntime) UNLVText(api unsafe.Pointer) string { f.check(api); return "" }

func (f *fakeRuntime) MeanConfidence(api unsafe.Pointer) int {
	f.check(api)
	return f.meanConf
}

func (f *fakeRuntime) Spans(api unsafe.Pointer, level tess.Level) []tess.Span {
	f.check(api)
	return f.spans
}

func (f *fakeRuntime) SetVariable(api unsafe.Pointer, name, value string) bool {
	f.check(api)
	if f.variables == nil {
		f.variables = map[string]string{}
	}
	f.variables[name] = value
	return true
}

func (f *fakeRuntime) IntVariable(api unsafe.Pointer, name string) (int, bool) {
	f.check(api)
	return 0, false
}

func (f *fakeRuntime) BoolVariable(api unsafe.Pointer, name string) (bool, bool) {
	f.check(api)
	return false, false
}

func (f *fakeRuntime) FloatVariable(api unsafe.Pointer, name string) (float64, bool) {
	f.check(api)
	return 0, false
}

func (f *fakeRuntime) StringVariable(api unsafe.Pointer, name string) (string, bool) {
	f.check(api)
	v, ok := f.variables[name]
	return v, ok
}

func (f *fakeRuntime) SetPageSegMode(api unsafe.Pointer, mode int) {
	f.check(api)
	f.psm = mode
}

func (f *fakeRuntime) PageSegMode(api unsafe.Pointer) int {
	f.check(api)
	return f.psm
}

func (f *fakeRuntime) DetectOrientationScript(api unsafe.Pointer) (tess.Orientation, bool) {
	f.check(api)
	return tess.Orientation{Degrees: 0, Confidence: 9.5, Script: "Latin", ScriptConfidence: 11.2}, true
}

func (f *fakeRuntime) ThresholdedImage(api unsafe.Pointer) ([]byte, int, int) {
	f.check(api)
	data := make([]byte, 4*4)
	for i := range data {
		data[i] = byte(i * 16)
	}
	return data, 4, 4
}

func (f *fakeRuntime) Clear(api unsafe.Pointer) { f.check(api) }

func (f *fakeRuntime) ClearAdaptiveClassifier(api unsafe.Pointer) { f.check(api) }

func (f *fakeRuntime) Datapath(api unsafe.Pointer) string {
	f.check(api)
	return "/usr/share/tessdata"
}

func (f *fakeRuntime) InitLanguages(api unsafe.Pointer) string {
	f.check(api)
	return "eng"
}

func (f *fakeRuntime) Version() string { return "5.3.0-fake" }
