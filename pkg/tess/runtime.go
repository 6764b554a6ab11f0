package tess

import (
	"unsafe"

	bindtess "github.com/nativekit/nativekit-go/internal/bindings/tess"
	"github.com/nativekit/nativekit-go/pkg/native"
)

// Box is a pixel-space bounding box, top-left origin.
type Box struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Span is one recognized unit (word or text line) with its confidence and
// bounding box.
type Span struct {
	Text       string
	Confidence float32
	Box        Box
}

// Orientation is the result of page orientation and script detection.
type Orientation struct {
	Degrees          int
	Confidence       float32
	Script           string
	ScriptConfidence float32
}

// Iterator levels for Spans, mirroring TessPageIteratorLevel.
type Level int

const (
	LevelBlock    Level = bindtess.LevelBlock
	LevelPara     Level = bindtess.LevelPara
	LevelTextLine Level = bindtess.LevelTextLine
	LevelWord     Level = bindtess.LevelWord
	LevelSymbol   Level = bindtess.LevelSymbol
)

// Runtime is the native capability surface the engine consumes. Tests
// substitute a fake; production code uses the cgo layer.
type Runtime interface {
	Create() (unsafe.Pointer, native.Status)
	Init(api unsafe.Pointer, datapath, language string) native.Status
	Destroy(api unsafe.Pointer)
	SetImage(api unsafe.Pointer, data []byte, width, height, bytesPerPixel, bytesPerLine int)
	SetRectangle(api unsafe.Pointer, left, top, width, height int)
	Recognize(api unsafe.Pointer) native.Status
	UTF8Text(api unsafe.Pointer) string
	HOCRText(api unsafe.Pointer, page int) string
	TSVText(api unsafe.Pointer, page int) string
	BoxText(api unsafe.Pointer, page int) string
	UNLVText(api unsafe.Pointer) string
	MeanConfidence(api unsafe.Pointer) int
	Spans(api unsafe.Pointer, level Level) []Span
	SetVariable(api unsafe.Pointer, name, value string) bool
	IntVariable(api unsafe.Pointer, name string) (int, bool)
	BoolVariable(api unsafe.Pointer, name string) (bool, bool)
	FloatVariable(api unsafe.Pointer, name string) (float64, bool)
	StringVariable(api unsafe.Pointer, name string) (string, bool)
	SetPageSegMode(api unsafe.Pointer, mode int)
	PageSegMode(api unsafe.Pointer) int
	DetectOrientationScript(api unsafe.Pointer) (Orientation, bool)
	ThresholdedImage(api unsafe.Pointer) ([]byte, int, int)
	Clear(api unsafe.Pointer)
	ClearAdaptiveClassifier(api unsafe.Pointer)
	Datapath(api unsafe.Pointer) string
	InitLanguages(api unsafe.Pointer) string
	Version() string
}

type nativeRuntime struct{}

func (nativeRuntime) Create() (unsafe.Pointer, native.Status) { return bindtess.Create() }

func (nativeRuntime) Init(api unsafe.Pointer, datapath, language string) native.Status {
	return bindtess.Init(api, datapath, language)
}

func (nativeRuntime) Destroy(api unsafe.Pointer) { bindtess.Destroy(api) }

func (nativeRuntime) SetImage(api unsafe.Pointer, data []byte, w, h, bpp, bpl int) {
	bindtess.SetImage(api, data, w, h, bpp, bpl)
}

func (nativeRuntime) SetRectangle(api unsafe.Pointer, l, t, w, h int) {
	bindtess.SetRectangle(api, l, t, w, h)
}

func (nativeRuntime) Recognize(api unsafe.Pointer) native.Status { return bindtess.Recognize(api) }

func (nativeRuntime) UTF8Text(api unsafe.Pointer) string { return bindtess.UTF8Text(api) }

func (nativeRuntime) HOCRText(api unsafe.Pointer, page int) string {
	return bindtess.HOCRText(api, page)
}

func (nativeRuntime) TSVText(api unsafe.Pointer, page int) string {
	return bindtess.TSVText(api, page)
}

func (nativeRuntime) BoxText(api unsafe.Pointer, page int) string {
	return bindtess.BoxText(api, page)
}

func (nativeRuntime) UNLVText(api unsafe.Pointer) string { return bindtess.UNLVText(api) }

func (nativeRuntime) MeanConfidence(api unsafe.Pointer) int { return bindtess.MeanConfidence(api) }

func (nativeRuntime) Spans(api unsafe.Pointer, level Level) []Span {
	raw := bindtess.Spans(api, int(level))
	spans := make([]Span, len(raw))
	for i, s := range raw {
		spans[i] = Span{
			Text:       s.Text,
			Confidence: s.Confidence,
			Box:        Box{Left: s.Left, Top: s.Top, Width: s.Width, Height: s.Height},
		}
	}
	return spans
}

func (nativeRuntime) SetVariable(api unsafe.Pointer, name, value string) bool {
	return bindtess.SetVariable(api, name, value)
}

func (nativeRuntime) IntVariable(api unsafe.Pointer, name string) (int, bool) {
	return bindtess.IntVariable(api, name)
}

func (nativeRuntime) BoolVariable(api unsafe.Pointer, name string) (bool, bool) {
	return bindtess.BoolVariable(api, name)
}

func (nativeRuntime) FloatVariable(api unsafe.Pointer, name string) (float64, bool) {
	return bindtess.FloatVariable(api, name)
}

func (nativeRuntime) StringVariable(api unsafe.Pointer, name string) (string, bool) {
	return bindtess.StringVariable(api, name)
}

func (nativeRuntime) SetPageSegMode(api unsafe.Pointer, mode int) {
	bindtess.SetPageSegMode(api, mode)
}

func (nativeRuntime) PageSegMode(api unsafe.Pointer) int { return bindtess.PageSegMode(api) }

func (nativeRuntime) DetectOrientationScript(api unsafe.Pointer) (Orientation, bool) {
	o, ok := bindtess.DetectOrientationScript(api)
	if !ok {
		return Orientation{}, false
	}
	return Orientation{
		Degrees:          o.Degrees,
		Confidence:       o.Confidence,
		Script:           o.Script,
		ScriptConfidence: o.ScriptConfidence,
	}, true
}

func (nativeRuntime) ThresholdedImage(api unsafe.Pointer) ([]byte, int, int) {
	return bindtess.ThresholdedImage(api)
}

func (nativeRuntime) Clear(api unsafe.Pointer) { bindtess.Clear(api) }

func (nativeRuntime) ClearAdaptiveClassifier(api unsafe.Pointer) {
	bindtess.ClearAdaptiveClassifier(api)
}

func (nativeRuntime) Datapath(api unsafe.Pointer) string { return bindtess.Datapath(api) }

func (nativeRuntime) InitLanguages(api unsafe.Pointer) string { return bindtess.InitLanguages(api) }

func (nativeRuntime) Version() string { return bindtess.Version() }
