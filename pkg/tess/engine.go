package tess

import (
	"context"
	"fmt"
	"runtime"

	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/native/logging"
	"github.com/nativekit/nativekit-go/pkg/ndarray"
)

// Page segmentation modes, mirroring TessPageSegMode.
const (
	PSMOSDOnly         = 0
	PSMAutoOSD         = 1
	PSMAutoOnly        = 2
	PSMAuto            = 3
	PSMSingleColumn    = 4
	PSMSingleBlockVert = 5
	PSMSingleBlock     = 6
	PSMSingleLine      = 7
	PSMSingleWord      = 8
	PSMCircleWord      = 9
	PSMSingleChar      = 10
	PSMSparseText      = 11
	PSMSparseTextOSD   = 12
	PSMRawLine         = 13
)

// Config carries engine construction parameters.
type Config struct {
	// Datapath points at the tessdata directory; empty selects Tesseract's
	// compiled-in default. Forwarded verbatim to the native library.
	Datapath string
	// Language is the traineddata language code, e.g. "eng". Required.
	Language string
	// Variables are applied with SetVariable right after init.
	Variables map[string]string
	// Logger receives debug-level traces. Defaults to a no-op logger.
	Logger logging.Logger
}

// Engine owns one initialized TessBaseAPI instance.
type Engine struct {
	h   native.Handle
	rt  Runtime
	log logging.Logger

	// img pins the most recent SetImage buffer. Tesseract reads the pixels
	// lazily, so the Go slice must stay reachable until the next SetImage,
	// Clear, or Close.
	img []byte
}

// New creates and initializes an engine against the linked native library.
func New(cfg Config) (*Engine, error) {
	return NewWithRuntime(nativeRuntime{}, cfg)
}

// NewWithRuntime creates an engine against a caller-supplied Runtime. Tests
// use this to exercise the wrapper over a fake native layer.
func NewWithRuntime(rt Runtime, cfg Config) (*Engine, error) {
	const op = "tess.New"
	if rt == nil {
		return nil, native.NewError(op, native.ErrInvalidArgument, "nil runtime")
	}
	if cfg.Language == "" {
		return nil, native.NewError(op, native.ErrInvalidArgument, "language is required")
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	ptr, st := rt.Create()
	if !st.Ok() {
		if st.IsNotBuilt() {
			return nil, native.NewError(op, native.ErrNotBuilt, "")
		}
		// The factory itself failed: no instance exists, nothing to delete.
		return nil, native.NewError(op, native.ErrHandleCreation, st.Message)
	}

	if st := rt.Init(ptr, cfg.Datapath, cfg.Language); !st.Ok() {
		// The raw instance exists but never became a usable handle; delete
		// it here and leave the wrapper in its terminal failed state.
		rt.Destroy(ptr)
		return nil, native.NewError(op, native.ErrHandleCreation,
			fmt.Sprintf("init language %q: %s", cfg.Language, st.Message))
	}

	e := &Engine{h: native.Activate(ptr), rt: rt, log: log}
	for name, value := range cfg.Variables {
		if !rt.SetVariable(ptr, name, value) {
			_ = e.Close()
			return nil, native.NewError(op, native.ErrInvalidArgument,
				fmt.Sprintf("variable %q rejected", name))
		}
	}
	e.log.Debug(context.Background(), "tesseract engine initialized",
		"language", cfg.Language, "datapath", cfg.Datapath)
	runtime.SetFinalizer(e, func(e *Engine) { _ = e.Close() })
	return e, nil
}

// Close tears the engine down. Idempotent: the native destructor runs at
// most once.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	ptr, ok := e.h.Release()
	if !ok {
		return nil
	}
	runtime.SetFinalizer(e, nil)
	e.rt.Destroy(ptr)
	e.img = nil
	return nil
}

// Alive reports whether the engine handle is active. Satisfies
// ndarray.Owner.
func (e *Engine) Alive() bool { return e.h.Active() }

// State returns the engine's lifecycle state.
func (e *Engine) State() native.State { return e.h.State() }

// SetImage hands an RGB image to the engine. The view must be uint8 with
// shape (height, width, 3); shape is read from the view's own metadata. The
// pixel buffer stays pinned until the next SetImage, Clear, or Close.
func (e *Engine) SetImage(img *ndarray.Array) error {
	const op = "tess.SetImage"
	ptr, err := e.h.Ptr(op)
	if err != nil {
		return err
	}
	if img == nil {
		return native.NewError(op, native.ErrInvalidArgument, "nil image")
	}
	if img.DType() != ndarray.Uint8 {
		return native.NewError(op, native.ErrInvalidArgument,
			fmt.Sprintf("image dtype %s, want uint8", img.DType()))
	}
	shape := img.Shape()
	if len(shape) != 3 || shape[2] != 3 {
		return native.NewError(op, native.ErrInvalidArgument,
			fmt.Sprintf("image shape %v, want (height, width, 3)", shape))
	}
	if !img.Valid() {
		return native.NewError(op, native.ErrBufferLifetime, "image view is no longer valid")
	}

	height, width, channels := shape[0], shape[1], shape[2]
	data := img.Bytes()
	e.img = data
	e.rt.SetImage(ptr, data, width, height, channels, width*channels)
	runtime.KeepAlive(e)
	return nil
}

// SetRectangle restricts recognition to a sub-region of the current image.
func (e *Engine) SetRectangle(box Box) error {
	ptr, err := e.h.Ptr("tess.SetRectangle")
	if err != nil {
		return err
	}
	e.rt.SetRectangle(ptr, box.Left, box.Top, box.Width, box.Height)
	runtime.KeepAlive(e)
	return nil
}

// Recognize runs recognition on the current image.
func (e *Engine) Recognize() error {
	const op = "tess.Recognize"
	ptr, err := e.h.Ptr(op)
	if err != nil {
		return err
	}
	st := e.rt.Recognize(ptr)
	runtime.KeepAlive(e)
	if !st.Ok() {
		return native.CallError(op, st)
	}
	return nil
}

// Text returns the recognized page as UTF-8 text.
func (e *Engine) Text() (string, error) {
	ptr, err := e.h.Ptr("tess.Text")
	if err != nil {
		return "", err
	}
	out := e.rt.UTF8Text(ptr)
	runtime.KeepAlive(e)
	return out, nil
}

// HOCRText returns the recognition result in hOCR format.
func (e *Engine) HOCRText(page int) (string, error) {
	ptr, err := e.h.Ptr("tess.HOCRText")
	if err != nil {
		return "", err
	}
	out := e.rt.HOCRText(ptr, page)
	runtime.KeepAlive(e)
	return out, nil
}

// TSVText returns the recognition result in TSV format.
func (e *Engine) TSVText(page int) (string, error) {
	ptr, err := e.h.Ptr("tess.TSVText")
	if err != nil {
		return "", err
	}
	out := e.rt.TSVText(ptr, page)
	runtime.KeepAlive(e)
	return out, nil
}

// BoxText returns the recognition result in box-file format.
func (e *Engine) BoxText(page int) (string, error) {
	ptr, err := e.h.Ptr("tess.BoxText")
	if err != nil {
		return "", err
	}
	out := e.rt.BoxText(ptr, page)
	runtime.KeepAlive(e)
	return out, nil
}

// UNLVText returns the recognition result in UNLV format.
func (e *Engine) UNLVText() (string, error) {
	ptr, err := e.h.Ptr("tess.UNLVText")
	if err != nil {
		return "", err
	}
	out := e.rt.UNLVText(ptr)
	runtime.KeepAlive(e)
	return out, nil
}

// MeanConfidence returns the mean word confidence (0-100).
func (e *Engine) MeanConfidence() (int, error) {
	ptr, err := e.h.Ptr("tess.MeanConfidence")
	if err != nil {
		return 0, err
	}
	conf := e.rt.MeanConfidence(ptr)
	runtime.KeepAlive(e)
	return conf, nil
}

// Words returns every recognized word with confidence and bounding box.
// The native result iterator is created and destroyed inside the call, so
// no iterator can outlive the engine.
func (e *Engine) Words() ([]Span, error) {
	return e.spans("tess.Words", LevelWord)
}

// TextLines returns every recognized text line with confidence and
// bounding box.
func (e *Engine) TextLines() ([]Span, error) {
	return e.spans("tess.TextLines", LevelTextLine)
}

func (e *Engine) spans(op string, level Level) ([]Span, error) {
	ptr, err := e.h.Ptr(op)
	if err != nil {
		return nil, err
	}
	spans := e.rt.Spans(ptr, level)
	runtime.KeepAlive(e)
	return spans, nil
}

// SetVariable sets a Tesseract runtime variable.
func (e *Engine) SetVariable(name, value string) error {
	const op = "tess.SetVariable"
	ptr, err := e.h.Ptr(op)
	if err != nil {
		return err
	}
	ok := e.rt.SetVariable(ptr, name, value)
	runtime.KeepAlive(e)
	if !ok {
		return native.NewError(op, native.ErrInvalidArgument,
			fmt.Sprintf("variable %q rejected", name))
	}
	return nil
}

// IntVariable reads an integer variable.
func (e *Engine) IntVariable(name string) (int, bool, error) {
	ptr, err := e.h.Ptr("tess.IntVariable")
	if err != nil {
		return 0, false, err
	}
	v, ok := e.rt.IntVariable(ptr, name)
	runtime.KeepAlive(e)
	return v, ok, nil
}

// BoolVariable reads a boolean variable.
func (e *Engine) BoolVariable(name string) (bool, bool, error) {
	ptr, err := e.h.Ptr("tess.BoolVariable")
	if err != nil {
		return false, false, err
	}
	v, ok := e.rt.BoolVariable(ptr, name)
	runtime.KeepAlive(e)
	return v, ok, nil
}

// FloatVariable reads a double variable.
func (e *Engine) FloatVariable(name string) (float64, bool, error) {
	ptr, err := e.h.Ptr("tess.FloatVariable")
	if err != nil {
		return 0, false, err
	}
	v, ok := e.rt.FloatVariable(ptr, name)
	runtime.KeepAlive(e)
	return v, ok, nil
}

// StringVariable reads a string variable.
func (e *Engine) StringVariable(name string) (string, bool, error) {
	ptr, err := e.h.Ptr("tess.StringVariable")
	if err != nil {
		return "", false, err
	}
	v, ok := e.rt.StringVariable(ptr, name)
	runtime.KeepAlive(e)
	return v, ok, nil
}

// SetPageSegMode sets the page segmentation mode.
func (e *Engine) SetPageSegMode(mode int) error {
	ptr, err := e.h.Ptr("tess.SetPageSegMode")
	if err != nil {
		return err
	}
	e.rt.SetPageSegMode(ptr, mode)
	runtime.KeepAlive(e)
	return nil
}

// PageSegMode returns the current page segmentation mode.
func (e *Engine) PageSegMode() (int, error) {
	ptr, err := e.h.Ptr("tess.PageSegMode")
	if err != nil {
		return 0, err
	}
	mode := e.rt.PageSegMode(ptr)
	runtime.KeepAlive(e)
	return mode, nil
}

// DetectOrientationScript runs orientation and script detection.
func (e *Engine) DetectOrientationScript() (Orientation, error) {
	const op = "tess.DetectOrientationScript"
	ptr, err := e.h.Ptr(op)
	if err != nil {
		return Orientation{}, err
	}
	o, ok := e.rt.DetectOrientationScript(ptr)
	runtime.KeepAlive(e)
	if !ok {
		return Orientation{}, native.NewError(op, native.ErrNativeCall,
			"orientation detection failed")
	}
	return o, nil
}

// ThresholdedImage returns the binarized page as a (height, width) uint8
// view. Always a copy: the native Pix is destroyed before this returns, so
// borrowing is impossible by construction.
func (e *Engine) ThresholdedImage() (*ndarray.Array, error) {
	const op = "tess.ThresholdedImage"
	ptr, err := e.h.Ptr(op)
	if err != nil {
		return nil, err
	}
	data, width, height := e.rt.ThresholdedImage(ptr)
	runtime.KeepAlive(e)
	if len(data) == 0 {
		return nil, native.NewError(op, native.ErrNativeCall, "no thresholded image available")
	}
	return ndarray.FromBytes(data, []int{height, width}, ndarray.Uint8)
}

// Clear drops recognition results and the current image.
func (e *Engine) Clear() error {
	ptr, err := e.h.Ptr("tess.Clear")
	if err != nil {
		return err
	}
	e.rt.Clear(ptr)
	e.img = nil
	runtime.KeepAlive(e)
	return nil
}

// ClearAdaptiveClassifier resets the adaptive classifier.
func (e *Engine) ClearAdaptiveClassifier() error {
	ptr, err := e.h.Ptr("tess.ClearAdaptiveClassifier")
	if err != nil {
		return err
	}
	e.rt.ClearAdaptiveClassifier(ptr)
	runtime.KeepAlive(e)
	return nil
}

// Datapath returns the tessdata directory the engine was initialized with.
func (e *Engine) Datapath() (string, error) {
	ptr, err := e.h.Ptr("tess.Datapath")
	if err != nil {
		return "", err
	}
	out := e.rt.Datapath(ptr)
	runtime.KeepAlive(e)
	return out, nil
}

// InitLanguages returns the languages the engine was initialized with.
func (e *Engine) InitLanguages() (string, error) {
	ptr, err := e.h.Ptr("tess.InitLanguages")
	if err != nil {
		return "", err
	}
	out := e.rt.InitLanguages(ptr)
	runtime.KeepAlive(e)
	return out, nil
}

// Version reports the linked Tesseract library version.
func Version() string {
	return nativeRuntime{}.Version()
}
