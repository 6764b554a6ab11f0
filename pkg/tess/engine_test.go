package tess_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nativekit/nativekit-go/pkg/native"
	"github.com/nativekit/nativekit-go/pkg/ndarray"
	"github.com/nativekit/nativekit-go/pkg/tess"
)

func newEngine(t *testing.T, f *fakeRuntime) *tess.Engine {
	t.Helper()
	e, err := tess.NewWithRuntime(f, tess.Config{Language: "eng"})
	if err != nil {
		t.Fatalf("NewWithRuntime: %v", err)
	}
	return e
}

// rgb builds a (h, w, 3) uint8 test image.
func rgb(t *testing.T, h, w int) *ndarray.Array {
	t.Helper()
	data := make([]byte, h*w*3)
	for i := range data {
		data[i] = byte(i)
	}
	arr, err := ndarray.FromBytes(data, []int{h, w, 3}, ndarray.Uint8)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	return arr
}

func TestNewFactoryFailureMakesNoDestroyCall(t *testing.T) {
	f := &fakeRuntime{failCreate: true, createMsg: "TessBaseAPICreate returned NULL"}

	_, err := tess.NewWithRuntime(f, tess.Config{Language: "eng"})
	require.ErrorIs(t, err, native.ErrHandleCreation)
	require.Contains(t, err.Error(), f.createMsg)
	require.Zero(t, f.calls.destroy, "no handle exists, nothing may be destroyed")
}

func TestNewInitFailureDeletesRawInstanceOnce(t *testing.T) {
	f := &fakeRuntime{failInit: true, initMsg: "TessBaseAPIInit3 failed"}

	_, err := tess.NewWithRuntime(f, tess.Config{Language: "xx"})
	require.ErrorIs(t, err, native.ErrHandleCreation)
	require.Contains(t, err.Error(), `"xx"`)
	// The uninitialized instance is cleaned up exactly once and the wrapper
	// never reaches the active state.
	require.Equal(t, 1, f.calls.destroy)
}

func TestNewRequiresLanguage(t *testing.T) {
	_, err := tess.NewWithRuntime(&fakeRuntime{}, tess.Config{})
	require.ErrorIs(t, err, native.ErrInvalidArgument)
}

func TestCloseIsIdempotent(t *testing.T) {
	f := &fakeRuntime{}
	e := newEngine(t, f)

	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
	require.Equal(t, 1, f.calls.destroy)
	require.Equal(t, native.StateClosed, e.State())
}

func TestOperationsAfterCloseNeverTouchNative(t *testing.T) {
	f := &fakeRuntime{}
	e := newEngine(t, f)
	require.NoError(t, e.Close())

	// The fake panics if a destroyed handle is dereferenced; each call must
	// fail on the liveness check first.
	if err := e.SetImage(rgb(t, 2, 2)); !errors.Is(err, native.ErrInactiveHandle) {
		t.Fatalf("SetImage after close: %v", err)
	}
	if err := e.Recognize(); !errors.Is(err, native.ErrInactiveHandle) {
		t.Fatalf("Recognize after close: %v", err)
	}
	if _, err := e.Text(); !errors.Is(err, native.ErrInactiveHandle) {
		t.Fatalf("Text after close: %v", err)
	}
	if _, err := e.Words(); !errors.Is(err, native.ErrInactiveHandle) {
		t.Fatalf("Words after close: %v", err)
	}
}

func TestSetImageValidation(t *testing.T) {
	f := &fakeRuntime{}
	e := newEngine(t, f)
	defer func() { _ = e.Close() }()

	gray, err := ndarray.Zeros([]int{4, 4}, ndarray.Uint8)
	require.NoError(t, err)
	err = e.SetImage(gray)
	require.ErrorIs(t, err, native.ErrInvalidArgument)

	floats, err := ndarray.Zeros([]int{4, 4, 3}, ndarray.Float32)
	require.NoError(t, err)
	err = e.SetImage(floats)
	require.ErrorIs(t, err, native.ErrInvalidArgument)

	require.Zero(t, f.calls.setImage, "invalid images must not reach native code")
}

func TestSetImageForwardsNativeGeometry(t *testing.T) {
	f := &fakeRuntime{}
	e := newEngine(t, f)
	defer func() { _ = e.Close() }()

	require.NoError(t, e.SetImage(rgb(t, 3, 5)))
	require.Equal(t, 5, f.lastImage.width)
	require.Equal(t, 3, f.lastImage.height)
	require.Equal(t, 3, f.lastImage.bpp)
	require.Equal(t, 15, f.lastImage.bpl)
}

func TestRecognizeAndText(t *testing.T) {
	f := &fakeRuntime{text: "The quick brown fox\n", meanConf: 91}
	e := newEngine(t, f)
	defer func() { _ = e.Close() }()

	require.NoError(t, e.SetImage(rgb(t, 4, 4)))
	require.NoError(t, e.Recognize())

	text, err := e.Text()
	require.NoError(t, err)
	require.Equal(t, "The quick brown fox", strings.TrimSpace(text))

	conf, err := e.MeanConfidence()
	require.NoError(t, err)
	require.Equal(t, 91, conf)
}

func TestWords(t *testing.T) {
	f := &fakeRuntime{spans: []tess.Span{
		{Text: "quick", Confidence: 96.5, Box: tess.Box{Left: 10, Top: 4, Width: 38, Height: 12}},
		{Text: "fox", Confidence: 88.2, Box: tess.Box{Left: 52, Top: 4, Width: 21, Height: 12}},
	}}
	e := newEngine(t, f)
	defer func() { _ = e.Close() }()

	words, err := e.Words()
	require.NoError(t, err)
	require.Len(t, words, 2)
	require.Equal(t, "quick", words[0].Text)
	require.Equal(t, 38, words[0].Box.Width)
}

func TestVariablesAppliedAtInit(t *testing.T) {
	f := &fakeRuntime{}
	e, err := tess.NewWithRuntime(f, tess.Config{
		Language:  "eng",
		Variables: map[string]string{"user_defined_dpi": "300"},
	})
	require.NoError(t, err)
	defer func() { _ = e.Close() }()

	require.Equal(t, "300", f.variables["user_defined_dpi"])
}

func TestThresholdedImageIsOwnedCopy(t *testing.T) {
	f := &fakeRuntime{}
	e := newEngine(t, f)

	arr, err := e.ThresholdedImage()
	require.NoError(t, err)
	require.Equal(t, []int{4, 4}, arr.Shape())
	require.Equal(t, ndarray.Uint8, arr.DType())
	require.False(t, arr.Borrowed())

	// The copy outlives the engine.
	require.NoError(t, e.Close())
	require.True(t, arr.Valid())
	vals, err := arr.Uint8s()
	require.NoError(t, err)
	require.Equal(t, byte(16), vals[1])
}

func TestPageSegModeRoundTrip(t *testing.T) {
	f := &fakeRuntime{}
	e := newEngine(t, f)
	defer func() { _ = e.Close() }()

	require.NoError(t, e.SetPageSegMode(tess.PSMSingleLine))
	mode, err := e.PageSegMode()
	require.NoError(t, err)
	require.Equal(t, tess.PSMSingleLine, mode)
}

func TestDetectOrientationScript(t *testing.T) {
	f := &fakeRuntime{}
	e := newEngine(t, f)
	defer func() { _ = e.Close() }()

	o, err := e.DetectOrientationScript()
	require.NoError(t, err)
	require.Equal(t, "Latin", o.Script)
}
