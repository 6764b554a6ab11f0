//go:build !cgo || windows

package tess

import (
	"unsafe"

	"github.com/nativekit/nativekit-go/pkg/native"
)

// Stub implementations for non-cgo builds or Windows.

func Create() (unsafe.Pointer, native.Status) { return nil, native.NotBuilt }

func Init(unsafe.Pointer, string, string) native.Status { return native.NotBuilt }

func Destroy(unsafe.Pointer) {}

func SetImage(unsafe.Pointer, []byte, int, int, int, int) {}

func SetRectangle(unsafe.Pointer, int, int, int, int) {}

func Recognize(unsafe.Pointer) native.Status { return native.NotBuilt }

func UTF8Text(unsafe.Pointer) string { return "" }

func HOCRText(unsafe.Pointer, int) string { return "" }

func TSVText(unsafe.Pointer, int) string { return "" }

func BoxText(unsafe.Pointer, int) string { return "" }

func UNLVText(unsafe.Pointer) string { return "" }

func MeanConfidence(unsafe.Pointer) int { return 0 }

func Spans(unsafe.Pointer, int) []Span { return nil }

func SetVariable(unsafe.Pointer, string, string) bool { return false }

func IntVariable(unsafe.Pointer, string) (int, bool) { return 0, false }

func BoolVariable(unsafe.Pointer, string) (bool, bool) { return false, false }

func FloatVariable(unsafe.Pointer, string) (float64, bool) { return 0, false }

func StringVariable(unsafe.Pointer, string) (string, bool) { return "", false }

func SetPageSegMode(unsafe.Pointer, int) {}

func PageSegMode(unsafe.Pointer) int { return 0 }

func DetectOrientationScript(unsafe.Pointer) (Orientation, bool) { return Orientation{}, false }

func ThresholdedImage(unsafe.Pointer) ([]byte, int, int) { return nil, 0, 0 }

func Clear(unsafe.Pointer) {}

func ClearAdaptiveClassifier(unsafe.Pointer) {}

func Datapath(unsafe.Pointer) string { return "" }

func InitLanguages(unsafe.Pointer) string { return "" }

func Version() string { return "" }
