package tess

// Span is one recognized unit (word or text line) from the result iterator,
// with its confidence and pixel bounding box.
type Span struct {
	Text       string
	Confidence float32
	Left       int
	Top        int
	Width      int
	Height     int
}

// Iterator levels, matching TessPageIteratorLevel.
const (
	LevelBlock    = 0
	LevelPara     = 1
	LevelTextLine = 2
	LevelWord     = 3
	LevelSymbol   = 4
)

// Orientation is the result of page orientation/script detection.
type Orientation struct {
	Degrees          int
	Confidence       float32
	Script           string
	ScriptConfidence float32
}
