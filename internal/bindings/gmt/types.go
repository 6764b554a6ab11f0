package gmt

// GridInfo mirrors the metadata fields of a native GMT_GRID header. Values
// are always read from the header itself, never recomputed from a size the
// caller supplied.
type GridInfo struct {
	Rows         int
	Cols         int
	Registration int
	WESN         [4]float64 // xmin, xmax, ymin, ymax
	Inc          [2]float64 // x, y increments
}

// Default session parameters, matching GMT_PAD_DEFAULT and the external
// session mode the C API expects from language bindings.
const (
	DefaultPad = 2
)
