package catmull

import (
	"errors"

	"github.com/npillmayer/bezline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// DefaultSmoothing is the smoothing factor used for freehand strokes.
const DefaultSmoothing = 0.2

var (
	// ErrInvalidPoint indicates a knot coordinate contains NaN/Inf.
	ErrInvalidPoint = errors.New("path has invalid knot coordinate")
	// ErrInvalidSmoothing indicates a negative or non-finite smoothing factor.
	ErrInvalidSmoothing = errors.New("smoothing factor must be finite and non-negative")
)

// Path is a sequence of knots, to be smoothed into cubic segments.
// To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	points []bezline.Pair // knot i
}

// Controls collects calculated spline control points.
type Controls struct {
	prec  []bezline.Pair // control point i-, ending segment i-1 → i
	postc []bezline.Pair // control point i+, starting segment i → i+1
}
