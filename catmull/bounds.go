package catmull

import (
	"github.com/npillmayer/bezline"
	"github.com/npillmayer/bezline/polygon"
)

// ControlPolygon returns the open polygon
//
//	z.0 -- post.0 -- pre.1 -- z.1 -- post.1 -- ... -- z.[n-1]
//
// of the smoothed path through points. Every cubic segment lies within the
// convex hull of its four control points, therefore the curve never leaves
// the bounding box of this polygon.
func ControlPolygon(points []bezline.Pair, smoothing float64) *polygon.Polygon {
	pg := polygon.NullPolygon()
	if len(points) == 0 {
		return pg.End()
	}
	pg.Knot(points[0])
	for i := 1; i < len(points); i++ {
		pg.Knot(postControl(points, i-1, smoothing)).
			Knot(preControl(points, i, smoothing)).
			Knot(points[i])
	}
	return pg.End()
}

// Bounds returns the corners of an axis-aligned rectangle enclosing the
// smoothed curve through points. ok is false for empty input.
// The rectangle is not necessarily the tightest one.
func Bounds(points []bezline.Pair, smoothing float64) (min, max bezline.Pair, ok bool) {
	return ControlPolygon(points, smoothing).BoundingBox()
}

// Visible is a predicate: may the smoothed curve through points be visible
// within viewport? The test is conservative, i.e., it may return true for a
// curve passing close to the viewport without entering it, but it will never
// return false for a curve entering it.
func Visible(points []bezline.Pair, smoothing float64, viewport *polygon.Polygon) bool {
	return ControlPolygon(points, smoothing).Overlaps(viewport)
}
