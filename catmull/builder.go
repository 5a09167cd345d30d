package catmull

import "github.com/npillmayer/bezline"

// Nullpath creates an empty path, to be extended by subsequent builder
// calls:
//
//	path := Nullpath().Knot(P(0,0)).Knot(P(3,2)).Knot(P(5,2.5))
func Nullpath() *Path {
	return &Path{}
}

// FromPoints creates a path from a slice of knots. The slice is copied.
func FromPoints(points []bezline.Pair) *Path {
	path := &Path{points: make([]bezline.Pair, len(points))}
	copy(path.points, points)
	return path
}

// Knot appends a knot to a path. Part of builder functionality.
func (path *Path) Knot(p bezline.Pair) *Path {
	path.points = append(path.points, p)
	return path
}

// N returns the length of this path (knot count).
func (path *Path) N() int {
	return len(path.points)
}

// Z returns the knot at position i.
func (path *Path) Z(i int) bezline.Pair {
	return path.points[i]
}

// Knots returns a copy of the knots of path.
func (path *Path) Knots() []bezline.Pair {
	k := make([]bezline.Pair, len(path.points))
	copy(k, path.points)
	return k
}

// SVG returns the SVG path data of the smoothed path. See PointsToPath.
func (path *Path) SVG(smoothing float64) string {
	return PointsToPath(path.points, smoothing)
}

// FindControls calculates the control points of the smoothed path.
// See the package function FindControls.
func (path *Path) FindControls(smoothing float64) *Controls {
	return FindControls(path.points, smoothing)
}
