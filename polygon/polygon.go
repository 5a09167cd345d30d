// Package polygon deals with polygons of knots, open or closed.
//
// Polygons are thin wrappers around contours of package polyclip. They are
// used to reason about the area a curve may occupy: a Bézier segment always
// lies within the convex hull of its control polygon, hence within that
// polygon's bounding box.
package polygon

import (
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/bezline"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the graphics tracer.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is a sequence of knots. A cyclic polygon's last knot connects
// back to its first one.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Box creates a closed rectangular polygon from two opposite corners.
func Box(a, b bezline.Pair) *Polygon {
	minx, maxx := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	miny, maxy := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return NullPolygon().
		Knot(bezline.P(minx, miny)).Knot(bezline.P(maxx, miny)).
		Knot(bezline.P(maxx, maxy)).Knot(bezline.P(minx, maxy)).
		Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p bezline.Pair) *Polygon {
	pg.contour.Add(toPolyclip(p))
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves the polygon open. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Z returns the knot at position (i mod N).
func (pg *Polygon) Z(i int) bezline.Pair {
	if i < 0 || i >= pg.N() {
		i = i % pg.N()
		if i < 0 {
			i += pg.N()
		}
	}
	return fromPolyclip(pg.contour[i])
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-aligned rectangle enclosing all knots. ok is false for an empty
// polygon.
func (pg *Polygon) BoundingBox() (min, max bezline.Pair, ok bool) {
	if pg.N() == 0 {
		return bezline.NaP(), bezline.NaP(), false
	}
	bb := pg.contour.BoundingBox()
	return fromPolyclip(bb.Min), fromPolyclip(bb.Max), true
}

// Contains is a predicate: is p inside the area enclosed by the polygon?
// Open polygons are treated as if they were closed.
func (pg *Polygon) Contains(p bezline.Pair) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour.Contains(toPolyclip(p))
}

// Overlaps is a predicate: do the bounding boxes of pg and other overlap?
// Touching boxes count as overlapping.
func (pg *Polygon) Overlaps(other *Polygon) bool {
	if pg.N() == 0 || other == nil || other.N() == 0 {
		return false
	}
	bb1 := pg.contour.BoundingBox()
	bb2 := other.contour.BoundingBox()
	L().Debugf("overlap test of %v and %v", bb1, bb2)
	return bb1.Overlaps(bb2)
}

// AsString returns a polygon as a (debugging) string, in MetaPost notation.
func AsString(pg *Polygon) string {
	var s string
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			s += " -- "
		}
		s += pg.Z(i).String()
	}
	if pg.IsCycle() {
		s += " -- cycle"
	}
	return s
}

func (pg *Polygon) String() string {
	return fmt.Sprintf("polygon{%s}", AsString(pg))
}

func toPolyclip(p bezline.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func fromPolyclip(p polyclip.Point) bezline.Pair {
	return bezline.P(p.X, p.Y)
}
