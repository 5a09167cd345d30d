// Package catmull smoothes a sequence of knots into a path of cubic Bézier
// segments, estimating control points the Catmull-Rom way.
/*

The tangent at a knot z.i is approximated by the direction of the
"opposed line" from its predecessor z.[i-1] to its successor z.[i+1]. Both
control points adjacent to z.i lie on this tangent, at a distance of

   smoothing ⋅ |z.[i+1] - z.[i-1]|

from z.i: the post-control (starting the segment z.i → z.[i+1]) leans
towards z.[i+1], the pre-control (ending the segment z.[i-1] → z.i) leans
away from it. At the ends of a path the missing neighbour is replaced by the
knot itself, which shortens the opposed line to the single existing
neighbour. The method is explained in

   Smooth a Svg path with cubic bezier curves -- François Romain
   https://francoisromain.medium.com/smooth-a-svg-path-with-cubic-bezier-curves-e37b49d46c74

Usage

Clients usually have a slice of sample points, e.g. from a freehand stroke,
and want an SVG path-data string to draw it:

   d := catmull.PointsToPath(points, catmull.DefaultSmoothing)

resulting in something like

   M 0,0 C 2.00,0.00 8.00,-2.00 10.00,0.00 C 12.00,2.00 10.00,8.00 10.00,10.00

The move-to carries the first knot's coordinates as given, every curve
command is rounded to hundredths. Clients needing the control points
themselves call FindControls(...). Knots may also be collected with a
builder:

   path := catmull.Nullpath().Knot(P(0,0)).Knot(P(10,0)).Knot(P(10,10))
   d := path.SVG(0.2)

Smoothing factors between 0 and 1 are common; 0 yields segments with both
control points on their knots. Neither the smoothing factor nor the knots
are checked; call Validate(...) to do so. Paths are never closed.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package catmull
