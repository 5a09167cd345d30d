package catmull

import "github.com/npillmayer/bezline"

// ControlPoint estimates a control point next to current. It lies on the
// line through current parallel to previous → next, at a distance of
// smoothing times the length of previous → next. It points in the direction
// of next, or the opposite direction if reverse is set.
//
// A nil previous or next is replaced by current.
func ControlPoint(current bezline.Pair, previous, next *bezline.Pair, reverse bool,
	smoothing float64) bezline.Pair {
	//
	p, n := current, current
	if previous != nil {
		p = *previous
	}
	if next != nil {
		n = *next
	}
	return controlPoint(current, p, n, reverse, smoothing)
}

func controlPoint(current, previous, next bezline.Pair, reverse bool, smoothing float64) bezline.Pair {
	o := bezline.Opposed(previous, next)
	if reverse {
		o = o.Reversed()
	}
	return current.Displaced(o.Angle, o.Length*smoothing)
}

// knotControl estimates a control point at knot i. Neighbours off either
// end of points are replaced by the knot itself.
func knotControl(points []bezline.Pair, i int, reverse bool, smoothing float64) bezline.Pair {
	z := points[i]
	prev, next := z, z
	if i > 0 {
		prev = points[i-1]
	}
	if i+1 < len(points) {
		next = points[i+1]
	}
	return controlPoint(z, prev, next, reverse, smoothing)
}

// postControl is the control point starting segment i → i+1.
func postControl(points []bezline.Pair, i int, smoothing float64) bezline.Pair {
	return knotControl(points, i, false, smoothing)
}

// preControl is the control point ending segment i-1 → i.
func preControl(points []bezline.Pair, i int, smoothing float64) bezline.Pair {
	return knotControl(points, i, true, smoothing)
}

// FindControls calculates the control points for every segment of the
// smoothed path through points. Control points are not rounded.
//
// For a path of n knots, PostControl(i) is defined for 0 ≤ i < n-1 and
// PreControl(i) for 0 < i < n. All others are unknown.
func FindControls(points []bezline.Pair, smoothing float64) *Controls {
	controls := &Controls{}
	n := len(points)
	if n < 2 {
		return controls
	}
	controls.prec = make([]bezline.Pair, n)
	controls.postc = make([]bezline.Pair, n)
	controls.prec[0] = bezline.NaP()
	controls.postc[n-1] = bezline.NaP()
	for i := 1; i < n; i++ {
		controls.postc[i-1] = postControl(points, i-1, smoothing)
		controls.prec[i] = preControl(points, i, smoothing)
		tracer().Debugf("controls for segment %d → %d: %v and %v", i-1, i,
			controls.postc[i-1], controls.prec[i])
	}
	return controls
}

// N returns the number of knots the controls have been calculated for.
func (ctrls *Controls) N() int {
	return len(ctrls.prec)
}

// PreControl returns the control point ending the segment into knot i.
func (ctrls *Controls) PreControl(i int) bezline.Pair {
	return getC(ctrls.prec, i, bezline.NaP())
}

// PostControl returns the control point starting the segment out of knot i.
func (ctrls *Controls) PostControl(i int) bezline.Pair {
	return getC(ctrls.postc, i, bezline.NaP())
}

// Get a value from an array/slice if present, default value deflt otherwise.
func getC(arr []bezline.Pair, i int, deflt bezline.Pair) bezline.Pair {
	if i < 0 || i >= len(arr) {
		return deflt
	}
	return arr[i]
}
