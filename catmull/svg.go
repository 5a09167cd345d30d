package catmull

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/bezline"
)

// PointsToPath converts a sequence of knots to a string of SVG path
// commands for a smooth curve through them. The string is made of a move-to
// to the first knot followed by one cubic curve command per further knot,
// separated by spaces:
//
//	M x0,y0 C x1,y1 x2,y2 x,y C ...
//
// The move-to's coordinates are formatted as given; all curve command
// coordinates are rounded to hundredths. Empty input yields an empty string.
//
// See WritePath for a version that writes to an io.Writer instead of
// returning a string.
func PointsToPath(points []bezline.Pair, smoothing float64) string {
	sb := &strings.Builder{}
	WritePath(sb, points, smoothing) // strings.Builder never fails
	return sb.String()
}

// WritePath converts a sequence of knots to a string of SVG path commands
// and writes it to w. The bytes written are the same as the string
// PointsToPath returns. Errors are those returned by w.
func WritePath(w io.Writer, points []bezline.Pair, smoothing float64) error {
	if len(points) == 0 {
		return nil
	}
	tracer().Debugf("smoothing path of %d knots, smoothing = %.4g", len(points), smoothing)
	var err error
	write := func(b []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(b)
	}
	buf := make([]byte, 0, 64)
	buf = append(buf, "M "...)
	buf = appendPlain(buf, points[0])
	write(buf)
	for i := 1; i < len(points) && err == nil; i++ {
		buf = appendCurve(buf[:0], postControl(points, i-1, smoothing),
			preControl(points, i, smoothing), points[i])
		write(buf)
	}
	return err
}

// appendCurve appends " C x1,y1 x2,y2 x,y", all rounded to hundredths.
func appendCurve(buf []byte, c1, c2, z bezline.Pair) []byte {
	buf = append(buf, " C "...)
	buf = appendRounded(buf, c1)
	buf = append(buf, ' ')
	buf = appendRounded(buf, c2)
	buf = append(buf, ' ')
	return appendRounded(buf, z)
}

func appendPlain(buf []byte, p bezline.Pair) []byte {
	buf = strconv.AppendFloat(buf, p.X(), 'f', -1, 64)
	buf = append(buf, ',')
	return strconv.AppendFloat(buf, p.Y(), 'f', -1, 64)
}

func appendRounded(buf []byte, p bezline.Pair) []byte {
	r := p.Rounded()
	buf = strconv.AppendFloat(buf, r.X(), 'f', 2, 64)
	buf = append(buf, ',')
	return strconv.AppendFloat(buf, r.Y(), 'f', 2, 64)
}

// AsString returns
// a path -- optionally including spline control point information -- as a
// (debugging) string, in MetaPost notation. The string contains newlines if
// control point information is present. Otherwise it will include the knot
// coordinates in one line.
//
//	(0,0) .. controls (2.0000,0.0000) and (8.0000,-2.0000)
//	  .. (10,0) .. controls (12.0000,2.0000) and (10.0000,8.0000)
//	  .. (10,10)
func AsString(path *Path, contr *Controls) string {
	var s string
	for i := 0; i < path.N(); i++ {
		pt := path.Z(i)
		if i > 0 {
			if contr != nil {
				s += fmt.Sprintf(" and %s\n  .. ", ptstring(contr.PreControl(i), true))
			} else {
				s += " .. "
			}
		}
		s += ptstring(pt, false)
		if contr != nil && i < path.N()-1 {
			s += fmt.Sprintf(" .. controls %s", ptstring(contr.PostControl(i), true))
		}
	}
	return s
}

func ptstring(p bezline.Pair, iscontrol bool) string {
	if p.IsNaP() {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
