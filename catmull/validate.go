package catmull

import (
	"fmt"
	"math"

	"github.com/npillmayer/bezline"
)

// Validate checks if knots and smoothing factor are sane, i.e., all
// coordinates are finite and the smoothing factor is finite and non-negative.
//
// PointsToPath does not call Validate and will happily produce garbage
// for insane input. Clients receiving points from untrusted sources
// should validate them first.
func Validate(points []bezline.Pair, smoothing float64) error {
	if math.IsNaN(smoothing) || math.IsInf(smoothing, 0) || smoothing < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidSmoothing, smoothing)
	}
	for i, z := range points {
		if !z.IsFinite() {
			return fmt.Errorf("%w at knot %d", ErrInvalidPoint, i)
		}
	}
	return nil
}
