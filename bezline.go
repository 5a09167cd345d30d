/*
Package bezline implements points and the few geometric primitives needed
to smooth a polyline into a sequence of cubic Bézier segments.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezline

import (
	"fmt"
	"math"
	"math/cmplx"
)

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Round2 rounds n to hundredths, half away from zero.
func Round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// === Pair Data Type ========================================================

// Pair is a 2D-point. It is a value type and may be copied freely.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// NaP is "not a pair". It marks unknown pairs, e.g. undefined control points.
func NaP() Pair {
	return Pair(cmplx.NaN())
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// IsNaP is a predicate: is either part of p NaN?
func (p Pair) IsNaP() bool {
	return cmplx.IsNaN(p.C())
}

// IsFinite is a predicate: are both parts of p neither NaN nor infinite?
func (p Pair) IsFinite() bool {
	x, y := p.F()
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// Equal compares two pairs, up to Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Rounded returns a new pair with both parts rounded to hundredths.
func (p Pair) Rounded() Pair {
	return P(Round2(p.X()), Round2(p.Y()))
}

// Displaced returns p moved by length in direction theta (radians).
func (p Pair) Displaced(theta, length float64) Pair {
	return P(p.X()+math.Cos(theta)*length, p.Y()+math.Sin(theta)*length)
}

// === Opposed Lines =========================================================

// OpposedLine is the line from one point to another, given as length and
// direction. Direction is in radians, in the range (-π,π].
type OpposedLine struct {
	Length float64
	Angle  float64
}

// Opposed computes the line from a to b. For a = b the line has length 0
// and angle 0.
func Opposed(a, b Pair) OpposedLine {
	dx := b.X() - a.X()
	dy := b.Y() - a.Y()
	return OpposedLine{
		Length: math.Sqrt(dx*dx + dy*dy),
		Angle:  math.Atan2(dy, dx),
	}
}

// Reversed returns the line pointing the opposite way.
func (ol OpposedLine) Reversed() OpposedLine {
	return OpposedLine{Length: ol.Length, Angle: ol.Angle + math.Pi}
}

// Debug Stringer for an opposed line.
func (ol OpposedLine) String() string {
	return fmt.Sprintf("<%g∠%g>", ol.Length, ol.Angle)
}
