// Package layout holds the pure point-layout formulas shared by both demos.
// Every layout maps an index into a field of n points to a coordinate in
// unit space, roughly [-1, 1] on each axis; Project turns unit space into
// screen space for whichever surface is drawing.
package layout

import "math"

// GoldenAngle is the phyllotaxis rotation per point, pi*(3 - sqrt 5).
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Point is a coordinate in unit space.
type Point struct {
	X float64
	Y float64
}

// Func maps point i of a field of n points to its unit-space coordinate.
type Func func(n, i int) Point

// Kind identifies one of the named layouts.
type Kind int

const (
	KindPhyllotaxis Kind = iota
	KindGrid
	KindWave
	KindSpiral

	NumKinds = 4
)

// ByKind returns the layout function for k.
func ByKind(k Kind) Func {
	switch k {
	case KindGrid:
		return Grid
	case KindWave:
		return Wave
	case KindSpiral:
		return Spiral
	default:
		return Phyllotaxis
	}
}

func (k Kind) String() string {
	switch k {
	case KindGrid:
		return "grid"
	case KindWave:
		return "wave"
	case KindSpiral:
		return "spiral"
	default:
		return "phyllotaxis"
	}
}

// Phyllotaxis arranges points like sunflower seeds: radius grows with the
// square root of the index while the angle advances by the golden angle.
// Point 0 sits exactly at the origin.
func Phyllotaxis(n, i int) Point {
	if n < 1 {
		n = 1
	}
	r := math.Sqrt(float64(i) / float64(n))
	a := float64(i) * GoldenAngle
	return Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// Grid fills a square of side round(sqrt n), normalized to [-0.8, 0.8].
// Indices past the last full row stay clamped to the bottom edge so a
// non-square n never escapes the square.
func Grid(n, i int) Point {
	side := int(math.Round(math.Sqrt(float64(n))))
	if side < 1 {
		side = 1
	}
	span := side - 1
	if span < 1 {
		span = 1
	}
	col := i % side
	row := i / side
	if row > span {
		row = span
	}
	return Point{
		X: -0.8 + 1.6*float64(col)/float64(span),
		Y: -0.8 + 1.6*float64(row)/float64(span),
	}
}

// Wave spaces points linearly across [-1, 1] under a three-period sine.
func Wave(n, i int) Point {
	x := -1 + 2*float64(i)/float64(denom(n))
	return Point{X: x, Y: 0.3 * math.Sin(3*math.Pi*x)}
}

// Spiral winds five turns outward, radius easing with sqrt so the points
// thin out toward the rim instead of bunching at the center.
func Spiral(n, i int) Point {
	t := math.Sqrt(float64(i) / float64(denom(n)))
	a := 10 * math.Pi * t
	return Point{X: t * math.Cos(a), Y: t * math.Sin(a)}
}

// denom clamps the n-1 divisor used by wave and spiral so a single-point
// field maps to the curve start instead of dividing by zero.
func denom(n int) int {
	if n <= 1 {
		return 1
	}
	return n - 1
}

// Project maps a unit-space point to screen coordinates: scale by half the
// smaller window dimension, translate to the window center.
func Project(width, height int, p Point) (float64, float64) {
	scale := float64(min(width, height)) / 2
	return float64(width)/2 + p.X*scale, float64(height)/2 + p.Y*scale
}
