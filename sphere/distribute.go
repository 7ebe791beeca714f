// Package sphere places points evenly on the unit sphere using a
// golden-angle (Fibonacci) spiral.
package sphere

import (
	"errors"
	"fmt"
	"math"
)

// GoldenAngle is the angular step between successive spiral points.
// The irrational ratio avoids the banding of latitude/longitude grids.
var GoldenAngle = math.Pi * (3.0 - math.Sqrt(5.0))

// ErrInvalidCount is returned for counts that cannot produce a usable cloud.
var ErrInvalidCount = errors.New("sphere: count must be at least 2")

// Point is a coordinate on the unit sphere.
// Index runs 0..len-1 in spiral order; successive indices are spatially
// adjacent, which the line renderer relies on.
type Point struct {
	X, Y, Z float64
	Index   int
}

// Distribute returns count-1 points in spiral order. The spiral is
// one-indexed with the pole sample skipped, so the output is one shorter
// than count; callers size their clouds accordingly.
//
// randomize is accepted for signature stability but the phase shift is
// currently the fixed constant 1 on both paths, so identical inputs always
// yield an identical sequence.
func Distribute(count int, randomize bool) ([]Point, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	const rnd = 1.0
	offset := 2.0 / float64(count)

	points := make([]Point, 0, count-1)
	for i := 1; i < count; i++ {
		y := float64(i)*offset - 1.0 + offset/2.0
		r := math.Sqrt(1.0 - y*y)
		phi := math.Mod(float64(i)+rnd, float64(count)) * GoldenAngle

		points = append(points, Point{
			X:     math.Cos(phi) * r,
			Y:     y,
			Z:     math.Sin(phi) * r,
			Index: i - 1,
		})
	}
	return points, nil
}
