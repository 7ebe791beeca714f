package timeline

import (
	"math"
)

// EaseFunc maps linear progress t in [0,1] to shaped progress.
// Overshooting styles (back, elastic) return values outside [0,1];
// callers must not clamp the result.
type EaseFunc func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// InQuad starts slow, ends fast.
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad starts fast, ends slow.
func OutQuad(t float64) float64 {
	return 1.0 - (1.0-t)*(1.0-t)
}

// InCubic is a sharper InQuad.
func InCubic(t float64) float64 {
	return t * t * t
}

// OutCubic is a sharper OutQuad.
func OutCubic(t float64) float64 {
	u := 1.0 - t
	return 1.0 - u*u*u
}

// InOutCubic accelerates through the midpoint.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4.0 * t * t * t
	}
	u := -2.0*t + 2.0
	return 1.0 - u*u*u/2.0
}

// OutExpo decays exponentially toward 1.
func OutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1.0 - math.Pow(2.0, -10.0*t)
}

// OutBack overshoots the terminal value and settles back.
func OutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1.0
	u := t - 1.0
	return 1.0 + c3*u*u*u + c1*u*u
}

// OutElastic rings around the terminal value before settling.
func OutElastic(t float64) float64 {
	const c4 = 2.0 * math.Pi / 3.0
	if t <= 0.0 {
		return 0.0
	}
	if t >= 1.0 {
		return 1.0
	}
	return math.Pow(2.0, -10.0*t)*math.Sin((t*10.0-0.75)*c4) + 1.0
}
