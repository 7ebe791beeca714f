package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector
// The whole pipeline is float math; no fixed-point hot path exists here
type Vec3 struct {
	X, Y, Z float64
}

func Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul multiplies component-wise, used for per-axis scale vectors
func Mul(a, b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func Mag(v Vec3) float64 {
	return math.Sqrt(MagSq(v))
}

func Normalize(v Vec3) Vec3 {
	mag := Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	// One division, three multiplies
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// RotateY rotates v around the Y axis by angle radians
func RotateY(v Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateX rotates v around the X axis by angle radians
func RotateX(v Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// Lerp interpolates between a and b, t=0 returns a, t=1 returns b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
