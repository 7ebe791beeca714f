package render

import (
	"math"

	"github.com/lixenwraith/pulse-sphere/parameter"
	"github.com/lixenwraith/pulse-sphere/vmath"
)

// Camera is an orbit camera: yaw and pitch around the origin at a fixed
// distance. It owns no input handling; the host feeds it orbit/zoom deltas.
type Camera struct {
	Yaw   float64
	Pitch float64
	Dist  float64
}

// NewCamera returns a camera at the default orbit radius.
func NewCamera() *Camera {
	return &Camera{Dist: parameter.CameraDistance}
}

// pitchLimit keeps the camera short of the poles where the orbit basis
// degenerates.
const pitchLimit = math.Pi/2 - 0.05

// Orbit applies yaw/pitch deltas in radians.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = vmath.Clamp(c.Pitch+dPitch, -pitchLimit, pitchLimit)
}

// Zoom moves the orbit radius by d world units within the configured bounds.
func (c *Camera) Zoom(d float64) {
	c.Dist = vmath.Clamp(c.Dist+d, parameter.CameraDistanceMin, parameter.CameraDistanceMax)
}

// View transforms a world-space point into camera space: yaw, then pitch,
// then push out to the orbit distance along +Z.
func (c *Camera) View(v vmath.Vec3) vmath.Vec3 {
	v = vmath.RotateY(v, c.Yaw)
	v = vmath.RotateX(v, c.Pitch)
	v.Z += c.Dist
	return v
}
