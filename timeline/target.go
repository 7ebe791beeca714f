package timeline

import (
	"github.com/lixenwraith/pulse-sphere/vmath"
)

// Target is the write surface a Timeline drives: an ordered set of numeric
// fields that can be read back (for the arm-time snapshot) and written on
// every evaluation. The host guarantees writes are visible to the next
// render.
type Target interface {
	Get() []float64
	Set([]float64)
}

type vecTarget struct {
	v *vmath.Vec3
}

// VecTarget adapts a Vec3 (scale, position) as a three-field Target.
func VecTarget(v *vmath.Vec3) Target {
	return vecTarget{v: v}
}

func (t vecTarget) Get() []float64 {
	return []float64{t.v.X, t.v.Y, t.v.Z}
}

func (t vecTarget) Set(f []float64) {
	t.v.X, t.v.Y, t.v.Z = f[0], f[1], f[2]
}

type scalarTarget struct {
	v *float64
}

// ScalarTarget adapts a single float (opacity, reveal progress) as a
// one-field Target.
func ScalarTarget(v *float64) Target {
	return scalarTarget{v: v}
}

func (t scalarTarget) Get() []float64 {
	return []float64{*t.v}
}

func (t scalarTarget) Set(f []float64) {
	*t.v = f[0]
}
