// Package cloud assembles the animated point cloud: sphere points, their
// staggered pulse timelines, the group grow-in, and the shared line-reveal
// scalar. The group owns every timeline and drives them all from the single
// clock sample passed into Advance.
package cloud

import (
	"github.com/lixenwraith/pulse-sphere/parameter"
	"github.com/lixenwraith/pulse-sphere/sphere"
	"github.com/lixenwraith/pulse-sphere/timeline"
	"github.com/lixenwraith/pulse-sphere/vmath"
)

// Point is one animated cloud point. Base is the fixed unit-sphere
// position; Scale is written by the point's pulse timeline each frame.
type Point struct {
	Base  vmath.Vec3
	Scale vmath.Vec3

	pulse *timeline.Timeline
}

// Group holds the full animated state read by the renderer.
type Group struct {
	points     []Point
	groupScale vmath.Vec3
	reveal     float64

	grow     *timeline.Timeline
	revealTL *timeline.Timeline
	sweeps   int
}

// NewGroup distributes the points and arms every timeline against the
// given clock sample.
func NewGroup(now float64) (*Group, error) {
	pts, err := sphere.Distribute(parameter.PointCount, false)
	if err != nil {
		return nil, err
	}

	g := &Group{points: make([]Point, len(pts))}
	for i, p := range pts {
		g.points[i] = Point{
			Base:  vmath.Vec3{X: p.X, Y: p.Y, Z: p.Z},
			Scale: vmath.Vec3{X: 1, Y: 1, Z: 1},
		}
	}

	// The whole cloud grows in from nothing with an elastic settle.
	g.grow, err = timeline.New(timeline.VecTarget(&g.groupScale)).
		Wait(parameter.GroupGrowDelayMS).
		To([]float64{1, 1, 1}, parameter.GroupGrowMS, timeline.OutElastic).
		Build()
	if err != nil {
		return nil, err
	}
	g.grow.Arm(now)

	// Connecting lines fade in once the grow-in has landed.
	g.revealTL, err = timeline.New(timeline.ScalarTarget(&g.reveal)).
		Wait(parameter.RevealDelayMS).
		To([]float64{1}, parameter.RevealMS, timeline.OutCubic).
		Build()
	if err != nil {
		return nil, err
	}
	g.revealTL.Arm(now)

	if err := g.armSweep(now, parameter.SweepDelayMS); err != nil {
		return nil, err
	}
	return g, nil
}

// armSweep builds and arms one pulse timeline per point. Each point waits
// delay plus its index-proportional stagger, swells past unit scale, then
// settles back with overshoot.
func (g *Group) armSweep(now, delay float64) error {
	for i := range g.points {
		pt := &g.points[i]
		tl, err := timeline.New(timeline.VecTarget(&pt.Scale)).
			Wait(delay + float64(i)*parameter.PulseStaggerMS).
			To(uniform(parameter.PulseScale), parameter.PulseUpMS, timeline.OutQuad).
			To(uniform(1), parameter.PulseDownMS, timeline.OutBack).
			Build()
		if err != nil {
			return err
		}
		tl.Arm(now)
		pt.pulse = tl
	}
	return nil
}

// Advance samples every live timeline at now. When the last pulse of a
// sweep finishes, the next sweep is armed after a rest gap and Advance
// reports true for that one frame so the host can voice the boundary.
func (g *Group) Advance(now float64) bool {
	g.grow.Evaluate(now)
	g.revealTL.Evaluate(now)

	allDone := true
	for i := range g.points {
		p := &g.points[i]
		p.pulse.Evaluate(now)
		if !p.pulse.Done() {
			allDone = false
		}
	}

	if allDone {
		g.sweeps++
		// Re-arming snapshots the settled scales, so the next sweep starts
		// from rest regardless of where the overshoot left off.
		if err := g.armSweep(now, parameter.SweepRestGapMS); err != nil {
			// Construction cannot fail here: the step shapes are identical
			// to the ones NewGroup validated.
			panic(err)
		}
		return true
	}
	return false
}

// Points returns the live point slice. Callers treat it as read-only.
func (g *Group) Points() []Point {
	return g.points
}

// GroupScale returns the cloud-wide scale vector.
func (g *Group) GroupScale() vmath.Vec3 {
	return g.groupScale
}

// Reveal returns line reveal progress clamped to [0,1] for display.
// The underlying scalar is left unclamped; only the read edge narrows it.
func (g *Group) Reveal() float64 {
	return vmath.Clamp(g.reveal, 0, 1)
}

// Sweeps returns how many full pulse sweeps have completed.
func (g *Group) Sweeps() int {
	return g.sweeps
}

func uniform(s float64) []float64 {
	return []float64{s, s, s}
}
