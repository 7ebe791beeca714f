// Package render projects the cloud through the orbit camera into a
// terminal cell frame: reveal-faded connecting lines first, depth-sorted
// points over them.
package render

import (
	"math"
	"sort"

	"github.com/lixenwraith/pulse-sphere/cloud"
	"github.com/lixenwraith/pulse-sphere/parameter"
	"github.com/lixenwraith/pulse-sphere/vmath"
)

// Renderer draws a cloud.Group into a Frame through one Camera.
type Renderer struct {
	cam *Camera

	// scratch, reused across frames
	proj  []projected
	order []int
}

// NewRenderer creates a renderer around the given camera.
func NewRenderer(cam *Camera) *Renderer {
	return &Renderer{cam: cam}
}

// projected is one point in screen space.
type projected struct {
	x, y   float64
	depth  float64
	radius float64
	ok     bool
}

// Draw renders the group at cloud rotation rotY into f.
func (r *Renderer) Draw(f *Frame, g *cloud.Group, rotY float64) {
	f.Clear()

	w, h := f.Size()
	if w < 4 || h < 4 {
		return
	}
	scale := float64(h) * parameter.ViewScale

	pts := g.Points()
	gs := g.GroupScale()
	gsMean := (gs.X + gs.Y + gs.Z) / 3

	if len(r.proj) < len(pts) {
		r.proj = make([]projected, len(pts))
		r.order = make([]int, len(pts))
	}
	proj := r.proj[:len(pts)]

	for i := range pts {
		p := &pts[i]
		world := vmath.Mul(vmath.RotateY(p.Base, rotY), gs)
		view := r.cam.View(world)
		if view.Z < parameter.NearClip {
			proj[i] = projected{}
			continue
		}
		inv := parameter.FocalLength / view.Z
		sMean := (p.Scale.X + p.Scale.Y + p.Scale.Z) / 3
		proj[i] = projected{
			x:      float64(w)/2 + view.X*inv*scale*2, // 2x for terminal cell aspect 1:2
			y:      float64(h)/2 - view.Y*inv*scale,
			depth:  view.Z,
			radius: parameter.PointRadius * sMean * gsMean * inv * scale,
			ok:     true,
		}
	}

	r.drawLines(f, proj, g.Reveal())
	r.drawPoints(f, proj)
}

// depthDim maps camera-space depth to a brightness factor, near bright and
// far dim, anchored on the orbit radius.
func (r *Renderer) depthDim(depth float64) float64 {
	t := (depth - (r.cam.Dist - 1)) / 2
	return 1.0 - vmath.Clamp(t, 0, 1)*0.55
}

// drawLines connects point i to (i+1) mod N, the spiral adjacency the
// distributor guarantees. Intensity follows the shared reveal scalar.
func (r *Renderer) drawLines(f *Frame, proj []projected, reveal float64) {
	if reveal <= 0 {
		return
	}
	n := len(proj)
	for i := 0; i < n; i++ {
		a := proj[i]
		b := proj[(i+1)%n]
		if !a.ok || !b.ok {
			continue
		}

		ca := PointColor(float64(i) / float64(n))
		cb := PointColor(float64((i+1)%n) / float64(n))

		dx := b.x - a.x
		dy := b.y - a.y
		steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
		if steps < 1 {
			continue
		}
		for s := 1; s < steps; s++ {
			t := float64(s) / float64(steps)
			depth := vmath.Lerp(a.depth, b.depth, t)
			// Pull the segment color toward the line tint so lines read as
			// connective tissue, not as more points.
			c := Blend(Blend(ca, cb, t), lineTint, 0.6)
			c = c.Dim(reveal * r.depthDim(depth) * 0.8)
			f.Plot(int(a.x+dx*t), int(a.y+dy*t), '·', c)
		}
	}
}

// glyphFor picks a point glyph by projected radius.
func glyphFor(radius float64) rune {
	switch {
	case radius < 0.45:
		return '·'
	case radius < 0.9:
		return '•'
	default:
		return '●'
	}
}

// drawPoints plots far points first so near ones overwrite them.
func (r *Renderer) drawPoints(f *Frame, proj []projected) {
	n := len(proj)
	order := r.order[:n]
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return proj[order[a]].depth > proj[order[b]].depth
	})

	for _, i := range order {
		p := proj[i]
		if !p.ok || p.radius < 0.15 {
			continue
		}
		c := PointColor(float64(i) / float64(n))
		// A pulsing point brightens past its resting color.
		boost := vmath.Clamp(p.radius/0.9, 0.55, 1.35)
		c = Blend(c, RGB{R: 255, G: 255, B: 255}, vmath.Clamp(boost-1, 0, 0.35))
		c = c.Dim(r.depthDim(p.depth) * vmath.Clamp(boost, 0, 1))
		f.Plot(int(p.x), int(p.y), glyphFor(p.radius), c)
	}
}
