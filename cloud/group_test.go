package cloud

import (
	"math"
	"testing"

	"github.com/lixenwraith/pulse-sphere/parameter"
)

func TestNewGroupShape(t *testing.T) {
	g, err := NewGroup(0)
	if err != nil {
		t.Fatalf("NewGroup failed: %v", err)
	}

	if len(g.Points()) != parameter.PointCount-1 {
		t.Fatalf("Expected %d points, got %d", parameter.PointCount-1, len(g.Points()))
	}
	for i, p := range g.Points() {
		mag := math.Sqrt(p.Base.X*p.Base.X + p.Base.Y*p.Base.Y + p.Base.Z*p.Base.Z)
		if math.Abs(mag-1.0) > 1e-6 {
			t.Errorf("Point %d base off the unit sphere: %v", i, mag)
		}
		if p.Scale.X != 1 || p.Scale.Y != 1 || p.Scale.Z != 1 {
			t.Errorf("Point %d initial scale %+v, expected unit", i, p.Scale)
		}
	}

	if gs := g.GroupScale(); gs.X != 0 || gs.Y != 0 || gs.Z != 0 {
		t.Errorf("Group scale before first Advance: %+v, expected zero", gs)
	}
	if g.Reveal() != 0 {
		t.Errorf("Reveal before first Advance: %v", g.Reveal())
	}
}

func TestGrowAndRevealSettle(t *testing.T) {
	g, err := NewGroup(0)
	if err != nil {
		t.Fatalf("NewGroup failed: %v", err)
	}

	g.Advance(1e6)

	if gs := g.GroupScale(); gs.X != 1 || gs.Y != 1 || gs.Z != 1 {
		t.Errorf("Group scale after settle: %+v, expected unit", gs)
	}
	if g.Reveal() != 1 {
		t.Errorf("Reveal after settle: %v, expected 1", g.Reveal())
	}
}

func TestSweepStagger(t *testing.T) {
	g, err := NewGroup(0)
	if err != nil {
		t.Fatalf("NewGroup failed: %v", err)
	}

	// First point is mid-pulse, last point's stagger has not elapsed.
	mid := parameter.SweepDelayMS + parameter.PulseUpMS/2
	g.Advance(mid)

	pts := g.Points()
	first := pts[0].Scale.X
	last := pts[len(pts)-1].Scale.X
	if first <= 1 {
		t.Errorf("First point should be swelling at t=%v, scale %v", mid, first)
	}
	if last != 1 {
		t.Errorf("Last point pulsed early at t=%v, scale %v", mid, last)
	}
}

func TestSweepBoundaryFiresOnce(t *testing.T) {
	g, err := NewGroup(0)
	if err != nil {
		t.Fatalf("NewGroup failed: %v", err)
	}

	sweepEnd := parameter.SweepDelayMS +
		float64(parameter.PointCount-2)*parameter.PulseStaggerMS +
		parameter.PulseUpMS + parameter.PulseDownMS

	if g.Advance(sweepEnd + 1) != true {
		t.Fatal("Expected sweep boundary at first sample past the end")
	}
	if g.Sweeps() != 1 {
		t.Fatalf("Sweeps = %d, expected 1", g.Sweeps())
	}

	// The next sweep is freshly armed; the boundary must not re-fire.
	if g.Advance(sweepEnd+2) != false {
		t.Error("Boundary fired twice")
	}

	// Drive the second sweep to completion.
	secondEnd := (sweepEnd + 1) + parameter.SweepRestGapMS +
		float64(parameter.PointCount-2)*parameter.PulseStaggerMS +
		parameter.PulseUpMS + parameter.PulseDownMS
	if g.Advance(secondEnd+1) != true {
		t.Error("Expected second sweep boundary")
	}
	if g.Sweeps() != 2 {
		t.Errorf("Sweeps = %d, expected 2", g.Sweeps())
	}
}

func TestScalesSettleBetweenSweeps(t *testing.T) {
	g, err := NewGroup(0)
	if err != nil {
		t.Fatalf("NewGroup failed: %v", err)
	}

	sweepEnd := parameter.SweepDelayMS +
		float64(parameter.PointCount-2)*parameter.PulseStaggerMS +
		parameter.PulseUpMS + parameter.PulseDownMS
	g.Advance(sweepEnd + 1)

	for i, p := range g.Points() {
		if p.Scale.X != 1 || p.Scale.Y != 1 || p.Scale.Z != 1 {
			t.Errorf("Point %d scale %+v after sweep, expected unit", i, p.Scale)
		}
	}
}

func TestRevealMidFade(t *testing.T) {
	g, err := NewGroup(0)
	if err != nil {
		t.Fatalf("NewGroup failed: %v", err)
	}

	g.Advance(parameter.RevealDelayMS + parameter.RevealMS/2)
	r := g.Reveal()
	if r <= 0 || r >= 1 {
		t.Errorf("Mid-fade reveal %v, expected strictly inside (0,1)", r)
	}
}
