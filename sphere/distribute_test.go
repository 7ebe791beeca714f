package sphere

import (
	"errors"
	"math"
	"testing"
)

func TestDistributeUnitLength(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"Minimum", 2},
		{"Small", 5},
		{"Configured", 89},
		{"Large", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := Distribute(tt.count, false)
			if err != nil {
				t.Fatalf("Distribute(%d) failed: %v", tt.count, err)
			}
			if len(pts) != tt.count-1 {
				t.Fatalf("Expected %d points, got %d", tt.count-1, len(pts))
			}
			for _, p := range pts {
				mag := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
				if math.Abs(mag-1.0) > 1e-6 {
					t.Errorf("Point %d magnitude %v, expected 1.0", p.Index, mag)
				}
			}
		})
	}
}

func TestDistributeIndices(t *testing.T) {
	pts, err := Distribute(89, false)
	if err != nil {
		t.Fatalf("Distribute failed: %v", err)
	}
	for i, p := range pts {
		if p.Index != i {
			t.Errorf("Point %d has index %d", i, p.Index)
		}
	}
}

func TestDistributeDeterminism(t *testing.T) {
	a, err := Distribute(89, false)
	if err != nil {
		t.Fatalf("First call failed: %v", err)
	}
	b, err := Distribute(89, false)
	if err != nil {
		t.Fatalf("Second call failed: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Point %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// The randomize flag currently applies the same fixed phase shift, so both
// paths must agree exactly.
func TestDistributeRandomizeFixedPhase(t *testing.T) {
	a, _ := Distribute(89, false)
	b, _ := Distribute(89, true)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Point %d differs with randomize: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDistributeInvalidCount(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"Zero", 0},
		{"One", 1},
		{"Negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, err := Distribute(tt.count, false)
			if !errors.Is(err, ErrInvalidCount) {
				t.Fatalf("Expected ErrInvalidCount, got %v", err)
			}
			if pts != nil {
				t.Errorf("Expected nil points on error, got %d", len(pts))
			}
		})
	}
}

// Successive points advance by one golden angle of azimuth; the line stage
// depends on this spiral adjacency. The single wrap pair, where the phase
// term folds back through count, is exempt.
func TestDistributeAdjacency(t *testing.T) {
	const count = 89
	pts, err := Distribute(count, false)
	if err != nil {
		t.Fatalf("Distribute failed: %v", err)
	}

	want := math.Mod(GoldenAngle, 2*math.Pi)
	for i := 0; i < len(pts)-1; i++ {
		// Slice index i is spiral index i+1; the pair's phase terms are
		// i+2 and i+3, so the fold hits the pair where i+3 reaches count.
		if i+3 >= count {
			continue
		}
		a := math.Atan2(pts[i].Z, pts[i].X)
		b := math.Atan2(pts[i+1].Z, pts[i+1].X)
		step := math.Mod(b-a+4*math.Pi, 2*math.Pi)
		if math.Abs(step-want) > 1e-9 {
			t.Errorf("Azimuth step %v at pair %d, expected %v", step, i, want)
		}
	}
}

// Pins the i=1, count=5 sample: y and r are increment-independent, x and z
// follow phi = ((1+1) mod 5) * GoldenAngle.
func TestDistributeConcrete(t *testing.T) {
	pts, err := Distribute(5, false)
	if err != nil {
		t.Fatalf("Distribute failed: %v", err)
	}

	p := pts[0]
	wantY := 1.0*0.4 - 1.0 + 0.2
	wantR := math.Sqrt(1.0 - wantY*wantY)
	phi := 2.0 * GoldenAngle
	wantX := math.Cos(phi) * wantR
	wantZ := math.Sin(phi) * wantR

	if math.Abs(p.Y-wantY) > 1e-4 {
		t.Errorf("Y = %v, expected %v", p.Y, wantY)
	}
	if math.Abs(wantR-0.9165) > 1e-4 {
		t.Errorf("r = %v, expected 0.9165", wantR)
	}
	if math.Abs(p.X-wantX) > 1e-4 {
		t.Errorf("X = %v, expected %v", p.X, wantX)
	}
	if math.Abs(p.Z-wantZ) > 1e-4 {
		t.Errorf("Z = %v, expected %v", p.Z, wantZ)
	}
}
