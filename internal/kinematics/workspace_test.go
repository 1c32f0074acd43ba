package kinematics

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/philipparndt/go4dof/internal/dh"
)

func TestSampleWorkspace(t *testing.T) {
	table := dh.Reference()
	ws, err := SampleWorkspace(table, 8)
	if err != nil {
		t.Fatalf("SampleWorkspace() error = %v", err)
	}

	if ws.Samples != 8*8*8 {
		t.Errorf("Samples = %d, want %d", ws.Samples, 8*8*8)
	}
	if ws.MinReach != 250 || ws.MaxReach != 2650 {
		t.Errorf("envelope = [%v, %v], want [250, 2650]", ws.MinReach, ws.MaxReach)
	}

	// The grid includes the fully extended arm along +X and straight down.
	if !ws.Box.Contains(r3.Vector{X: 2650}, 1e-9) || !ws.Box.Contains(r3.Vector{Z: -2650}, 1e-9) {
		t.Errorf("box %+v misses the extended poses", ws.Box)
	}
	if math.Abs(ws.Box.MaxX-2650) > 1e-9 || math.Abs(ws.Box.MinZ+2650) > 1e-9 {
		t.Errorf("box extent %+v, want max x 2650 and min z -2650", ws.Box)
	}
	for _, v := range []float64{ws.Box.Width(), ws.Box.Height(), ws.Box.Depth()} {
		if v > 2*ws.MaxReach+1e-9 {
			t.Errorf("box dimension %v exceeds reach diameter", v)
		}
	}
}

func TestSampleWorkspace_Rejects(t *testing.T) {
	if _, err := SampleWorkspace(dh.Reference(), 1); err == nil {
		t.Error("expected error for a single step")
	}
	if _, err := SampleWorkspace(dh.New(0, 1, 1, 1), 4); !errors.Is(err, ErrDegenerate) {
		t.Errorf("error = %v, want ErrDegenerate", err)
	}
}

func TestWorkspace_Encloses(t *testing.T) {
	ws, err := SampleWorkspace(dh.Reference(), 8)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		p    r3.Vector
		want bool
	}{
		{"mid reach", r3.Vector{X: 1000, Y: -200, Z: -150}, true},
		{"fully extended", r3.Vector{X: 2650}, true},
		{"beyond reach", r3.Vector{X: 2000, Z: 2000}, false},
		{"inside min reach", r3.Vector{Z: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ws.Encloses(tt.p); got != tt.want {
				t.Errorf("Encloses(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if (Workspace{}).Encloses(r3.Vector{X: 1000}) {
		t.Error("empty workspace encloses a point")
	}
}
