package geometry

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func sampleAngles() []float64 {
	return []float64{0, math.Pi / 6, math.Pi / 2, -math.Pi / 3, math.Pi, 2.5, -7.1, 4 * math.Pi, 1e3}
}

func TestRotations_AreOrthonormal(t *testing.T) {
	builders := map[string]func(float64) Mat3{"RotX": RotX, "RotY": RotY, "RotZ": RotZ}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			for _, a := range sampleAngles() {
				r := build(a)
				if !r.Transpose().Mul(r).ApproxEqual(Identity3(), 1e-12) {
					t.Errorf("%s(%v): RᵀR != I", name, a)
				}
				if !r.Mul(r.Transpose()).ApproxEqual(Identity3(), 1e-12) {
					t.Errorf("%s(%v): RRᵀ != I", name, a)
				}
				if d := r.Det(); math.Abs(d-1) > 1e-12 {
					t.Errorf("%s(%v): det = %v, want 1", name, a, d)
				}
			}
		})
	}
}

func TestRotations_Periodic(t *testing.T) {
	for _, a := range sampleAngles() {
		if !RotX(a).ApproxEqual(RotX(a+2*math.Pi), 1e-9) {
			t.Errorf("RotX not 2π periodic at %v", a)
		}
		if !RotY(a).ApproxEqual(RotY(a-2*math.Pi), 1e-9) {
			t.Errorf("RotY not 2π periodic at %v", a)
		}
		if !RotZ(a).ApproxEqual(RotZ(a+4*math.Pi), 1e-9) {
			t.Errorf("RotZ not 2π periodic at %v", a)
		}
	}
}

func TestRotations_QuarterTurn(t *testing.T) {
	tests := []struct {
		name string
		rot  Mat3
		in   r3.Vector
		want r3.Vector
	}{
		{"X turns Y into Z", RotX(math.Pi / 2), r3.Vector{Y: 1}, r3.Vector{Z: 1}},
		{"Y turns Z into X", RotY(math.Pi / 2), r3.Vector{Z: 1}, r3.Vector{X: 1}},
		{"Z turns X into Y", RotZ(math.Pi / 2), r3.Vector{X: 1}, r3.Vector{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rot.MulVec(tt.in)
			if got.Sub(tt.want).Norm() > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotations_DoNotCommute(t *testing.T) {
	xy := RotX(0.4).Mul(RotY(0.9))
	yx := RotY(0.9).Mul(RotX(0.4))
	if xy.ApproxEqual(yx, 1e-6) {
		t.Fatal("RotX·RotY should differ from RotY·RotX")
	}
}

func TestMat3_Column(t *testing.T) {
	r := RotZ(math.Pi / 2)
	if got := r.Column(0); got.Sub(r3.Vector{Y: 1}).Norm() > 1e-12 {
		t.Errorf("x axis = %v, want (0,1,0)", got)
	}
	if !r.IsOrthonormal(1e-12) {
		t.Error("RotZ should be orthonormal")
	}
	scaled := r
	scaled[0][0] = 2
	if scaled.IsOrthonormal(1e-6) {
		t.Error("scaled matrix reported orthonormal")
	}
}
