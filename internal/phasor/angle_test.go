package phasor

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		unit  AngleUnit
		want  float64
	}{
		{"in range stays", 30, Degrees, 30},
		{"270 wraps to -90", 270, Degrees, -90},
		{"360 wraps to 0", 360, Degrees, 0},
		{"540 wraps to 180", 540, Degrees, 180},
		{"-350 wraps to 10", -350, Degrees, 10},
		{"boundary 180 stays", 180, Degrees, 180},
		{"-180 maps to 180", -180, Degrees, 180},
		{"-190 wraps to 170", -190, Degrees, 170},
		{"1000 wraps", 1000, Degrees, -80},
		{"pi stays", math.Pi, Radians, math.Pi},
		{"3pi wraps to pi", 3 * math.Pi, Radians, math.Pi},
		{"-pi/2 stays", -math.Pi / 2, Radians, -math.Pi / 2},
		{"2pi wraps to 0", 2 * math.Pi, Radians, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.angle, tt.unit)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("Wrap(%v, %v) = %v, want %v", tt.angle, tt.unit, got, tt.want)
			}
		})
	}
}

func TestWrapRange(t *testing.T) {
	for _, unit := range []AngleUnit{Degrees, Radians} {
		half := unit.Period() / 2
		for a := -5 * unit.Period(); a <= 5*unit.Period(); a += unit.Period() / 7 {
			got := Wrap(a, unit)
			if got <= -half || got > half {
				t.Fatalf("Wrap(%v, %v) = %v, outside (-%v, %v]", a, unit, got, half, half)
			}
		}
	}
}

func TestWrapIdempotent(t *testing.T) {
	angles := []float64{0, 30, -30, 180, -180, 270, 719, -1000.5, 360000.25}
	for _, unit := range []AngleUnit{Degrees, Radians} {
		for _, a := range angles {
			once := Wrap(a, unit)
			twice := Wrap(once, unit)
			if once != twice {
				t.Errorf("Wrap not idempotent for %v %v: %v != %v", a, unit, once, twice)
			}
		}
	}
}
