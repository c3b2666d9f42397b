package phasor

import (
	"math"
	"strings"
	"testing"
)

func TestFormatRectangular(t *testing.T) {
	tests := []struct {
		name      string
		real      float64
		imag      float64
		precision int
		want      string
	}{
		{"positive imag", 4.330127, 2.5, 3, "4.330 + j2.500"},
		{"negative imag", 1.0, -2.0, 2, "1.00 - j2.00"},
		{"zero imag", 3.0, 0.0, 1, "3.0 + j0.0"},
		{"negative zero imag", 3.0, math.Copysign(0, -1), 3, "3.000 + j0.000"},
		{"negative real", -1.5, 0.25, 2, "-1.50 + j0.25"},
		{"zero precision", 4.6, -2.4, 0, "5 - j2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRectangular(tt.real, tt.imag, tt.precision)
			if got != tt.want {
				t.Errorf("FormatRectangular(%v, %v, %d) = %q, want %q",
					tt.real, tt.imag, tt.precision, got, tt.want)
			}
		})
	}
}

func TestFormatPolar(t *testing.T) {
	arrow, exp := FormatPolar(5.0, 30.0, 3, Degrees)

	if arrow != "5.000 ∠ 30.000°" {
		t.Errorf("arrow = %q", arrow)
	}
	if exp != "5.000 · e^(j·30.000°)" {
		t.Errorf("exponential = %q", exp)
	}

	// Radians carry no unit suffix.
	arrow, exp = FormatPolar(1.0, math.Pi, 2, Radians)
	if strings.Contains(arrow, "°") || strings.Contains(exp, "°") {
		t.Errorf("radian output must not carry a degree marker: %q, %q", arrow, exp)
	}
	if arrow != "1.00 ∠ 3.14" {
		t.Errorf("arrow = %q", arrow)
	}
}

func TestFormatDeterminism(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := FormatRectangular(1.2345, -6.789, 4); got != "1.2345 - j6.7890" {
			t.Fatalf("iteration %d: got %q", i, got)
		}
		a1, e1 := FormatPolar(2.5, 45.0, 2, Degrees)
		a2, e2 := FormatPolar(2.5, 45.0, 2, Degrees)
		if a1 != a2 || e1 != e2 {
			t.Fatalf("formatting is not deterministic: %q/%q vs %q/%q", a1, e1, a2, e2)
		}
	}
}

func TestFormatLabel(t *testing.T) {
	got := FormatLabel(5.0, 30.0, 3, Degrees)
	want := "|z| = 5.000, θ = 30.000°"
	if got != want {
		t.Errorf("FormatLabel = %q, want %q", got, want)
	}

	got = FormatLabel(1.0, 0.5236, 4, Radians)
	if strings.Contains(got, "°") {
		t.Errorf("radian label must not carry a degree marker: %q", got)
	}
}

func TestClampPrecision(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 0}, {0, 0}, {3, 3}, {6, 6}, {7, 6}, {100, 6},
	}
	for _, tt := range tests {
		if got := ClampPrecision(tt.in); got != tt.want {
			t.Errorf("ClampPrecision(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
