package phasor

import (
	"fmt"
	"math"
)

// Precision bounds for display formatting (decimal places).
const (
	MinPrecision = 0
	MaxPrecision = 6
)

// ClampPrecision forces a precision into [MinPrecision, MaxPrecision].
func ClampPrecision(p int) int {
	if p < MinPrecision {
		return MinPrecision
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

// FormatRectangular renders "real ± j|imag|" at the given precision.
// The sign of the j term is factored out explicitly so a negative zero
// imaginary part never shows up as a spurious minus. All formatting uses
// fmt's %.*f, which rounds half to even.
func FormatRectangular(real, imag float64, precision int) string {
	sign := "+"
	if imag < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%.*f %s j%.*f", precision, real, sign, precision, math.Abs(imag))
}

// FormatPolar renders the arrow form "M ∠ θ" and the exponential form
// "M · e^(j·θ)". The angle carries the unit's display suffix.
func FormatPolar(magnitude, angle float64, precision int, unit AngleUnit) (arrow, exponential string) {
	theta := fmt.Sprintf("%.*f%s", precision, angle, unit.Suffix())
	arrow = fmt.Sprintf("%.*f ∠ %s", precision, magnitude, theta)
	exponential = fmt.Sprintf("%.*f · e^(j·%s)", precision, magnitude, theta)
	return arrow, exponential
}

// FormatLabel renders the plot annotation combining magnitude and the
// displayed angle.
func FormatLabel(magnitude, angle float64, precision int, unit AngleUnit) string {
	return fmt.Sprintf("|z| = %.*f, θ = %.*f%s", precision, magnitude, precision, angle, unit.Suffix())
}
