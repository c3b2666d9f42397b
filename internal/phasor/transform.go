package phasor

import "math"

// ToRectangular converts polar form (magnitude, angle in unit) to
// rectangular form. Total over all finite inputs.
func ToRectangular(magnitude, angle float64, unit AngleUnit) Rectangular {
	theta := unit.ToRadians(angle)
	return Rectangular{
		Real: magnitude * math.Cos(theta),
		Imag: magnitude * math.Sin(theta),
	}
}

// ToPolar converts rectangular form to polar form. The angle is produced
// in radians in (−π, π]; use Polar.In to convert for display. The zero
// vector yields magnitude 0, angle 0 (atan2 convention).
func ToPolar(real, imag float64) Polar {
	return Polar{
		Magnitude: math.Hypot(real, imag),
		Angle:     math.Atan2(imag, real),
		Unit:      Radians,
	}
}
