package phasor

import "math"

// Wrap normalizes an angle into the canonical half-open interval
// (−180, 180] degrees or (−π, π] radians. math.Mod keeps the sign of the
// dividend, so its result lies in (−period, period) and a single shift
// lands it in range. Idempotent.
func Wrap(angle float64, unit AngleUnit) float64 {
	period := unit.Period()
	half := period / 2

	a := math.Mod(angle, period)
	if a <= -half {
		a += period
	} else if a > half {
		a -= period
	}
	return a
}
