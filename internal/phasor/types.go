package phasor

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// AngleUnit selects how angles are interpreted and displayed.
type AngleUnit int

const (
	Degrees AngleUnit = iota
	Radians
)

// String returns the string representation of the unit
func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	default:
		return "unknown"
	}
}

// Suffix returns the display marker appended to formatted angles.
// Degrees carry the degree sign, radians carry nothing.
func (u AngleUnit) Suffix() string {
	if u == Degrees {
		return "°"
	}
	return ""
}

// Period returns the full turn in this unit (360 or 2π).
func (u AngleUnit) Period() float64 {
	if u == Degrees {
		return 360
	}
	return 2 * math.Pi
}

// ToRadians converts an angle given in this unit to radians.
func (u AngleUnit) ToRadians(angle float64) float64 {
	if u == Degrees {
		return angle * math.Pi / 180
	}
	return angle
}

// FromRadians converts an angle in radians to this unit.
func (u AngleUnit) FromRadians(angle float64) float64 {
	if u == Degrees {
		return angle * 180 / math.Pi
	}
	return angle
}

// MarshalJSON encodes the unit as its name
func (u AngleUnit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON decodes a unit from its name
func (u *AngleUnit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAngleUnit(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseAngleUnit parses a unit name as used in config files and CLI flags.
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	default:
		return Degrees, fmt.Errorf("unknown angle unit %q", s)
	}
}

// Mode selects the conversion direction.
type Mode int

const (
	PolarToRectangular Mode = iota
	RectangularToPolar
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case PolarToRectangular:
		return "polar-to-rectangular"
	case RectangularToPolar:
		return "rectangular-to-polar"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the mode as its name
func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a mode from its name
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode parses a mode name as used in CLI flags and API payloads.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p2r", "polar", "polar-to-rectangular":
		return PolarToRectangular, nil
	case "r2p", "rect", "rectangular", "rectangular-to-polar":
		return RectangularToPolar, nil
	default:
		return PolarToRectangular, fmt.Errorf("unknown conversion mode %q", s)
	}
}

// Rectangular is a complex value in rectangular form, real + j·imag.
type Rectangular struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

// Polar is a complex value in polar form. Magnitude is expected to be
// non-negative; negative values are accepted and flagged by the session
// as a warning rather than clamped.
type Polar struct {
	Magnitude float64   `json:"magnitude"`
	Angle     float64   `json:"angle"`
	Unit      AngleUnit `json:"unit"`
}

// In returns the same polar value with the angle expressed in unit.
func (p Polar) In(unit AngleUnit) Polar {
	if p.Unit == unit {
		return p
	}
	return Polar{
		Magnitude: p.Magnitude,
		Angle:     unit.FromRadians(p.Unit.ToRadians(p.Angle)),
		Unit:      unit,
	}
}
