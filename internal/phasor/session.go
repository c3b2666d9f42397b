package phasor

import (
	"fmt"
	"math"
)

// Request carries the raw form inputs for one conversion. First and
// Second are opaque text fields whose meaning depends on the mode:
// magnitude and angle for PolarToRectangular, real and imaginary part
// for RectangularToPolar.
type Request struct {
	Mode   Mode   `json:"mode"`
	First  string `json:"first"`
	Second string `json:"second"`
}

// Options holds the display settings for one conversion. They affect
// formatting only, never the underlying numeric value.
type Options struct {
	Precision int       `json:"precision"`
	Unit      AngleUnit `json:"unit"`
	WrapAngle bool      `json:"wrap_angle"`
	ShowPlot  bool      `json:"show_plot"`
}

// normalize clamps the precision into the supported range. The form
// host owns a bounded slider, but the HTTP surface can send anything.
func (o Options) normalize() Options {
	o.Precision = ClampPrecision(o.Precision)
	return o
}

// Summary exposes the raw numeric values for the inspection view,
// rounded to precision+2 decimal places. Magnitude and angle are
// recomputed from the rectangular endpoint.
type Summary struct {
	Real      float64 `json:"real"`
	Imag      float64 `json:"imag"`
	Magnitude float64 `json:"magnitude"`
	Angle     float64 `json:"angle"`
}

// Result is the immutable outcome of one conversion. It holds both
// representations, the display-only wrapped angle, and all rendered
// strings, so the presentation surfaces can consume it independently
// and idempotently.
type Result struct {
	Mode Mode      `json:"mode"`
	Unit AngleUnit `json:"unit"`

	Rect Rectangular `json:"rect"`

	// Polar is the authoritative polar value: the user-supplied
	// magnitude and unwrapped angle in PolarToRectangular mode, the
	// computed value in RectangularToPolar mode. PolarWrapped differs
	// only when wrapping was requested. Any future feed-back path must
	// read Polar, never PolarWrapped.
	Polar        Polar `json:"polar"`
	PolarWrapped Polar `json:"polar_wrapped"`

	RectText  string `json:"rect_text"`
	ArrowText string `json:"arrow_text"`
	ExpText   string `json:"exp_text"`

	Warnings []string `json:"warnings,omitempty"`
	Summary  Summary  `json:"summary"`
	Plot     *PlotSpec `json:"plot,omitempty"`
}

// Convert runs one conversion. It is stateless and total: every
// combination of inputs produces a Result. Unparseable fields fall back
// to 0.0 with a recorded warning rather than failing, so the form is
// never blocked; a non-positive magnitude is likewise only advisory.
func Convert(req Request, opts Options) Result {
	opts = opts.normalize()

	switch req.Mode {
	case RectangularToPolar:
		return convertRectToPolar(req, opts)
	default:
		return convertPolarToRect(req, opts)
	}
}

func convertPolarToRect(req Request, opts Options) Result {
	var warnings []string

	mag, err := ParseField("magnitude", req.First)
	if err != nil {
		warnings = append(warnings, err.Error()+"; using 0")
	}
	ang, err := ParseField("angle", req.Second)
	if err != nil {
		warnings = append(warnings, err.Error()+"; using 0")
	}
	if mag <= 0 {
		warnings = append(warnings, fmt.Sprintf("magnitude should be positive, got %g", mag))
	}

	rect := ToRectangular(mag, ang, opts.Unit)

	// The user-supplied angle stays authoritative; wrapping only
	// affects what is displayed.
	dispAngle := ang
	if opts.WrapAngle {
		dispAngle = Wrap(ang, opts.Unit)
	}

	return finish(req.Mode, opts, rect,
		Polar{Magnitude: mag, Angle: ang, Unit: opts.Unit},
		Polar{Magnitude: mag, Angle: dispAngle, Unit: opts.Unit},
		warnings)
}

func convertRectToPolar(req Request, opts Options) Result {
	var warnings []string

	x, err := ParseField("real", req.First)
	if err != nil {
		warnings = append(warnings, err.Error()+"; using 0")
	}
	y, err := ParseField("imaginary", req.Second)
	if err != nil {
		warnings = append(warnings, err.Error()+"; using 0")
	}

	rect := Rectangular{Real: x, Imag: y}
	polar := ToPolar(x, y).In(opts.Unit)

	// Unlike the other direction, wrapping here applies to the actual
	// computed angle, since that angle is itself the result.
	wrapped := polar
	if opts.WrapAngle {
		wrapped.Angle = Wrap(polar.Angle, opts.Unit)
	}

	return finish(req.Mode, opts, rect, polar, wrapped, warnings)
}

// finish assembles the shared tail of both modes: rendered strings,
// numeric summary, and plot geometry.
func finish(mode Mode, opts Options, rect Rectangular, polar, wrapped Polar, warnings []string) Result {
	arrow, exp := FormatPolar(wrapped.Magnitude, wrapped.Angle, opts.Precision, opts.Unit)

	res := Result{
		Mode:         mode,
		Unit:         opts.Unit,
		Rect:         rect,
		Polar:        polar,
		PolarWrapped: wrapped,
		RectText:     FormatRectangular(rect.Real, rect.Imag, opts.Precision),
		ArrowText:    arrow,
		ExpText:      exp,
		Warnings:     warnings,
		Summary:      summarize(rect, opts),
	}

	if opts.ShowPlot {
		// The plot annotation always reflects the actual vector, so
		// magnitude and angle are recomputed from the endpoint.
		p := ToPolar(rect.Real, rect.Imag).In(opts.Unit)
		ang := p.Angle
		if opts.WrapAngle {
			ang = Wrap(ang, opts.Unit)
		}
		label := FormatLabel(p.Magnitude, ang, opts.Precision, opts.Unit)
		spec := NewPlotSpec(rect.Real, rect.Imag, label)
		res.Plot = &spec
	}

	return res
}

func summarize(rect Rectangular, opts Options) Summary {
	p := ToPolar(rect.Real, rect.Imag).In(opts.Unit)
	digits := opts.Precision + 2
	return Summary{
		Real:      roundTo(rect.Real, digits),
		Imag:      roundTo(rect.Imag, digits),
		Magnitude: roundTo(p.Magnitude, digits),
		Angle:     roundTo(p.Angle, digits),
	}
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
