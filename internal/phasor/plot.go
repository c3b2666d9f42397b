package phasor

import "math"

// PlotSpec describes the vector diagram for a conversion result: the
// rectangular endpoint, a square viewport bound centered at the origin,
// and the annotation label. Rendering is left to the presentation
// surfaces.
type PlotSpec struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Bound float64 `json:"bound"`
	Label string  `json:"label"`
}

// NewPlotSpec builds the plot geometry for the endpoint (x, y). The
// viewport extends 1.2 × max(1, |x|, |y|) in every direction so the
// arrow never touches the frame and the zero vector still gets a
// sensible unit-sized viewport.
func NewPlotSpec(x, y float64, label string) PlotSpec {
	bound := math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
	return PlotSpec{
		X:     x,
		Y:     y,
		Bound: 1.2 * bound,
		Label: label,
	}
}
