package server

import (
	"fmt"
	"strings"

	"phasor/internal/phasor"
)

// SVG rendering geometry (pixels).
const (
	svgSize = 480
	svgPad  = 36
)

// RenderSVG draws the vector diagram for a plot spec: square viewport
// centered on the origin, dashed grid, axes, the phasor arrow, and the
// annotation label. Output is deterministic for a given spec.
func RenderSVG(spec phasor.PlotSpec) string {
	scale := float64(svgSize/2-svgPad) / spec.Bound
	px := func(x float64) float64 { return svgSize/2 + x*scale }
	py := func(y float64) float64 { return svgSize/2 - y*scale }

	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		svgSize, svgSize, svgSize, svgSize)
	b.WriteString(`<defs><marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="8" markerHeight="8" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="#8B5CF6"/></marker></defs>`)

	fmt.Fprintf(&b, `<rect x="0" y="0" width="%d" height="%d" fill="#0F172A"/>`, svgSize, svgSize)

	// Dashed grid at quarter steps of the bound.
	for _, f := range []float64{-1, -0.5, 0.5, 1} {
		x := px(f * spec.Bound)
		y := py(f * spec.Bound)
		fmt.Fprintf(&b, `<line x1="%.2f" y1="%d" x2="%.2f" y2="%d" stroke="#334155" stroke-width="0.5" stroke-dasharray="4 4"/>`,
			x, svgPad, x, svgSize-svgPad)
		fmt.Fprintf(&b, `<line x1="%d" y1="%.2f" x2="%d" y2="%.2f" stroke="#334155" stroke-width="0.5" stroke-dasharray="4 4"/>`,
			svgPad, y, svgSize-svgPad, y)
	}

	// Axes.
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#94A3B8" stroke-width="1"/>`,
		svgPad, svgSize/2, svgSize-svgPad, svgSize/2)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#94A3B8" stroke-width="1"/>`,
		svgSize/2, svgPad, svgSize/2, svgSize-svgPad)
	fmt.Fprintf(&b, `<text x="%d" y="%d" fill="#94A3B8" font-size="12">Re</text>`,
		svgSize-svgPad+6, svgSize/2+4)
	fmt.Fprintf(&b, `<text x="%d" y="%d" fill="#94A3B8" font-size="12">Im (j)</text>`,
		svgSize/2+6, svgPad-8)

	// The phasor arrow.
	ex, ey := px(spec.X), py(spec.Y)
	fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%.2f" y2="%.2f" stroke="#8B5CF6" stroke-width="2" marker-end="url(#arrow)"/>`,
		svgSize/2, svgSize/2, ex, ey)
	fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="3" fill="#06B6D4"/>`, ex, ey)

	// Annotation label, offset from the endpoint and kept inside the
	// frame horizontally.
	lx := ex + 10
	if lx > svgSize-170 {
		lx = ex - 170
	}
	ly := ey - 10
	if ly < svgPad+12 {
		ly = ey + 20
	}
	fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="#F8FAFC" font-size="13">%s</text>`,
		lx, ly, escapeText(spec.Label))

	b.WriteString(`</svg>`)
	return b.String()
}

// escapeText escapes the few characters that matter inside SVG text
func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
