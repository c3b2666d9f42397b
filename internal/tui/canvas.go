package tui

import (
	"math"
	"strings"

	"phasor/internal/phasor"
)

// Canvas cell classes, used to pick a style when the rune grid is
// flattened to styled text.
var (
	axisRunes  = map[rune]bool{'─': true, '│': true, '┼': true}
	arrowHeads = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
)

// RenderCanvas rasterizes the vector diagram onto a character grid:
// centered axes, the phasor drawn from the origin, and a directional
// arrow head at the endpoint. Terminal cells are roughly twice as tall
// as wide, so callers should pass width ≈ 2×height for a square-looking
// viewport.
func RenderCanvas(spec phasor.PlotSpec, width, height int) string {
	if width < 5 {
		width = 5
	}
	if height < 5 {
		height = 5
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	midRow := height / 2
	midCol := width / 2
	for j := 0; j < width; j++ {
		grid[midRow][j] = '─'
	}
	for i := 0; i < height; i++ {
		grid[i][midCol] = '│'
	}
	grid[midRow][midCol] = '┼'

	// Endpoint in cell coordinates. The bound maps to the grid edges;
	// rows grow downward while the imaginary axis grows upward.
	col := midCol + int(math.Round(spec.X/spec.Bound*float64(midCol)))
	row := midRow - int(math.Round(spec.Y/spec.Bound*float64(midRow)))
	col = clampInt(col, 0, width-1)
	row = clampInt(row, 0, height-1)

	drawLine(grid, midRow, midCol, row, col)
	grid[row][col] = headRune(spec.X, spec.Y)

	var b strings.Builder
	for i, line := range grid {
		b.WriteString(styleRow(line))
		if i < len(grid)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// drawLine marks the cells between two grid points (Bresenham).
func drawLine(grid [][]rune, r0, c0, r1, c1 int) {
	dr := absInt(r1 - r0)
	dc := absInt(c1 - c0)
	stepR := 1
	if r0 > r1 {
		stepR = -1
	}
	stepC := 1
	if c0 > c1 {
		stepC = -1
	}
	err := dc - dr

	r, c := r0, c0
	for {
		if !(r == r0 && c == c0) {
			grid[r][c] = '•'
		}
		if r == r1 && c == c1 {
			break
		}
		e2 := 2 * err
		if e2 > -dr {
			err -= dr
			c += stepC
		}
		if e2 < dc {
			err += dc
			r += stepR
		}
	}
}

// headRune picks the arrow head for the vector's direction octant.
func headRune(x, y float64) rune {
	if x == 0 && y == 0 {
		return '•'
	}
	angle := math.Atan2(y, x)
	octant := int(math.Round(angle / (math.Pi / 4)))
	return arrowHeads[((octant%8)+8)%8]
}

// styleRow applies the axis/arrow styles to one rendered row.
func styleRow(line []rune) string {
	var b strings.Builder
	for _, r := range line {
		switch {
		case axisRunes[r]:
			b.WriteString(PlotAxisStyle.Render(string(r)))
		case r == ' ':
			b.WriteRune(r)
		default:
			b.WriteString(PlotArrowStyle.Render(string(r)))
		}
	}
	return b.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
