package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"phasor/internal/phasor"
)

// Field identifies the focused form control
type Field int

const (
	FieldFirst Field = iota
	FieldSecond
	FieldMode
	FieldUnit
	FieldPrecision
	FieldWrap
	FieldPlot

	fieldCount
)

// Config holds the initial form state, typically taken from the
// application configuration.
type Config struct {
	Mode    phasor.Mode
	Options phasor.Options
}

// DefaultConfig returns the form state used without configuration
func DefaultConfig() Config {
	return Config{
		Mode: phasor.PolarToRectangular,
		Options: phasor.Options{
			Precision: 3,
			Unit:      phasor.Degrees,
			WrapAngle: true,
			ShowPlot:  true,
		},
	}
}

// Model is the calculator TUI: a form host on top and the rendering
// surface below, recomputing the conversion on every change.
type Model struct {
	width  int
	height int
	ready  bool

	focus Field

	firstInput  textinput.Model
	secondInput textinput.Model

	mode phasor.Mode
	opts phasor.Options

	result phasor.Result
}

// NewModel creates the calculator model
func NewModel(cfg Config) Model {
	first := textinput.New()
	first.CharLimit = 32
	first.Width = 20
	first.Focus()

	second := textinput.New()
	second.CharLimit = 32
	second.Width = 20

	m := Model{
		focus:       FieldFirst,
		firstInput:  first,
		secondInput: second,
		mode:        cfg.Mode,
		opts:        cfg.Options,
	}
	m.resetInputs()
	m.recompute()
	return m
}

// resetInputs seeds the two fields with the customary example values
// for the current mode and unit.
func (m *Model) resetInputs() {
	if m.mode == phasor.PolarToRectangular {
		m.firstInput.Placeholder = "magnitude"
		m.secondInput.Placeholder = "angle"
		m.firstInput.SetValue("5.0")
		if m.opts.Unit == phasor.Degrees {
			m.secondInput.SetValue("30.0")
		} else {
			m.secondInput.SetValue(fmt.Sprintf("%g", 0.5235987755982988))
		}
	} else {
		m.firstInput.Placeholder = "real part"
		m.secondInput.Placeholder = "imaginary part"
		m.firstInput.SetValue("4.33")
		m.secondInput.SetValue("2.5")
	}
}

// recompute runs the conversion for the current form state. Cheap
// enough to run on every keystroke.
func (m *Model) recompute() {
	m.result = phasor.Convert(
		phasor.Request{Mode: m.mode, First: m.firstInput.Value(), Second: m.secondInput.Value()},
		m.opts,
	)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			if msg.String() == "tab" || msg.String() == "down" {
				m.focus = (m.focus + 1) % fieldCount
			} else {
				m.focus = (m.focus + fieldCount - 1) % fieldCount
			}
			m.syncFocus()
			return m, nil
		}

		switch m.focus {
		case FieldFirst:
			var cmd tea.Cmd
			m.firstInput, cmd = m.firstInput.Update(msg)
			m.recompute()
			return m, cmd
		case FieldSecond:
			var cmd tea.Cmd
			m.secondInput, cmd = m.secondInput.Update(msg)
			m.recompute()
			return m, cmd
		default:
			if handled := m.updateSelector(msg.String()); handled {
				m.recompute()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
	}

	return m, nil
}

// syncFocus moves textinput focus to match the focused field
func (m *Model) syncFocus() {
	m.firstInput.Blur()
	m.secondInput.Blur()
	switch m.focus {
	case FieldFirst:
		m.firstInput.Focus()
	case FieldSecond:
		m.secondInput.Focus()
	}
}

// updateSelector mutates the focused selector/toggle. Left/right cycle
// values, space/enter toggles booleans.
func (m *Model) updateSelector(key string) bool {
	switch m.focus {
	case FieldMode:
		if key == "left" || key == "right" || key == " " || key == "enter" {
			if m.mode == phasor.PolarToRectangular {
				m.mode = phasor.RectangularToPolar
			} else {
				m.mode = phasor.PolarToRectangular
			}
			m.resetInputs()
			return true
		}
	case FieldUnit:
		if key == "left" || key == "right" || key == " " || key == "enter" {
			if m.opts.Unit == phasor.Degrees {
				m.opts.Unit = phasor.Radians
			} else {
				m.opts.Unit = phasor.Degrees
			}
			return true
		}
	case FieldPrecision:
		switch key {
		case "left", "-":
			if m.opts.Precision > phasor.MinPrecision {
				m.opts.Precision--
				return true
			}
		case "right", "+":
			if m.opts.Precision < phasor.MaxPrecision {
				m.opts.Precision++
				return true
			}
		}
	case FieldWrap:
		if key == " " || key == "enter" || key == "left" || key == "right" {
			m.opts.WrapAngle = !m.opts.WrapAngle
			return true
		}
	case FieldPlot:
		if key == " " || key == "enter" || key == "left" || key == "right" {
			m.opts.ShowPlot = !m.opts.ShowPlot
			return true
		}
	}
	return false
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("⚡ Phasor Converter"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("rectangular (x + jy) ↔ polar/exponential (M∠θ / M·e^(jθ))"))
	b.WriteString("\n\n")

	b.WriteString(m.viewForm())
	b.WriteString("\n")
	b.WriteString(m.viewResult())
	b.WriteString("\n")
	b.WriteString(m.viewSummary())

	if m.opts.ShowPlot && m.result.Plot != nil {
		b.WriteString("\n")
		b.WriteString(m.viewPlot())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("tab: next field · ←/→: change value · space: toggle · esc: quit"))
	return b.String()
}

func (m Model) viewForm() string {
	firstLabel := "Magnitude (M ≥ 0)"
	secondLabel := "Angle θ"
	if m.mode == phasor.RectangularToPolar {
		firstLabel = "Real part x"
		secondLabel = "Imag part y"
	}

	rows := []string{
		m.formRow(FieldFirst, firstLabel, m.firstInput.View()),
		m.formRow(FieldSecond, secondLabel, m.secondInput.View()),
		m.formRow(FieldMode, "Mode", selectorText(m.mode.String())),
		m.formRow(FieldUnit, "Angle unit", selectorText(m.opts.Unit.String())),
		m.formRow(FieldPrecision, "Precision", selectorText(fmt.Sprintf("%d", m.opts.Precision))),
		m.formRow(FieldWrap, "Wrap angle", selectorText(checkbox(m.opts.WrapAngle))),
		m.formRow(FieldPlot, "Show plot", selectorText(checkbox(m.opts.ShowPlot))),
	}

	panel := PanelStyle
	if m.focus <= FieldSecond {
		panel = FocusedPanelStyle
	}
	return panel.Render(strings.Join(rows, "\n"))
}

func (m Model) formRow(field Field, label, value string) string {
	style := LabelStyle
	if m.focus == field {
		style = FocusedLabelStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		style.Width(20).Render(label),
		value,
	)
}

func selectorText(value string) string {
	return SelectorValueStyle.Render("‹ " + value + " ›")
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewResult() string {
	var lines []string

	for _, w := range m.result.Warnings {
		lines = append(lines, WarningStyle.Render("⚠ "+w))
	}

	lines = append(lines,
		ResultStyle.Render(m.result.RectText),
		ResultStyle.Render(m.result.ArrowText),
		ResultStyle.Render(m.result.ExpText),
	)

	return PanelStyle.Render(
		PanelTitleStyle.Render("Result") + "\n" + strings.Join(lines, "\n"),
	)
}

func (m Model) viewSummary() string {
	s := m.result.Summary
	rows := []string{
		summaryRow("real (x)", fmt.Sprintf("%g", s.Real)),
		summaryRow("imag (y)", fmt.Sprintf("%g", s.Imag)),
		summaryRow("magnitude (|z|)", fmt.Sprintf("%g", s.Magnitude)),
		summaryRow(fmt.Sprintf("angle (θ, %s)", m.result.Unit), fmt.Sprintf("%g", s.Angle)),
	}
	return PanelStyle.Render(
		PanelTitleStyle.Render("Numeric values") + "\n" + strings.Join(rows, "\n"),
	)
}

func summaryRow(key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		SummaryKeyStyle.Width(20).Render(key),
		SummaryValueStyle.Render(value),
	)
}

func (m Model) viewPlot() string {
	spec := *m.result.Plot

	height := 17
	if m.ready && m.height > 0 {
		if h := m.height - 24; h < height {
			height = h
		}
	}
	if height < 7 {
		height = 7
	}

	content := PlotLabelStyle.Render(spec.Label) + "\n" +
		RenderCanvas(spec, 2*height, height)
	return PanelStyle.Render(content)
}
