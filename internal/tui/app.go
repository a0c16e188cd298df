// Package tui is the interactive slider panel: adjust interventions and
// the horizon, watch the projected trajectories and metrics update.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/blanchemarion/biological-relativity/internal/engine"
	"github.com/blanchemarion/biological-relativity/internal/intervene"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const sliderWidth = 24

// horizonRow sits below the intervention sliders in the cursor order.
func horizonRow() int { return len(intervene.Definitions) }

type resultMsg struct {
	res *engine.Result
	err error
}

type model struct {
	eng     *engine.Engine
	vec     intervene.Vector
	horizon int
	cursor  int

	res     *engine.Result
	lastErr error
	pending bool

	width  int
	height int
}

// New builds the slider panel around an engine. The first recomputation
// runs from Init.
func New(eng *engine.Engine, horizon int) tea.Model {
	return model{
		eng:     eng,
		vec:     intervene.Vector{},
		horizon: engine.SnapHorizon(horizon),
		width:   80,
		height:  24,
	}
}

// Run drives the panel to completion.
func Run(eng *engine.Engine, horizon int) error {
	_, err := tea.NewProgram(New(eng, horizon), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return m.recompute() }

// recompute snapshots the current inputs and derives the bundle off the
// update loop. Superseded results come back as ErrStaleResult and are
// dropped.
func (m model) recompute() tea.Cmd {
	vec := make(intervene.Vector, len(m.vec))
	for k, v := range m.vec {
		vec[k] = v
	}
	horizon := m.horizon
	eng := m.eng
	return func() tea.Msg {
		res, err := eng.Recompute(vec, horizon)
		return resultMsg{res: res, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case resultMsg:
		m.pending = false
		if msg.err != nil {
			if !errors.Is(msg.err, engine.ErrStaleResult) {
				m.lastErr = msg.err
			}
			return m, nil
		}
		m.res = msg.res
		m.lastErr = nil
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < horizonRow() {
			m.cursor++
		}
	case "left", "h":
		return m.adjust(-1)
	case "right", "l":
		return m.adjust(+1)
	case "r":
		m.vec = intervene.Vector{}
		m.pending = true
		return m, m.recompute()
	}
	return m, nil
}

// adjust moves the selected slider by one step, or cycles the horizon.
func (m model) adjust(dir int) (tea.Model, tea.Cmd) {
	if m.cursor == horizonRow() {
		m.horizon = cycleHorizon(m.horizon, dir)
	} else {
		d := intervene.Definitions[m.cursor]
		next := m.vec[d.Kind] + float64(dir)*d.Step
		if next < d.Min {
			next = d.Min
		}
		if next > d.Max {
			next = d.Max
		}
		if next == 0 {
			delete(m.vec, d.Kind)
		} else {
			m.vec[d.Kind] = next
		}
	}
	m.pending = true
	return m, m.recompute()
}

func cycleHorizon(current, dir int) int {
	for i, h := range engine.Horizons {
		if h == current {
			next := (i + dir + len(engine.Horizons)) % len(engine.Horizons)
			return engine.Horizons[next]
		}
	}
	return engine.Horizons[0]
}

func (m model) View() string {
	var b strings.Builder

	profile := m.eng.Profile()
	b.WriteString("\n")
	b.WriteString(dimmer.Render("   ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("       " + cyan.Render("biological relativity") + "\n")
	b.WriteString(dimmer.Render("   ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")
	b.WriteString("   " + white.Render(profile.CaseLabel) + "  " +
		dim.Render(fmt.Sprintf("%s, %s, age %d", profile.Name, profile.Organ, profile.Age)) + "\n\n")

	for i, d := range intervene.Definitions {
		b.WriteString(m.sliderLine(i, d))
	}
	b.WriteString(m.horizonLine())

	b.WriteString("\n")
	if m.lastErr != nil {
		b.WriteString("   " + red.Render("error: "+m.lastErr.Error()) + "\n")
	} else if m.res != nil {
		b.WriteString(m.metricsPanel())
	} else {
		b.WriteString("   " + dim.Render("computing...") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("   ↑↓ select  ←→ adjust  r reset  q quit") + "\n")
	return b.String()
}

func (m model) sliderLine(i int, d intervene.Definition) string {
	val := m.vec[d.Kind]
	frac := (val - d.Min) / (d.Max - d.Min)
	filled := int(frac * sliderWidth)
	if filled < 0 {
		filled = 0
	}
	if filled > sliderWidth {
		filled = sliderWidth
	}

	bar := cyan.Render(strings.Repeat("━", filled)) +
		dimmer.Render(strings.Repeat("─", sliderWidth-filled))
	valStr := fmt.Sprintf("%6.1f %s", val, d.Unit)

	if i == m.cursor {
		return "   " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", d.Label)) +
			bar + " " + magenta.Render(valStr) + "\n"
	}
	return "     " + dim.Render(fmt.Sprintf("%-12s", d.Label)) + bar + " " + dim.Render(valStr) + "\n"
}

func (m model) horizonLine() string {
	label := fmt.Sprintf("%-12s", "horizon")
	val := fmt.Sprintf("%d months", m.horizon)
	if m.cursor == horizonRow() {
		return "\n   " + cyan.Render("▸ ") + white.Render(label) + magenta.Render(val) + "\n"
	}
	return "\n     " + dim.Render(label) + dim.Render(val) + "\n"
}

func (m model) metricsPanel() string {
	res := m.res
	var b strings.Builder

	status := green.Render("●")
	if m.pending {
		status = yellow.Render("○")
	}
	b.WriteString(fmt.Sprintf("   %s velocity %s  acceleration %s  uncertainty %s\n",
		status,
		white.Render(fmt.Sprintf("%.1f", res.InterventionMetrics.Velocity)),
		white.Render(fmt.Sprintf("%.1f", res.InterventionMetrics.Acceleration)),
		white.Render(fmt.Sprintf("%.1f", res.InterventionMetrics.Uncertainty))))

	b.WriteString(fmt.Sprintf("     vs status quo  %s  %s  %s\n",
		deltaStr(res.Delta.VelocityPct),
		deltaStr(res.Delta.AccelerationPct),
		deltaStr(res.Delta.UncertaintyPct)))

	b.WriteString(fmt.Sprintf("     time dilation %s   bio age gap %s\n",
		white.Render(fmt.Sprintf("%.0f%%", res.TimeDilation)),
		white.Render(fmt.Sprintf("%.1fy", res.BiologicalAgeDelta))))

	if res.Intervention.Len() > 1 {
		chart := asciigraph.Plot(res.Intervention.Radii,
			asciigraph.Height(4), asciigraph.Width(40),
			asciigraph.Caption("uncertainty radius"))
		for _, line := range strings.Split(chart, "\n") {
			b.WriteString("   " + dim.Render(line) + "\n")
		}
	}
	return b.String()
}

func deltaStr(pct float64) string {
	s := fmt.Sprintf("%+.1f%%", pct)
	if pct > 0 {
		return green.Render(s)
	}
	if pct < 0 {
		return red.Render(s)
	}
	return dim.Render(s)
}
