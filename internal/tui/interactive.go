// Package tui is an interactive terminal explorer for the equilibrium
// profiles: pick a parameter, nudge it, and watch the profile re-evaluate.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/bondiprof/internal/config"
	"github.com/san-kum/bondiprof/internal/profile"
	"github.com/san-kum/bondiprof/internal/units"
	"github.com/san-kum/bondiprof/internal/viz"
)

const exploreSamples = 400

var fields = []string{"rho", "temperature", "pressure", "entropy", "phi"}

// Model holds the working scenario and the rendered chart.
type Model struct {
	cfg      *config.Config
	params   []param
	selected int
	field    int

	prof    *profile.Profile
	derived derived
	errMsg  string
}

type param struct {
	name string
	get  func(*config.Config) float64
	set  func(*config.Config, float64)
}

type derived struct {
	bondiPc float64
	tvirK   float64
	invalid int
}

func newParams() []param {
	return []param{
		{"gamma", func(c *config.Config) float64 { return c.Gamma },
			func(c *config.Config, v float64) { c.Gamma = v }},
		{"epsilon_pc", func(c *config.Config) float64 { return c.EpsilonPc },
			func(c *config.Config, v float64) { c.EpsilonPc = v }},
		{"t_amb", func(c *config.Config) float64 { return c.TAmb },
			func(c *config.Config, v float64) { c.TAmb = v }},
		{"mbh_msun", func(c *config.Config) float64 { return c.MBHMsun },
			func(c *config.Config, v float64) { c.MBHMsun = v }},
		{"rho0_mp", func(c *config.Config) float64 { return c.Rho0Mp },
			func(c *config.Config, v float64) { c.Rho0Mp = v }},
	}
}

func NewModel(cfg *config.Config) Model {
	m := Model{cfg: cfg, params: newParams()}
	m.evaluate()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) evaluate() {
	m.errMsg = ""
	m.prof = nil

	c, err := m.cfg.NewClosure()
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	grid, err := profile.Logspace(
		m.cfg.Grid.RMinPc*units.Pc, m.cfg.Grid.RMaxPc*units.Pc, exploreSamples)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	prof, err := profile.Evaluate(c, grid)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	par := c.Params()
	m.prof = prof
	m.derived = derived{
		bondiPc: par.BondiRadius() / units.Pc,
		tvirK:   par.VirialTemperature(),
		invalid: prof.InvalidCount(),
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "j", "down", "tab":
		m.selected = (m.selected + 1) % len(m.params)
	case "k", "up":
		m.selected = (m.selected + len(m.params) - 1) % len(m.params)
	case "f":
		m.field = (m.field + 1) % len(fields)
	case "c":
		if m.cfg.Closure == "isothermal" {
			m.cfg.Closure = "polytropic"
			if m.cfg.EpsilonPc <= 0 {
				m.cfg.EpsilonPc = 10
			}
		} else {
			m.cfg.Closure = "isothermal"
		}
		m.evaluate()
	case "[":
		p := m.params[m.selected]
		p.set(m.cfg, p.get(m.cfg)*0.9)
		m.evaluate()
	case "]":
		p := m.params[m.selected]
		p.set(m.cfg, p.get(m.cfg)*1.1)
		m.evaluate()
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(viz.HeaderStyle.Render(
		fmt.Sprintf("bondiprof explorer — %s closure", m.cfg.Closure)) + "\n")

	if m.errMsg != "" {
		s.WriteString(viz.WarnStyle.Render("error: "+m.errMsg) + "\n")
	} else {
		name := fields[m.field]
		vals, _ := m.prof.Field(name)
		logY := name != "phi"
		s.WriteString(viz.Field(name, vals, logY, m.cfg.Grid.RMinPc, m.cfg.Grid.RMaxPc) + "\n")
	}

	for i, p := range m.params {
		line := fmt.Sprintf("%-12s %.4g", p.name, p.get(m.cfg))
		if i == m.selected {
			s.WriteString(viz.ActiveParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString(viz.LabelStyle.Render("  ") + viz.ValueStyle.Render(line) + "\n")
		}
	}

	if m.prof != nil {
		s.WriteString("\n")
		s.WriteString(viz.LabelStyle.Render("Bondi radius") +
			viz.ValueStyle.Render(fmt.Sprintf("%.4g pc", m.derived.bondiPc)) + "\n")
		s.WriteString(viz.LabelStyle.Render("T_vir(1 kpc)") +
			viz.ValueStyle.Render(fmt.Sprintf("%.4g K", m.derived.tvirK)) + "\n")
		if m.derived.invalid > 0 {
			s.WriteString(viz.WarnStyle.Render(
				fmt.Sprintf("%d invalid samples flagged", m.derived.invalid)) + "\n")
		}
	}

	s.WriteString(viz.HelpStyle.Render(
		"j/k select   [ ] adjust   f field   c closure   q quit"))
	return s.String()
}

// Run starts the explorer on the given scenario.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg))
	_, err := p.Run()
	return err
}
