package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	LabelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(18)
	ValueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ActiveParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	GraphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	WarnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	HelpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)
