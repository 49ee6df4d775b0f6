// Package theme collects the Lip Gloss styles shared across the UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the reusable styles for menus, lists, forms and status
// lines.
type Styles struct {
	MenuKey      lipgloss.Style
	MenuLabel    lipgloss.Style
	MenuActive   lipgloss.Style
	PaneTitle    lipgloss.Style
	PaneBorder   lipgloss.Style
	ListItem     lipgloss.Style
	SelectedItem lipgloss.Style
	Required     lipgloss.Style
	Optional     lipgloss.Style
	Hint         lipgloss.Style
	Detail       lipgloss.Style
	Error        lipgloss.Style
	Info         lipgloss.Style
	Footer       lipgloss.Style
}

var defaultStyles = Styles{
	MenuKey:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
	MenuLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	MenuActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	PaneTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	PaneBorder:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	ListItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	SelectedItem: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Bold(true),
	Required:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	Optional:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	Hint:         lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	Detail:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	Info:         lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	Footer:       lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
}

// Default returns the built-in style set.
func Default() Styles {
	return defaultStyles
}
