package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Cursor    lipgloss.Style
	Selected  lipgloss.Style
	Checkbox  lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Filter    lipgloss.Style
	Mode      lipgloss.Style
	Help      lipgloss.Style
	CursorRow lipgloss.Style
}

// NewStyles creates a new Styles instance. selectedColor is the configured
// background for selected rows (the host's "selected class").
func NewStyles(selectedColor string) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color(selectedColor)),
		Checkbox: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Filter:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Mode:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Help:      lipgloss.NewStyle().Faint(true),
		CursorRow: lipgloss.NewStyle().Bold(true),
	}
}
