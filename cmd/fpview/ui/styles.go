// Package ui provides the shared terminal styling and panel rendering for
// fpview's one-shot and interactive surfaces.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles the renderer uses. The sign, exponent
// and mantissa styles carry distinct colors so the three bit fields can be
// told apart inside the full bit string.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Sign     lipgloss.Style
	Exponent lipgloss.Style
	Mantissa lipgloss.Style

	// Pending renders Incomplete outcomes: dimmed, never error-colored,
	// because the user is mid-token.
	Pending lipgloss.Style

	// Error renders Invalid outcomes.
	Error lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(9),
		Sign:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Exponent: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Mantissa: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		Pending:  lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	}
}
