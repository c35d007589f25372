package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the review screen
type Styles struct {
	Title    lipgloss.Style
	Progress lipgloss.Style
	Card     lipgloss.Style
	Heading  lipgloss.Style
	Label    lipgloss.Style
	Hint     lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Prompt   lipgloss.Style
}

// DefaultStyles returns the default styles
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Progress: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(1, 3),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Padding(0, 1),
		Prompt:  lipgloss.NewStyle().Padding(0, 1),
	}
}
