package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Focused  lipgloss.Style
	Result   lipgloss.Style
	Error    lipgloss.Style
	Toast    lipgloss.Style
}

func DefaultTheme() Theme {
	card := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card:     card,
		Focused:  card.BorderForeground(lipgloss.Color("63")),
		Result:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Toast:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
