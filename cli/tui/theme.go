package tui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles used by the browser views.
type Theme struct {
	TitleStyle         lipgloss.Style
	BorderStyle        lipgloss.Style
	PreviewBorderStyle lipgloss.Style
	SelectedItemStyle  lipgloss.Style
	DirectoryStyle     lipgloss.Style
	FileStyle          lipgloss.Style
	PreviewStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	StatusBarStyle     lipgloss.Style
	CommandStyle       lipgloss.Style
	HelpStyle          lipgloss.Style
}

// DefaultTheme returns the standard color scheme.
func DefaultTheme() Theme {
	return Theme{
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		PreviewBorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		SelectedItemStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
		DirectoryStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		FileStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		PreviewStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		ErrorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		StatusBarStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		CommandStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")),
		HelpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
