// Package theme centralizes Lip Gloss styles for the dashboard.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the dashboard styles.
type Theme struct {
	Panel  PanelTheme
	Footer FooterTheme
	Stats  StatsTheme
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// FooterTheme styles the bottom status bar.
type FooterTheme struct {
	Status lipgloss.Style
	Toast  lipgloss.Style
}

// StatsTheme styles the completion bar and averages.
type StatsTheme struct {
	Done      lipgloss.Style
	Remaining lipgloss.Style
	EventDay  lipgloss.Style
	QuietDay  lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Toast:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Italic(true),
		},
		Stats: StatsTheme{
			Done:      lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
			Remaining: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			EventDay:  lipgloss.NewStyle().Bold(true),
			QuietDay:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
