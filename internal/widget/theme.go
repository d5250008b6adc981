package widget

import "github.com/charmbracelet/lipgloss"

// Theme is the widget's color palette
type Theme struct {
	Background  lipgloss.Color
	Foreground  lipgloss.Color
	Placeholder lipgloss.Color
	InputFill   lipgloss.Color
	Invalid     lipgloss.Color
}

// DefaultTheme is the dark palette of the original desktop widget
var DefaultTheme = Theme{
	Background:  lipgloss.Color("#2E2E2E"),
	Foreground:  lipgloss.Color("#FFFFFF"),
	Placeholder: lipgloss.Color("#A9A9A9"),
	InputFill:   lipgloss.Color("#4E4E4E"),
	Invalid:     lipgloss.Color("#E06C75"),
}

type styles struct {
	frame       lipgloss.Style
	title       lipgloss.Style
	close       lipgloss.Style
	clock       lipgloss.Style
	input       lipgloss.Style
	output      lipgloss.Style
	invalid     lipgloss.Style
	placeholder lipgloss.Style
}

func (t Theme) styles() styles {
	base := lipgloss.NewStyle().Background(t.Background).Foreground(t.Foreground)
	return styles{
		frame:       base.Width(frameWidth),
		title:       base.Foreground(t.Placeholder),
		close:       base.Bold(true),
		clock:       base.Bold(true).Width(frameWidth).Align(lipgloss.Center),
		input:       lipgloss.NewStyle().Background(t.InputFill).Foreground(t.Foreground),
		output:      base.Bold(true).PaddingLeft(1),
		invalid:     base.Foreground(t.Invalid).PaddingLeft(1),
		placeholder: lipgloss.NewStyle().Background(t.InputFill).Foreground(t.Placeholder),
	}
}
