package termui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/caret/layout"
)

// Style controls the editor's rendering. Text is the base every highlight
// section inherits from.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Status      lipgloss.Style
	StatusError lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// sectionStyle layers a highlight section's style over base.
func sectionStyle(base lipgloss.Style, s layout.Style) lipgloss.Style {
	if s == (layout.Style{}) {
		return base
	}
	out := base
	if hex := s.ForegroundHex(); hex != "" {
		out = out.Foreground(lipgloss.Color(hex))
	}
	if s.Bold {
		out = out.Bold(true)
	}
	if s.Italic {
		out = out.Italic(true)
	}
	if s.Underline {
		out = out.Underline(true)
	}
	return out
}
