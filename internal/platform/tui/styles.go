package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme bundles the lipgloss styles for one color mode.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	HUD      lipgloss.Style
	HUDValue lipgloss.Style
	Help     lipgloss.Style
	Flash    lipgloss.Style
	Overlay  lipgloss.Style
	ScoreRow lipgloss.Style
}

// NewTheme builds the dark or light theme.
func NewTheme(dark bool) Theme {
	if dark {
		return Theme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			HUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			HUDValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Flash:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			Overlay: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("14")).
				Padding(1, 3),
			ScoreRow: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		}
	}
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUD:      lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		HUDValue: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Flash:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(1, 3),
		ScoreRow: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	}
}

// tileStyle renders one tile cell. The tile's own color becomes the
// background; the foreground flips between black and white based on the
// background's lightness so the number stays readable.
func tileStyle(hex string, selected, underCursor bool) lipgloss.Style {
	fg := "0"
	if c, err := colorful.Hex(hex); err == nil {
		if _, _, l := c.Hsl(); l < 0.5 {
			fg = "15"
		}
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1)

	if selected {
		style = style.Reverse(true).Bold(true)
	}
	if underCursor {
		style = style.Underline(true).Bold(true)
	}
	return style
}
