// Package render formats boards, game reports and stored games for the
// terminal. Output is plain text unless styling is requested.
package render

import "github.com/charmbracelet/lipgloss"

var colorStyles = map[string]lipgloss.Style{
	"red":    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"purple": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"white":  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	"orange": lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"brown":  lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
}

var terrainStyles = map[string]lipgloss.Style{
	"wood":   lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	"brick":  lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
	"wheat":  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	"sheep":  lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
	"ore":    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	"desert": lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// painter applies styles only when enabled, so the same layout code
// serves terminals and pipes.
type painter struct {
	styled bool
}

func (p painter) with(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p painter) color(name, text string) string {
	style, ok := colorStyles[name]
	if !ok {
		return text
	}
	return p.with(style, text)
}

func (p painter) terrain(name, text string) string {
	style, ok := terrainStyles[name]
	if !ok {
		return text
	}
	return p.with(style, text)
}

// ColorStyle returns the style for a player color. Unknown colors get a
// plain style.
func ColorStyle(color string) lipgloss.Style {
	if style, ok := colorStyles[color]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
