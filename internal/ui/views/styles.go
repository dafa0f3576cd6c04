package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
	Scroll    lipgloss.Style
	Selected  lipgloss.Style
	Section   lipgloss.Style
	Name      lipgloss.Style
	TypeName  lipgloss.Style
	Detail    lipgloss.Style
	Doc       lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Prompt    lipgloss.Style
	Score     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Main:     lipgloss.NewStyle().Padding(1, 2),
		Scroll:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Name:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TypeName: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		Detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Doc:      lipgloss.NewStyle().Faint(true).Italic(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Score:    lipgloss.NewStyle().Faint(true),
	}
}

// kind label colors, keyed by the label shown next to each entry
var kindColors = map[string]string{
	"query":        "117", // blue
	"mutation":     "209", // orange
	"subscription": "141", // purple
	"field":        "117", // blue
	"type":         "213", // pink
	"interface":    "141", // purple
	"enum":         "221", // yellow
	"scalar":       "114", // green
	"union":        "209", // orange
	"input":        "183", // lavender
}

// KindStyle returns the style for a kind label
func KindStyle(kind string) lipgloss.Style {
	color, ok := kindColors[kind]
	if !ok {
		color = "247"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
