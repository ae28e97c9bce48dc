package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Base     lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Field    lipgloss.Style
	Result   lipgloss.Style
	Unit     lipgloss.Style
	Selected lipgloss.Style
	Focused  lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
}

// themeOrder is the cycle order for ctrl+t.
var themeOrder = []string{"default", "dracula"}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Field:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
		Result:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Unit:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Focused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	},
	"dracula": {
		Name:     "Dracula",
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Field:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Result:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Unit:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Focused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")).Padding(0, 1),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
	},
}

// ThemeNames lists the theme keys in cycle order.
func ThemeNames() []string {
	return append([]string(nil), themeOrder...)
}

// ResolveTheme returns the named theme, falling back to the default.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// HasTheme reports whether name is a known theme key.
func HasTheme(name string) bool {
	_, ok := Themes[name]
	return ok
}
