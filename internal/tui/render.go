package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/unitconv/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const defaultWidth = 80

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m ConverterModel) columnWidth() int {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	w := (width - 10) / 2
	if width < config.CompactModeThreshold {
		w = width - 8
	}
	if w < config.MinColumnWidth {
		w = config.MinColumnWidth
	}
	return w
}

func (m ConverterModel) View() string {
	t := m.theme
	var b strings.Builder
	b.WriteString(t.Header.Render("Unit Converter - " + m.system.Category().String()))
	b.WriteString(t.Dim.Render("  v" + versionLabel()))
	b.WriteString("\n\n")

	if m.picker.open {
		b.WriteString(m.renderPicker())
	} else {
		b.WriteString(m.renderFields())
		b.WriteString("\n")
		b.WriteString(m.renderLists())
	}

	if m.status != "" {
		b.WriteString("\n" + t.Error.Render(m.status))
	}
	help := m.keys.HelpFor(m.focus)
	if m.picker.open {
		help = "[enter]select|[esc]close"
	}
	b.WriteString("\n" + t.Dim.Render(help))
	return t.Base.Render(b.String())
}

func (m ConverterModel) box(focused bool, w int) lipgloss.Style {
	style := m.theme.Field
	if focused {
		style = m.theme.Focused
	}
	return style.Width(w)
}

func (m ConverterModel) renderFields() string {
	t := m.theme
	w := m.columnWidth()
	from, _ := m.system.Unit(m.inputIdx)
	to, _ := m.system.Unit(m.outputIdx)

	left := lipgloss.JoinVertical(lipgloss.Left,
		t.Label.Render(truncateLabel("Value ("+from.Name+")", w)),
		m.box(m.focus == focusValue, w).Render(m.input.View()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		t.Label.Render(truncateLabel("Result ("+to.Name+")", w)),
		m.box(false, w).Render(t.Result.Render(m.output)),
	)
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m ConverterModel) renderLists() string {
	w := m.columnWidth()
	from := m.renderUnitList("From", m.inputIdx, m.focus == focusFrom, w)
	to := m.renderUnitList("To", m.outputIdx, m.focus == focusTo, w)
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return lipgloss.JoinVertical(lipgloss.Left, from, to)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, from, "  ", to)
}

func (m ConverterModel) renderUnitList(title string, selected int, focused bool, w int) string {
	t := m.theme
	names := m.system.Units()
	start := 0
	if selected >= config.MaxVisibleUnits {
		start = selected - config.MaxVisibleUnits + 1
	}
	end := start + config.MaxVisibleUnits
	if end > len(names) {
		end = len(names)
	}

	var lines []string
	header := t.Label.Render(title)
	if focused {
		header = t.Selected.Render(title)
	}
	lines = append(lines, header)
	if start > 0 {
		lines = append(lines, t.Dim.Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		label := truncateLabel(names[i], w-2)
		if i == selected {
			lines = append(lines, t.Selected.Render("> "+label))
			continue
		}
		lines = append(lines, t.Unit.Render("  "+label))
	}
	if end < len(names) {
		lines = append(lines, t.Dim.Render(fmt.Sprintf("  ↓ %d more", len(names)-end)))
	}
	return m.box(focused, w).Render(strings.Join(lines, "\n"))
}

func (m ConverterModel) renderPicker() string {
	t := m.theme
	lines := []string{t.Header.Render("Change unit")}
	for i, c := range m.categories {
		label := c.String()
		if i == m.picker.cursor {
			lines = append(lines, t.Selected.Render("> "+label))
			continue
		}
		lines = append(lines, t.Unit.Render("  "+label))
	}
	return m.box(true, m.columnWidth()).Render(strings.Join(lines, "\n"))
}
