package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// pickerState is the category chooser opened with ctrl+o.
type pickerState struct {
	open   bool
	cursor int
}

func openPicker(m ConverterModel, _ string) (ConverterModel, tea.Cmd, bool) {
	m.picker = pickerState{open: true, cursor: m.categoryIdx}
	return m, nil, true
}

func (m ConverterModel) updatePicker(msg tea.KeyMsg) (ConverterModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "ctrl+o":
		m.picker.open = false
	case "up", "k":
		if m.picker.cursor > 0 {
			m.picker.cursor--
		}
	case "down", "j":
		if m.picker.cursor < len(m.categories)-1 {
			m.picker.cursor++
		}
	case "enter":
		m.picker.open = false
		m = m.switchCategory(m.picker.cursor)
	}
	return m, nil
}
