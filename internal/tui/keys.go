package tui

import (
	"github.com/akyairhashvil/unitconv/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "ctrl+c", Handler: quit, Priority: 100})
	r.Register(KeyBinding{Key: "esc", Handler: quit, Description: "quit", Priority: 100})
	r.Register(KeyBinding{Key: "tab", Handler: focusStep(1), Description: "focus", Priority: 50})
	r.Register(KeyBinding{Key: "shift+tab", Handler: focusStep(-1), Priority: 50})
	r.Register(KeyBinding{Key: "ctrl+o", Handler: openPicker, Description: "category", Priority: 40})
	r.Register(KeyBinding{Key: "ctrl+n", Handler: categoryStep(1), Description: "next", Priority: 40})
	r.Register(KeyBinding{Key: "ctrl+p", Handler: categoryStep(-1), Description: "prev", Priority: 40})
	r.Register(KeyBinding{Key: "ctrl+s", Handler: swapUnits, Description: "swap", Priority: 30})
	r.Register(KeyBinding{Key: "ctrl+t", Handler: nextTheme, Description: "theme", Priority: 30})

	lists := []focusArea{focusFrom, focusTo}
	for _, k := range []string{"up", "k"} {
		r.Register(KeyBinding{Key: k, Handler: selectStep(-1), Focus: lists, Priority: 20})
	}
	for _, k := range []string{"down", "j"} {
		r.Register(KeyBinding{Key: k, Handler: selectStep(1), Focus: lists, Priority: 20})
	}
	r.Register(KeyBinding{Key: "home", Handler: selectEdge(false), Focus: lists, Priority: 20})
	r.Register(KeyBinding{Key: "end", Handler: selectEdge(true), Focus: lists, Priority: 20})
	return r
}

func quit(m ConverterModel, _ string) (ConverterModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func focusStep(delta int) KeyHandler {
	return func(m ConverterModel, _ string) (ConverterModel, tea.Cmd, bool) {
		next, cmd := m.setFocus(focusArea(util.Wrap(int(m.focus), delta, focusCount)))
		return next, cmd, true
	}
}

func categoryStep(delta int) KeyHandler {
	return func(m ConverterModel, _ string) (ConverterModel, tea.Cmd, bool) {
		if len(m.categories) == 0 {
			return m, nil, true
		}
		idx := util.Wrap(m.categoryIdx, delta, len(m.categories))
		return m.switchCategory(idx), nil, true
	}
}

func swapUnits(m ConverterModel, _ string) (ConverterModel, tea.Cmd, bool) {
	m.inputIdx, m.outputIdx = m.outputIdx, m.inputIdx
	return m.recalc(), nil, true
}

func nextTheme(m ConverterModel, _ string) (ConverterModel, tea.Cmd, bool) {
	names := ThemeNames()
	cur := 0
	for i, n := range names {
		if n == m.themeName {
			cur = i
			break
		}
	}
	m.themeName = names[util.Wrap(cur, 1, len(names))]
	m.theme = ResolveTheme(m.themeName)
	return m, nil, true
}

func selectStep(delta int) KeyHandler {
	return func(m ConverterModel, _ string) (ConverterModel, tea.Cmd, bool) {
		last := m.system.Len() - 1
		if m.focus == focusFrom {
			m.inputIdx = util.Clamp(m.inputIdx+delta, 0, last)
		} else {
			m.outputIdx = util.Clamp(m.outputIdx+delta, 0, last)
		}
		return m.recalc(), nil, true
	}
}

func selectEdge(end bool) KeyHandler {
	return func(m ConverterModel, _ string) (ConverterModel, tea.Cmd, bool) {
		idx := 0
		if end {
			idx = m.system.Len() - 1
		}
		if m.focus == focusFrom {
			m.inputIdx = idx
		} else {
			m.outputIdx = idx
		}
		return m.recalc(), nil, true
	}
}
