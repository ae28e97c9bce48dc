package tui

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/unitconv/internal/config"
	"github.com/akyairhashvil/unitconv/internal/convert"
	"github.com/akyairhashvil/unitconv/internal/models"
	"github.com/akyairhashvil/unitconv/internal/sanitize"
	"github.com/akyairhashvil/unitconv/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrEmptyCatalog = errors.New("catalog has no categories")

// focusArea is the widget receiving keys.
type focusArea int

const (
	focusValue focusArea = iota
	focusFrom
	focusTo

	focusCount = 3
)

// Options configures a new ConverterModel.
type Options struct {
	Category models.Category
	Theme    string
}

// ConverterModel owns the selection state and recomputes the result on
// every change. The unit system is replaced, never edited, on category switch.
type ConverterModel struct {
	catalog     Catalog
	categories  []models.Category
	categoryIdx int
	system      models.UnitSystem

	input     textinput.Model
	inputIdx  int
	outputIdx int
	output    string
	lastErr   error

	focus  focusArea
	picker pickerState
	keys   *HandlerRegistry

	themeName string
	theme     Theme
	status    string
	width     int
	height    int
}

func NewConverterModel(cat Catalog, opts Options) (ConverterModel, error) {
	categories := cat.Categories()
	if len(categories) == 0 {
		return ConverterModel{}, ErrEmptyCatalog
	}
	category := opts.Category
	if category == "" {
		category = config.DefaultCategory
	}
	idx := -1
	for i, c := range categories {
		if c == category {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ConverterModel{}, fmt.Errorf("category %q is not available", string(category))
	}
	sys, err := cat.System(category)
	if err != nil {
		return ConverterModel{}, err
	}

	themeName := opts.Theme
	if !HasTheme(themeName) {
		themeName = config.DefaultTheme
	}

	m := ConverterModel{
		catalog:     cat,
		categories:  categories,
		categoryIdx: idx,
		system:      sys,
		input:       newValueInput(),
		keys:        defaultRegistry(),
		themeName:   themeName,
		theme:       ResolveTheme(themeName),
	}
	return m.resetSelection().recalc(), nil
}

func newValueInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = config.MaxValueLength
	ti.Width = config.ValueFieldWidth
	// Clipboard paste bypasses key filtering; terminal paste arrives as runes.
	ti.KeyMap.Paste.SetEnabled(false)
	ti.Focus()
	return ti
}

func (m ConverterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConverterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.picker.open {
			return m.updatePicker(msg)
		}
		if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
			return next, cmd
		}
		if m.focus == focusValue {
			return m.updateValue(msg)
		}
		return m, nil
	}

	if m.focus == focusValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateValue routes an edit of the value field through the sanitizer.
// Insertions and single-rune deletions are applied here; other editing keys
// go to the text input.
func (m ConverterModel) updateValue(msg tea.KeyMsg) (ConverterModel, tea.Cmd) {
	value, pos := m.input.Value(), m.input.Position()
	switch msg.String() {
	case " ":
		return m, nil
	case "backspace", "ctrl+h":
		if pos == 0 || !sanitize.FilterRemoval(value, pos-1, 1) {
			return m, nil
		}
		return m.setValue(sanitize.Remove(value, pos-1, 1), pos-1), nil
	case "delete", "ctrl+d":
		if pos >= len([]rune(value)) || !sanitize.FilterRemoval(value, pos, 1) {
			return m, nil
		}
		return m.setValue(sanitize.Remove(value, pos, 1), pos), nil
	}
	if msg.Type == tea.KeyRunes {
		accepted := sanitize.FilterInsertion(value, pos, string(msg.Runes))
		if accepted == "" {
			return m, nil
		}
		return m.setValue(sanitize.Insert(value, pos, accepted), pos+len([]rune(accepted))), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != value {
		m = m.recalc()
	}
	return m, cmd
}

func (m ConverterModel) setValue(text string, cursor int) ConverterModel {
	m.input.SetValue(text)
	m.input.SetCursor(cursor)
	return m.recalc()
}

func (m ConverterModel) setFocus(f focusArea) (ConverterModel, tea.Cmd) {
	m.focus = f
	if f == focusValue {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

// switchCategory replaces the active unit system and resets the selection.
func (m ConverterModel) switchCategory(idx int) ConverterModel {
	if idx < 0 || idx >= len(m.categories) {
		return m
	}
	sys, err := m.catalog.System(m.categories[idx])
	if err != nil {
		util.LogError("switch category", err)
		m.status = err.Error()
		return m
	}
	m.categoryIdx = idx
	m.system = sys
	m.status = ""
	return m.resetSelection().recalc()
}

func (m ConverterModel) resetSelection() ConverterModel {
	m.inputIdx = config.DefaultInputIndex
	m.outputIdx = util.Clamp(config.DefaultOutputIndex, 0, m.system.Len()-1)
	m.input.SetValue(config.DefaultInputText)
	m.input.CursorEnd()
	return m
}

// recalc refreshes the result. Any error leaves the result blank.
func (m ConverterModel) recalc() ConverterModel {
	v, err := convert.ConvertText(m.system, m.inputIdx, m.outputIdx, m.input.Value())
	m.lastErr = err
	if err != nil {
		util.LogError("convert", err)
		m.output = ""
		return m
	}
	m.output = convert.FormatForDisplay(v)
	return m
}

// Category returns the active category.
func (m ConverterModel) Category() models.Category {
	return m.system.Category()
}

// Output returns the displayed result, blank when the input does not convert.
func (m ConverterModel) Output() string {
	return m.output
}
