package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/akyairhashvil/unitconv/internal/catalog"
	"github.com/akyairhashvil/unitconv/internal/convert"
	"github.com/akyairhashvil/unitconv/internal/models"
	"github.com/akyairhashvil/unitconv/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

func newTestModel(t *testing.T, category models.Category) ConverterModel {
	t.Helper()
	m, err := NewConverterModel(catalog.Default(), Options{Category: category})
	if err != nil {
		t.Fatalf("NewConverterModel failed: %v", err)
	}
	return m
}

func send(t *testing.T, m ConverterModel, msgs ...tea.Msg) ConverterModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(ConverterModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewConverterModelDefaults(t *testing.T) {
	m := newTestModel(t, "")
	if m.Category() != models.CategoryTime {
		t.Fatalf("expected time category, got %q", m.Category())
	}
	if m.inputIdx != 0 || m.outputIdx != 1 {
		t.Fatalf("expected selection 0/1, got %d/%d", m.inputIdx, m.outputIdx)
	}
	if m.input.Value() != "1" {
		t.Fatalf("expected input text 1, got %q", m.input.Value())
	}
	if m.Output() != "1000" {
		t.Fatalf("expected 1 s = 1000 ms, got %q", m.Output())
	}
	if m.focus != focusValue {
		t.Fatalf("expected value field focus")
	}
	if m.Init() == nil {
		t.Fatalf("expected blink cmd")
	}
}

func TestNewConverterModelUnknownCategory(t *testing.T) {
	if _, err := NewConverterModel(catalog.Default(), Options{Category: "volume"}); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestTypingDigitsRecalculates(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, runes("3"))
	if m.input.Value() != "13" {
		t.Fatalf("expected value 13, got %q", m.input.Value())
	}
	if m.Output() != "13000" {
		t.Fatalf("expected 13000, got %q", m.Output())
	}
}

func TestTypingLettersIsFiltered(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, runes("a"), runes("x"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.input.Value() != "1" {
		t.Fatalf("expected value unchanged, got %q", m.input.Value())
	}
	if m.Output() != "1000" {
		t.Fatalf("expected output unchanged, got %q", m.Output())
	}
}

func TestPasteIsSanitized(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m.input.SetValue("")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a3.b"), Paste: true})
	if m.input.Value() != "3." {
		t.Fatalf("expected value 3., got %q", m.input.Value())
	}
	if m.Output() != "3000" {
		t.Fatalf("expected 3000, got %q", m.Output())
	}
}

func TestMalformedNumberBlanksOutput(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, runes("."), runes("2"), runes("."), runes("3"))
	if m.input.Value() != "1.2.3" {
		t.Fatalf("expected value 1.2.3, got %q", m.input.Value())
	}
	if m.Output() != "" {
		t.Fatalf("expected blank output, got %q", m.Output())
	}
	if !errors.Is(m.lastErr, convert.ErrParse) {
		t.Fatalf("expected parse error, got %v", m.lastErr)
	}
}

func TestBackspaceToEmptyBlanksOutput(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input.Value() != "" {
		t.Fatalf("expected empty value, got %q", m.input.Value())
	}
	if m.Output() != "" {
		t.Fatalf("expected blank output, got %q", m.Output())
	}
}

func TestEditInsideValue(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, runes("2"), tea.KeyMsg{Type: tea.KeyLeft}, runes("x5"))
	if m.input.Value() != "152" {
		t.Fatalf("expected value 152, got %q", m.input.Value())
	}
	if m.input.Position() != 2 {
		t.Fatalf("expected cursor after inserted digit, got %d", m.input.Position())
	}
	if m.Output() != "152000" {
		t.Fatalf("expected 152000, got %q", m.Output())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	if m.input.Value() != "15" || m.input.Position() != 2 {
		t.Fatalf("expected 15 with cursor 2, got %q at %d", m.input.Value(), m.input.Position())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyHome}, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input.Value() != "15" {
		t.Fatalf("expected backspace at start to be a no-op, got %q", m.input.Value())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	if m.input.Value() != "5" || m.Output() != "5000" {
		t.Fatalf("expected 5 -> 5000, got %q -> %q", m.input.Value(), m.Output())
	}
}

func TestListSelectionRecalculates(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusFrom {
		t.Fatalf("expected from-list focus")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.inputIdx != 1 {
		t.Fatalf("expected input index 1, got %d", m.inputIdx)
	}
	if m.Output() != "1" {
		t.Fatalf("expected 1 m = 1 m, got %q", m.Output())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("k"))
	if m.outputIdx != 0 {
		t.Fatalf("expected output index 0, got %d", m.outputIdx)
	}
	if m.Output() != "0.001" {
		t.Fatalf("expected 0.001, got %q", m.Output())
	}
}

func TestListSelectionStopsAtEdges(t *testing.T) {
	m := newTestModel(t, models.CategoryTemperature)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyUp})
	if m.inputIdx != 0 {
		t.Fatalf("expected input index to stay 0, got %d", m.inputIdx)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.inputIdx != 2 {
		t.Fatalf("expected last index, got %d", m.inputIdx)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.inputIdx != 2 {
		t.Fatalf("expected input index to stay 2, got %d", m.inputIdx)
	}
}

func TestShiftTabWrapsFocus(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != focusTo {
		t.Fatalf("expected to-list focus, got %v", m.focus)
	}
	if m.input.Focused() {
		t.Fatalf("expected value field to blur")
	}
}

func TestCategorySwitchResetsSelection(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, runes("5"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.Category() != models.CategoryTemperature {
		t.Fatalf("expected temperature, got %q", m.Category())
	}
	if m.inputIdx != 0 || m.outputIdx != 1 || m.input.Value() != "1" {
		t.Fatalf("expected reset selection, got %d/%d %q", m.inputIdx, m.outputIdx, m.input.Value())
	}
	if m.Output() != "274.15" {
		t.Fatalf("expected 274.15, got %q", m.Output())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlP}, tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.Category() != models.CategoryTime {
		t.Fatalf("expected wrap to time, got %q", m.Category())
	}
}

func TestPickerSelectsCategory(t *testing.T) {
	m := newTestModel(t, models.CategoryTime)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if !m.picker.open || m.picker.cursor != 2 {
		t.Fatalf("expected picker open on current category, got %+v", m.picker)
	}
	if !strings.Contains(m.View(), "Change unit") {
		t.Fatalf("expected picker in view")
	}
	m = send(t, m, runes("k"), runes("k"), runes("k"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.picker.open {
		t.Fatalf("expected picker closed")
	}
	if m.Category() != models.CategoryLength {
		t.Fatalf("expected length, got %q", m.Category())
	}
	if m.Output() != "1000" {
		t.Fatalf("expected 1 km = 1000 m, got %q", m.Output())
	}
}

func TestPickerEscapeKeepsCategory(t *testing.T) {
	m := newTestModel(t, models.CategoryTime)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.picker.open {
		t.Fatalf("expected picker closed")
	}
	if m.Category() != models.CategoryTime {
		t.Fatalf("expected time to remain active")
	}
}

func TestSwapUnits(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.inputIdx != 1 || m.outputIdx != 0 {
		t.Fatalf("expected swapped selection, got %d/%d", m.inputIdx, m.outputIdx)
	}
	if m.Output() != "0.001" {
		t.Fatalf("expected 0.001, got %q", m.Output())
	}
}

func TestThemeCycle(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.themeName != "dracula" || m.theme.Name != "Dracula" {
		t.Fatalf("expected dracula theme, got %q", m.themeName)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.themeName != "default" {
		t.Fatalf("expected wrap to default, got %q", m.themeName)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		if _, cmd := m.Update(tea.KeyMsg{Type: key}); cmd == nil {
			t.Fatalf("expected quit cmd for %v", key)
		}
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Fatalf("expected size updated")
	}
}

func TestViewShowsState(t *testing.T) {
	m := newTestModel(t, models.CategoryLength)
	view := m.View()
	for _, want := range []string{"Length", "Kilometer", "Meter", "1000", "From", "To"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 30})
	if !strings.Contains(m.View(), "Light Year") {
		t.Fatalf("expected compact view to list units")
	}
}

func TestInvalidThemeFallsBack(t *testing.T) {
	m, err := NewConverterModel(catalog.Default(), Options{Theme: "neon"})
	if err != nil {
		t.Fatalf("NewConverterModel failed: %v", err)
	}
	if m.themeName != "default" {
		t.Fatalf("expected default theme, got %q", m.themeName)
	}
}

func TestCategorySwitchErrorKeepsSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := NewMockCatalog(ctrl)
	mass := testutil.NewUnitSystem().WithCategory("mass").MustBuild()
	cat.EXPECT().Categories().Return([]models.Category{"mass", "broken"})
	cat.EXPECT().System(models.Category("mass")).Return(mass, nil)
	cat.EXPECT().System(models.Category("broken")).Return(models.UnitSystem{}, catalog.ErrUnknownCategory)

	m, err := NewConverterModel(cat, Options{Category: "mass"})
	if err != nil {
		t.Fatalf("NewConverterModel failed: %v", err)
	}
	if m.Output() != "2" {
		t.Fatalf("expected 1 Base = 2 Double, got %q", m.Output())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.Category() != "mass" {
		t.Fatalf("expected mass to stay active, got %q", m.Category())
	}
	if m.status == "" {
		t.Fatalf("expected status message")
	}
	if !strings.Contains(m.View(), "unknown category") {
		t.Fatalf("expected status in view")
	}
}

func TestEmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := NewMockCatalog(ctrl)
	cat.EXPECT().Categories().Return(nil)
	if _, err := NewConverterModel(cat, Options{}); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestCatalogSystemError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cat := NewMockCatalog(ctrl)
	boom := errors.New("boom")
	cat.EXPECT().Categories().Return([]models.Category{models.CategoryTime})
	cat.EXPECT().System(models.CategoryTime).Return(models.UnitSystem{}, boom)
	if _, err := NewConverterModel(cat, Options{}); !errors.Is(err, boom) {
		t.Fatalf("expected catalog error, got %v", err)
	}
}
