package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key. handled=false lets lower-priority bindings run.
type KeyHandler func(m ConverterModel, key string) (next ConverterModel, cmd tea.Cmd, handled bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Focus       []focusArea
	Priority    int
}

// AppliesTo reports whether the binding is active for focus f.
// Bindings without a focus list are global.
func (b KeyBinding) AppliesTo(f focusArea) bool {
	if len(b.Focus) == 0 {
		return true
	}
	for _, v := range b.Focus {
		if v == f {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m ConverterModel, key string) (ConverterModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.focus) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(f focusArea) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(f) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders the help line for focus f, one entry per key.
func (r *HandlerRegistry) HelpFor(f focusArea) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(f) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
