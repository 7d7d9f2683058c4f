package prompt

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// keyHandler pairs a binding with the state transition it triggers.
// handle returns false when the key had no effect, in which case dispatch falls
// through to text input.
type keyHandler struct {
	binding key.Binding
	handle  func(KeyEvent) bool
}

// keyTable is a form's data-driven key dispatch table, matched in order.
type keyTable []keyHandler

// dispatch runs the first handler whose binding matches ev.
func (t keyTable) dispatch(ev KeyEvent) (matched, handled bool) {
	for _, h := range t {
		if key.Matches(ev, h.binding) {
			return true, h.handle(ev)
		}
	}
	return false, false
}

// bindings returns the bindings of the table that carry help text.
func (t keyTable) bindings() []key.Binding {
	out := make([]key.Binding, 0, len(t))
	for _, h := range t {
		if h.binding.Help().Key != "" {
			out = append(out, h.binding)
		}
	}
	return out
}

// keyMap holds every binding the built-in forms use.
type keyMap struct {
	Submit     key.Binding
	Cancel     key.Binding
	Up         key.Binding
	Down       key.Binding
	PrevPage   key.Binding
	NextPage   key.Binding
	Toggle     key.Binding
	ToggleAll  key.Binding
	Invert     key.Binding
	Backspace  key.Binding
	DeleteWord key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "move"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "pgup"),
		key.WithHelp("←/→", "page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "pgdown"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("space"),
		key.WithHelp("space", "toggle"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "all"),
	),
	Invert: key.NewBinding(
		key.WithKeys("ctrl+i", "tab"),
		key.WithHelp("ctrl+i", "invert"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
	),
	DeleteWord: key.NewBinding(
		key.WithKeys("ctrl+backspace", "alt+backspace", "ctrl+w"),
	),
}

// hintView renders the bindings as a one-line hint, e.g. "space toggle • enter submit".
// Styling is left to the hint StyleKind, so the help styles are plain.
func hintView(bindings []key.Binding) string {
	plain := lipgloss.NewStyle()
	h := help.Model{
		ShortSeparator: " • ",
		Ellipsis:       "…",
		Styles: help.Styles{
			Ellipsis:       plain,
			ShortKey:       plain,
			ShortDesc:      plain,
			ShortSeparator: plain,
			FullKey:        plain,
			FullDesc:       plain,
			FullSeparator:  plain,
		},
	}
	return h.ShortHelpView(bindings)
}

// asciiHint replaces the arrow glyphs of help keys for terminals without Unicode.
func asciiHint(bindings []key.Binding) []key.Binding {
	out := make([]key.Binding, len(bindings))
	for i, b := range bindings {
		h := b.Help()
		switch h.Key {
		case "↑/↓":
			b.SetHelp("up/down", h.Desc)
		case "←/→":
			b.SetHelp("left/right", h.Desc)
		}
		out[i] = b
	}
	return out
}
