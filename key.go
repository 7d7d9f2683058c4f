package prompt

import "strings"

// Key represents a keyboard key.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota

	// KeyRune represents a character key. Check KeyEvent.Rune for the character.
	// Control combinations such as Ctrl+A arrive as KeyRune 'a' with ModCtrl.
	KeyRune

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// String returns a human-readable representation of the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		return "Unknown"
	}
}

// bindingName is the lowercase name used in key binding descriptors ("ctrl+a", "pgdown").
func (k Key) bindingName() string {
	switch k {
	case KeyEscape:
		return "esc"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyInsert:
		return "insert"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdown"
	default:
		return ""
	}
}

// Modifier represents keyboard modifier flags.
type Modifier uint8

const (
	// ModNone represents no modifiers.
	ModNone Modifier = 0
	// ModCtrl represents the Ctrl modifier.
	ModCtrl Modifier = 1 << iota
	// ModAlt represents the Alt modifier.
	ModAlt
	// ModShift represents the Shift modifier.
	ModShift
)

// Has checks if the modifier set includes the given modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// String returns a human-readable representation of the modifiers.
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// KeyEvent represents a single keyboard input event read from the console.
type KeyEvent struct {
	// Key is the key pressed. For characters, this is KeyRune.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

// IsRune returns true if this is a character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// IsPrintable reports whether the event inserts text: a character without Ctrl or Alt.
func (e KeyEvent) IsPrintable() bool {
	return e.Key == KeyRune && e.Rune >= ' ' && !e.Mod.Has(ModCtrl) && !e.Mod.Has(ModAlt)
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyBackspace, ModCtrl)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// String returns the binding descriptor for the event, e.g. "ctrl+a", "alt+backspace",
// "space" or "x". The format is the one understood by bubbles/key bindings.
func (e KeyEvent) String() string {
	var sb strings.Builder
	if e.Mod.Has(ModCtrl) {
		sb.WriteString("ctrl+")
	}
	if e.Mod.Has(ModAlt) {
		sb.WriteString("alt+")
	}
	if e.Mod.Has(ModShift) && e.Key != KeyRune {
		sb.WriteString("shift+")
	}

	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			sb.WriteString("space")
		} else {
			sb.WriteRune(e.Rune)
		}
	case KeyNone:
		return ""
	default:
		sb.WriteString(e.Key.bindingName())
	}
	return sb.String()
}

// keyKind is the closed set of key descriptor variants the form dispatcher distinguishes.
type keyKind int

const (
	kindOther keyKind = iota
	kindDirectional
	kindControl
	kindTextEdit
	kindPrintable
)

// classify sorts an event into its dispatch variant.
func classify(e KeyEvent) keyKind {
	switch e.Key {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyPageUp, KeyPageDown:
		if e.Mod.Has(ModCtrl) || e.Mod.Has(ModAlt) {
			return kindOther
		}
		return kindDirectional
	case KeyBackspace, KeyDelete, KeyHome, KeyEnd:
		return kindTextEdit
	case KeyRune:
		if e.Mod.Has(ModCtrl) && e.Rune == 'w' {
			return kindTextEdit
		}
		if e.Mod.Has(ModCtrl) || e.Mod.Has(ModAlt) {
			return kindControl
		}
		if e.IsPrintable() {
			return kindPrintable
		}
	}
	return kindOther
}
