package prompt

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestKeyEvent_String(t *testing.T) {
	type tc struct {
		event KeyEvent
		want  string
	}

	tests := map[string]tc{
		"rune":           {event: KeyEvent{Key: KeyRune, Rune: 'x'}, want: "x"},
		"space":          {event: KeyEvent{Key: KeyRune, Rune: ' '}, want: "space"},
		"ctrl+a":         {event: KeyEvent{Key: KeyRune, Rune: 'a', Mod: ModCtrl}, want: "ctrl+a"},
		"alt+backspace":  {event: KeyEvent{Key: KeyBackspace, Mod: ModAlt}, want: "alt+backspace"},
		"ctrl+backspace": {event: KeyEvent{Key: KeyBackspace, Mod: ModCtrl}, want: "ctrl+backspace"},
		"escape":         {event: KeyEvent{Key: KeyEscape}, want: "esc"},
		"page down":      {event: KeyEvent{Key: KeyPageDown}, want: "pgdown"},
		"shift+tab":      {event: KeyEvent{Key: KeyTab, Mod: ModShift}, want: "shift+tab"},
		"none":           {event: KeyEvent{}, want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.event.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyBindings_Match(t *testing.T) {
	type tc struct {
		event   KeyEvent
		binding key.Binding
		want    bool
	}

	tests := map[string]tc{
		"ctrl+a toggles all":    {event: KeyEvent{Key: KeyRune, Rune: 'a', Mod: ModCtrl}, binding: keys.ToggleAll, want: true},
		"plain a does not":      {event: KeyEvent{Key: KeyRune, Rune: 'a'}, binding: keys.ToggleAll, want: false},
		"tab inverts":           {event: KeyEvent{Key: KeyTab}, binding: keys.Invert, want: true},
		"space toggles":         {event: KeyEvent{Key: KeyRune, Rune: ' '}, binding: keys.Toggle, want: true},
		"ctrl+c cancels":        {event: KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl}, binding: keys.Cancel, want: true},
		"esc cancels":           {event: KeyEvent{Key: KeyEscape}, binding: keys.Cancel, want: true},
		"ctrl+w deletes word":   {event: KeyEvent{Key: KeyRune, Rune: 'w', Mod: ModCtrl}, binding: keys.DeleteWord, want: true},
		"alt+backspace deletes": {event: KeyEvent{Key: KeyBackspace, Mod: ModAlt}, binding: keys.DeleteWord, want: true},
		"backspace is not word": {event: KeyEvent{Key: KeyBackspace}, binding: keys.DeleteWord, want: false},
		"pgdown is next page":   {event: KeyEvent{Key: KeyPageDown}, binding: keys.NextPage, want: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := key.Matches(tt.event, tt.binding); got != tt.want {
				t.Errorf("key.Matches(%q) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	type tc struct {
		event KeyEvent
		want  keyKind
	}

	tests := map[string]tc{
		"letter":         {event: KeyEvent{Key: KeyRune, Rune: 'q'}, want: kindPrintable},
		"space":          {event: KeyEvent{Key: KeyRune, Rune: ' '}, want: kindPrintable},
		"ctrl+a":         {event: KeyEvent{Key: KeyRune, Rune: 'a', Mod: ModCtrl}, want: kindControl},
		"ctrl+w":         {event: KeyEvent{Key: KeyRune, Rune: 'w', Mod: ModCtrl}, want: kindTextEdit},
		"backspace":      {event: KeyEvent{Key: KeyBackspace}, want: kindTextEdit},
		"ctrl+backspace": {event: KeyEvent{Key: KeyBackspace, Mod: ModCtrl}, want: kindTextEdit},
		"left":           {event: KeyEvent{Key: KeyLeft}, want: kindDirectional},
		"ctrl+left":      {event: KeyEvent{Key: KeyLeft, Mod: ModCtrl}, want: kindOther},
		"enter":          {event: KeyEvent{Key: KeyEnter}, want: kindOther},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := classify(tt.event); got != tt.want {
				t.Errorf("classify(%v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestHintView(t *testing.T) {
	got := hintView([]key.Binding{keys.Toggle, keys.Submit})
	if want := "space toggle • enter submit"; got != want {
		t.Errorf("hintView() = %q, want %q", got, want)
	}

	got = hintView(asciiHint([]key.Binding{keys.Up, keys.PrevPage}))
	if want := "up/down move • left/right page"; got != want {
		t.Errorf("ascii hintView() = %q, want %q", got, want)
	}
}
