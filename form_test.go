package prompt

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-prompt/internal/debug"
)

var (
	keyEnter     = KeyEvent{Key: KeyEnter}
	keyEsc       = KeyEvent{Key: KeyEscape}
	keyUp        = KeyEvent{Key: KeyUp}
	keyDown      = KeyEvent{Key: KeyDown}
	keyLeft      = KeyEvent{Key: KeyLeft}
	keyRight     = KeyEvent{Key: KeyRight}
	keySpace     = KeyEvent{Key: KeyRune, Rune: ' '}
	keyTab       = KeyEvent{Key: KeyTab}
	keyBackspace = KeyEvent{Key: KeyBackspace}
)

func ctrl(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Mod: ModCtrl}
}

func text(s string) []KeyEvent {
	var out []KeyEvent
	for _, r := range s {
		out = append(out, KeyEvent{Key: KeyRune, Rune: r})
	}
	return out
}

// seq flattens single events and event slices into one key sequence.
func seq(parts ...any) []KeyEvent {
	var out []KeyEvent
	for _, p := range parts {
		switch v := p.(type) {
		case KeyEvent:
			out = append(out, v)
		case []KeyEvent:
			out = append(out, v...)
		}
	}
	return out
}

func newTestPrompter(t *testing.T, m *MockConsole) *Prompter {
	t.Helper()
	p, err := New(WithConsole(m), WithoutSignals())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

// recordScreens captures the screen each time the form waits for a key.
func recordScreens(m *MockConsole) *[]string {
	var screens []string
	m.OnReadKey(func(m *MockConsole) {
		screens = append(screens, m.String())
	})
	return &screens
}

func TestForm_ReadErrorIsFatal(t *testing.T) {
	m := NewMockConsole(80, 10)
	p := newTestPrompter(t, m)

	_, err := Input(context.Background(), p, InputOptions{Message: "Name"})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("error = %v, want wrapped io.EOF", err)
	}
	if errors.Is(err, ErrCanceled) {
		t.Error("read failure reported as cancellation")
	}
	if m.IsInRawMode() {
		t.Error("raw mode not restored")
	}
}

func TestForm_CancelByKey(t *testing.T) {
	type tc struct {
		key KeyEvent
	}

	tests := map[string]tc{
		"escape": {key: keyEsc},
		"ctrl+c": {key: ctrl('c')},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewMockConsole(80, 10)
			m.Write("$ deploy", StylePlain)
			m.NewLine()
			m.QueueKeys(KeyEvent{Key: KeyRune, Rune: 'x'}, tt.key)
			p := newTestPrompter(t, m)

			_, err := Confirm(context.Background(), p, ConfirmOptions{Message: "Continue?"})

			var ce *CanceledError
			if !errors.As(err, &ce) || ce.Prompt != "Confirm" {
				t.Fatalf("error = %v, want *CanceledError for Confirm", err)
			}
			if !errors.Is(err, ErrCanceled) {
				t.Error("errors.Is(err, ErrCanceled) = false")
			}
			if got := m.String(); got != "$ deploy" {
				t.Errorf("screen after cancel = %q, want only prior output", got)
			}
			if m.IsInRawMode() {
				t.Error("raw mode not restored")
			}
		})
	}
}

func TestForm_CancelByContext(t *testing.T) {
	m := NewMockConsole(80, 10)
	p := newTestPrompter(t, m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Select(ctx, p, SelectOptions[string]{Message: "Pick", Items: []string{"a", "b"}})
	if !errors.Is(err, ErrCanceled) {
		t.Fatalf("error = %v, want ErrCanceled", err)
	}
	if got := m.String(); got != "" {
		t.Errorf("screen = %q, want empty", got)
	}
}

func TestForm_ErrorShownOnce(t *testing.T) {
	m := NewMockConsole(80, 10)
	m.QueueKeys(seq(keyEnter, text("y"), keyEnter)...)
	screens := recordScreens(m)
	p := newTestPrompter(t, m)

	got, err := Confirm(context.Background(), p, ConfirmOptions{Message: "Continue?"})
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !got {
		t.Error("Confirm = false, want true")
	}

	if len(*screens) != 3 {
		t.Fatalf("recorded %d screens, want 3", len(*screens))
	}
	if !strings.Contains((*screens)[1], "» Value is required") {
		t.Errorf("screen after empty submit = %q, want the error line", (*screens)[1])
	}
	if strings.Contains((*screens)[2], "Value is required") {
		t.Errorf("error still shown after the next key: %q", (*screens)[2])
	}
	if m.String() != "✔ Continue? Yes" {
		t.Errorf("final screen = %q", m.String())
	}
}

func TestForm_DispatchIgnoresUnboundKeys(t *testing.T) {
	m := NewMockConsole(80, 10)
	m.QueueKeys(seq(ctrl('x'), KeyEvent{Key: KeyInsert}, text("ok"), keyEnter)...)
	p := newTestPrompter(t, m)

	got, err := Input(context.Background(), p, InputOptions{Message: "Name"})
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != "ok" {
		t.Errorf("Input = %q, want %q", got, "ok")
	}
}

func TestForm_DebugLogOmitsTypedText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := debug.Init(path); err != nil {
		t.Fatalf("debug.Init: %v", err)
	}
	t.Cleanup(func() { debug.Close() })

	m := NewMockConsole(80, 10)
	m.QueueKeys(seq(text("hunter2"), keyBackspace, keyEnter)...)
	p := newTestPrompter(t, m)

	if _, err := Input(context.Background(), p, InputOptions{Message: "Password"}); err != nil {
		t.Fatalf("Input: %v", err)
	}
	if err := debug.Close(); err != nil {
		t.Fatalf("debug.Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	log := string(data)
	for _, want := range []string{"Input: key rune", "Input: key backspace", "Input: key enter"} {
		if !strings.Contains(log, want) {
			t.Errorf("log missing %q:\n%s", want, log)
		}
	}
	for _, r := range "hunter2" {
		if strings.Contains(log, "key "+string(r)+"\n") {
			t.Errorf("log contains typed rune %q:\n%s", r, log)
		}
	}
}

func TestFormState_String(t *testing.T) {
	for state, want := range map[formState]string{
		formActive:    "active",
		formCompleted: "completed",
		formCanceled:  "canceled",
	} {
		if got := state.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
