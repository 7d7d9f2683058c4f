package prompt

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleKind tags a span of text in a frame with its role.
// The console decides how each kind looks.
type StyleKind uint8

const (
	// StylePlain is unstyled text.
	StylePlain StyleKind = iota
	// StylePrompt is the prompt symbol and message.
	StylePrompt
	// StyleHint is secondary help text such as key hints and pagination.
	StyleHint
	// StyleError is a validation error line.
	StyleError
	// StyleSelected is the highlighted or checked item.
	StyleSelected
	// StyleAnswer is the submitted answer on the final frame.
	StyleAnswer
	// StyleDone is the completion symbol on the final frame.
	StyleDone
)

// String returns the name of the style kind.
func (k StyleKind) String() string {
	switch k {
	case StylePlain:
		return "plain"
	case StylePrompt:
		return "prompt"
	case StyleHint:
		return "hint"
	case StyleError:
		return "error"
	case StyleSelected:
		return "selected"
	case StyleAnswer:
		return "answer"
	case StyleDone:
		return "done"
	default:
		return "unknown"
	}
}

// Theme maps each StyleKind to a lipgloss style.
type Theme struct {
	Plain    lipgloss.Style
	Prompt   lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Answer   lipgloss.Style
	Done     lipgloss.Style
}

// NewTheme returns the default theme rendering to w with a color profile
// matching caps.
func NewTheme(w io.Writer, caps Capabilities) Theme {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile(caps))

	return Theme{
		Plain:    r.NewStyle(),
		Prompt:   r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Hint:     r.NewStyle().Foreground(lipgloss.Color("8")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("1")),
		Selected: r.NewStyle().Foreground(lipgloss.Color("6")),
		Answer:   r.NewStyle().Foreground(lipgloss.Color("6")),
		Done:     r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// Style returns the lipgloss style for kind.
func (t Theme) Style(kind StyleKind) lipgloss.Style {
	switch kind {
	case StylePrompt:
		return t.Prompt
	case StyleHint:
		return t.Hint
	case StyleError:
		return t.Error
	case StyleSelected:
		return t.Selected
	case StyleAnswer:
		return t.Answer
	case StyleDone:
		return t.Done
	default:
		return t.Plain
	}
}

// Render renders text with the style for kind.
func (t Theme) Render(kind StyleKind, text string) string {
	if text == "" {
		return ""
	}
	return t.Style(kind).Inline(true).Render(text)
}

func colorProfile(caps Capabilities) termenv.Profile {
	switch caps.Colors {
	case ColorTrue:
		return termenv.TrueColor
	case Color256:
		return termenv.ANSI256
	case Color16:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}
