package prompt

import (
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestThemeRender(t *testing.T) {
	type tc struct {
		caps      Capabilities
		kind      StyleKind
		text      string
		wantPlain bool
	}

	tests := map[string]tc{
		"monochrome prompt is plain": {
			caps:      Capabilities{Colors: ColorNone},
			kind:      StylePrompt,
			text:      "Pick",
			wantPlain: true,
		},
		"plain kind has no escapes": {
			caps:      Capabilities{Colors: ColorTrue},
			kind:      StylePlain,
			text:      "item",
			wantPlain: true,
		},
		"colored error is styled": {
			caps: Capabilities{Colors: Color256},
			kind: StyleError,
			text: "bad",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			theme := NewTheme(io.Discard, tt.caps)
			got := theme.Render(tt.kind, tt.text)
			if !strings.Contains(got, tt.text) {
				t.Fatalf("Render() = %q, does not contain %q", got, tt.text)
			}
			if plain := got == tt.text; plain != tt.wantPlain {
				t.Errorf("Render() = %q, plain = %v, want %v", got, plain, tt.wantPlain)
			}
		})
	}
}

func TestThemeRenderEmpty(t *testing.T) {
	theme := NewTheme(io.Discard, Capabilities{Colors: ColorTrue})
	if got := theme.Render(StyleAnswer, ""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestColorProfile(t *testing.T) {
	tests := map[ColorCapability]termenv.Profile{
		ColorNone: termenv.Ascii,
		Color16:   termenv.ANSI,
		Color256:  termenv.ANSI256,
		ColorTrue: termenv.TrueColor,
	}
	for c, want := range tests {
		if got := colorProfile(Capabilities{Colors: c}); got != want {
			t.Errorf("colorProfile(%v) = %v, want %v", c, got, want)
		}
	}
}

func TestStyleKindString(t *testing.T) {
	if got := StyleSelected.String(); got != "selected" {
		t.Errorf("StyleSelected.String() = %q", got)
	}
	if got := StyleKind(99).String(); got != "unknown" {
		t.Errorf("StyleKind(99).String() = %q", got)
	}
}
