package prompt

import (
	"os"
	"strings"
)

// DetectCapabilities determines terminal capabilities from environment variables
// and returns a Capabilities struct with detected settings.
// Returns conservative defaults when detection fails.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Colors:  Color16, // Safe default for most terminals
		Unicode: detectUnicode(),
	}

	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		caps.Colors = ColorNone
		return caps
	}

	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.Colors = ColorTrue
		return caps
	}

	// Terminal emulators known to support true color
	for _, env := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if os.Getenv(env) != "" {
			caps.Colors = ColorTrue
			return caps
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case term == "dumb":
		caps.Colors = ColorNone
		caps.Unicode = false
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	case strings.Contains(term, "truecolor"):
		caps.Colors = ColorTrue
	}

	return caps
}

// detectUnicode reports whether the locale advertises UTF-8 output.
// Windows Terminal always renders UTF-8; the legacy console only when a locale says so.
func detectUnicode() bool {
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToLower(os.Getenv(env))
		if v == "" {
			continue
		}
		return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
	}
	// No locale at all: modern terminals default to UTF-8.
	return os.Getenv("TERM") != "dumb"
}
