package prompt

import (
	"errors"
	"fmt"
	"os"
)

// Prompter runs forms on one console. Forms run one at a time; a Prompter must not
// be shared between goroutines.
type Prompter struct {
	console Console
	in, out *os.File
	symbols *Symbols
	theme   *Theme
	caps    *Capabilities
	signals bool
	owned   bool // console was created by New
}

// Option is a functional option for configuring a Prompter.
type Option func(*Prompter) error

// WithConsole draws on c instead of the process terminal.
func WithConsole(c Console) Option {
	return func(p *Prompter) error {
		if c == nil {
			return errors.New("console must not be nil")
		}
		p.console = c
		return nil
	}
}

// WithStreams sets the terminal streams. Defaults are os.Stdin and os.Stdout.
// Ignored when WithConsole is given.
func WithStreams(in, out *os.File) Option {
	return func(p *Prompter) error {
		if in == nil || out == nil {
			return errors.New("streams must not be nil")
		}
		p.in, p.out = in, out
		return nil
	}
}

// WithSymbols overrides the glyphs chosen from the terminal's Unicode support.
func WithSymbols(s Symbols) Option {
	return func(p *Prompter) error {
		p.symbols = &s
		return nil
	}
}

// WithTheme sets the styles used for each kind of text.
// Ignored when WithConsole is given, since the console owns its styling.
func WithTheme(t Theme) Option {
	return func(p *Prompter) error {
		p.theme = &t
		return nil
	}
}

// WithCapabilities overrides the auto-detected terminal capabilities.
func WithCapabilities(caps Capabilities) Option {
	return func(p *Prompter) error {
		p.caps = &caps
		return nil
	}
}

// WithoutSignals stops forms from treating SIGINT and SIGTERM as cancellation.
func WithoutSignals() Option {
	return func(p *Prompter) error {
		p.signals = false
		return nil
	}
}

// New creates a Prompter. Without WithConsole it opens an ANSIConsole on the
// process terminal and fails with ErrNotTerminal if stdin is not one.
func New(opts ...Option) (*Prompter, error) {
	p := &Prompter{
		in:      os.Stdin,
		out:     os.Stdout,
		signals: true,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.console == nil {
		var copts []ConsoleOption
		if p.caps != nil {
			copts = append(copts, WithConsoleCapabilities(*p.caps))
		}
		if p.theme != nil {
			copts = append(copts, WithConsoleTheme(*p.theme))
		}
		c, err := NewANSIConsole(p.in, p.out, copts...)
		if err != nil {
			return nil, fmt.Errorf("open console: %w", err)
		}
		p.console = c
		p.owned = true
	}

	if p.symbols == nil {
		caps := p.console.Caps()
		if p.caps != nil {
			caps = *p.caps
		}
		s := SymbolsFor(caps)
		p.symbols = &s
	}

	return p, nil
}

// Console returns the console forms draw on.
func (p *Prompter) Console() Console {
	return p.console
}

// Symbols returns the glyphs forms draw with.
func (p *Prompter) Symbols() Symbols {
	return *p.symbols
}

// Close restores the terminal if a form left it in raw mode.
func (p *Prompter) Close() error {
	if !p.owned {
		return nil
	}
	if err := p.console.ExitRawMode(); err != nil {
		return fmt.Errorf("close console: %w", err)
	}
	return nil
}
