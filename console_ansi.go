package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a console is requested for a stream that is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// defaultInputLatency is how often a blocked ReadKey wakes up to observe context cancellation.
const defaultInputLatency = 50 * time.Millisecond

// ANSIConsole implements Console using ANSI escape sequences.
// It works with any terminal emulator that supports ANSI codes.
type ANSIConsole struct {
	in       *os.File      // Input source (usually os.Stdin)
	out      *os.File      // Output destination (usually os.Stdout)
	caps     Capabilities  // Terminal capabilities
	theme    *Theme        // Styles applied by Write
	esc      *escBuilder   // Pending output, sent on Flush
	rawState *rawModeState // Platform-specific raw mode state
	latency  time.Duration // select() timeout while waiting for input

	buf     []byte     // Read buffer for escape sequences
	partial []byte     // Incomplete UTF-8 sequence from the previous read
	pending []KeyEvent // Parsed events waiting to be returned
}

var _ Console = (*ANSIConsole)(nil)

// ConsoleOption is a functional option for configuring an ANSIConsole.
type ConsoleOption func(*ANSIConsole) error

// WithConsoleTheme sets the theme used to style output.
func WithConsoleTheme(t Theme) ConsoleOption {
	return func(c *ANSIConsole) error {
		c.theme = &t
		return nil
	}
}

// WithConsoleCapabilities overrides the auto-detected capabilities.
func WithConsoleCapabilities(caps Capabilities) ConsoleOption {
	return func(c *ANSIConsole) error {
		c.caps = caps
		return nil
	}
}

// WithInputLatency sets how often a blocked ReadKey checks its context.
// Default is 50ms. Must be positive.
func WithInputLatency(d time.Duration) ConsoleOption {
	return func(c *ANSIConsole) error {
		if d <= 0 {
			return fmt.Errorf("input latency must be positive, got %v", d)
		}
		c.latency = d
		return nil
	}
}

// NewANSIConsole creates a console reading keys from in and drawing to out.
// Both are typically os.Stdin and os.Stdout; in must be a terminal.
func NewANSIConsole(in, out *os.File, opts ...ConsoleOption) (*ANSIConsole, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("console input %s: %w", in.Name(), ErrNotTerminal)
	}

	c := &ANSIConsole{
		in:      in,
		out:     out,
		caps:    DetectCapabilities(),
		esc:     newEscBuilder(4096),
		latency: defaultInputLatency,
		buf:     make([]byte, 256),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.theme == nil {
		t := NewTheme(out, c.caps)
		c.theme = &t
	}

	return c, nil
}

// ReadKey blocks until a key event is available or ctx is done.
func (c *ANSIConsole) ReadKey(ctx context.Context) (KeyEvent, error) {
	for {
		if len(c.pending) > 0 {
			ev := c.pending[0]
			c.pending = c.pending[1:]
			return ev, nil
		}

		data, err := c.read(ctx)
		if err != nil {
			return KeyEvent{}, err
		}

		if len(c.partial) > 0 {
			data = append(c.partial, data...)
			c.partial = nil
		}

		events, remaining := parseInputWithRemainder(data)
		if len(remaining) > 0 {
			c.partial = make([]byte, len(remaining))
			copy(c.partial, remaining)
		}
		c.pending = events
	}
}

// Write buffers text styled for kind.
func (c *ANSIConsole) Write(text string, kind StyleKind) {
	c.esc.WriteString(c.theme.Render(kind, text))
}

// NewLine buffers a move to the start of the next row.
func (c *ANSIConsole) NewLine() {
	c.esc.NewLine()
}

// MoveUp buffers a cursor move up by n rows.
func (c *ANSIConsole) MoveUp(n int) {
	c.esc.MoveUp(n)
}

// MoveDown buffers a cursor move down by n rows.
func (c *ANSIConsole) MoveDown(n int) {
	c.esc.MoveDown(n)
}

// MoveToColumn buffers a cursor move to col on the current row.
func (c *ANSIConsole) MoveToColumn(col int) {
	c.esc.MoveToColumn(col)
}

// ClearToEnd buffers an erase from the cursor to the end of the screen.
func (c *ANSIConsole) ClearToEnd() {
	c.esc.ClearToEndOfScreen()
}

// ClearLineEnd buffers an erase from the cursor to the end of the row.
func (c *ANSIConsole) ClearLineEnd() {
	c.esc.ClearToEndOfLine()
}

// HideCursor buffers a cursor hide.
func (c *ANSIConsole) HideCursor() {
	c.esc.HideCursor()
}

// ShowCursor buffers a cursor show.
func (c *ANSIConsole) ShowCursor() {
	c.esc.ShowCursor()
}

// Flush writes all buffered output in a single write.
func (c *ANSIConsole) Flush() error {
	if c.esc.Len() == 0 {
		return nil
	}
	_, err := c.out.Write(c.esc.Bytes())
	c.esc.Reset()
	if err != nil {
		return fmt.Errorf("write console: %w", err)
	}
	return nil
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (c *ANSIConsole) Size() (width, height int) {
	w, h, err := getTerminalSize(int(c.out.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// Caps returns the terminal's capabilities.
func (c *ANSIConsole) Caps() Capabilities {
	return c.caps
}

// EnterRawMode puts the input terminal into raw mode.
func (c *ANSIConsole) EnterRawMode() error {
	if c.rawState != nil {
		return nil
	}
	state, err := enableRawMode(int(c.in.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	c.rawState = state
	return nil
}

// ExitRawMode restores the terminal to its previous mode.
func (c *ANSIConsole) ExitRawMode() error {
	if c.rawState == nil {
		return nil
	}
	err := disableRawMode(c.rawState)
	c.rawState = nil
	if err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}
