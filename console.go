package prompt

import "context"

// ColorCapability describes the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone indicates a monochrome terminal with no color support.
	ColorNone ColorCapability = iota
	// Color16 indicates basic 16-color support (ANSI standard colors).
	Color16
	// Color256 indicates ANSI 256 palette support.
	Color256
	// ColorTrue indicates 24-bit true color (RGB) support.
	ColorTrue
)

// Capabilities describes what features the terminal supports.
// They are resolved once when the console is created and never re-detected while rendering.
type Capabilities struct {
	// Colors indicates the level of color support.
	Colors ColorCapability
	// Unicode indicates whether the terminal can render Unicode glyphs.
	// When false, forms draw with the ASCII symbol set.
	Unicode bool
}

// Console abstracts the raw terminal a prompt draws on and reads keys from.
// Implementations handle ANSI terminals or in-memory consoles for testing.
//
// Output operations are buffered by the implementation and reach the terminal on Flush.
// All positions are relative: the engine never needs to know where on the screen it is.
type Console interface {
	// ReadKey blocks until one key event is available or ctx is done.
	ReadKey(ctx context.Context) (KeyEvent, error)

	// Write writes text at the caret using the style for kind.
	// Text never contains control characters; the caret advances by its display width.
	Write(text string, kind StyleKind)

	// NewLine moves the caret to column 0 of the next row, scrolling if needed.
	NewLine()

	// MoveUp moves the caret up by n rows without changing the column.
	MoveUp(n int)

	// MoveDown moves the caret down by n rows without changing the column.
	MoveDown(n int)

	// MoveToColumn moves the caret to the 0-indexed column of the current row.
	MoveToColumn(col int)

	// ClearToEnd erases from the caret to the end of the screen.
	ClearToEnd()

	// ClearLineEnd erases from the caret to the end of the current row.
	ClearLineEnd()

	// HideCursor makes the caret invisible.
	HideCursor()

	// ShowCursor makes the caret visible.
	ShowCursor()

	// Flush sends all buffered output to the terminal.
	// A failure leaves the terminal in an unknown state and must be treated as fatal.
	Flush() error

	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int)

	// Caps returns the terminal's capabilities.
	Caps() Capabilities

	// EnterRawMode puts the terminal into raw mode for key-by-key input.
	EnterRawMode() error

	// ExitRawMode restores the terminal to its previous mode.
	ExitRawMode() error
}
