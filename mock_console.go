package prompt

import (
	"context"
	"io"
	"strings"
)

// mockCell is one character cell of a MockConsole screen.
type mockCell struct {
	r    rune
	kind StyleKind
	cont bool // right half of a wide rune
}

var blankCell = mockCell{r: ' '}

// MockConsole is an in-memory Console for testing.
// It emulates a character grid with a caret, line wrapping and scrolling the way a
// VT terminal does, replays queued key events, and counts output operations.
type MockConsole struct {
	width, height int
	cells         []mockCell
	cursorX       int // == width while a wrap is pending
	cursorY       int
	cursorHidden  bool
	inRawMode     bool
	caps          Capabilities

	keys      []KeyEvent
	writes    []string
	ops       int
	flushes   int
	flushErr  error
	onReadKey func(*MockConsole)
}

// Ensure MockConsole implements Console.
var _ Console = (*MockConsole)(nil)

// NewMockConsole creates a mock console with the given dimensions and a blank screen.
func NewMockConsole(width, height int) *MockConsole {
	m := &MockConsole{
		width:  width,
		height: height,
		cells:  make([]mockCell, width*height),
		caps:   Capabilities{Colors: Color256, Unicode: true},
	}
	m.fill(0, len(m.cells))
	return m
}

func (m *MockConsole) fill(from, to int) {
	for i := from; i < to && i < len(m.cells); i++ {
		m.cells[i] = blankCell
	}
}

// QueueKeys appends key events to be returned by ReadKey.
func (m *MockConsole) QueueKeys(keys ...KeyEvent) {
	m.keys = append(m.keys, keys...)
}

// QueueText queues one rune event per character of s.
func (m *MockConsole) QueueText(s string) {
	for _, r := range s {
		m.keys = append(m.keys, KeyEvent{Key: KeyRune, Rune: r})
	}
}

// OnReadKey registers fn to run before every ReadKey call.
func (m *MockConsole) OnReadKey(fn func(*MockConsole)) {
	m.onReadKey = fn
}

// ReadKey returns the next queued key event, or io.EOF once the queue is empty.
func (m *MockConsole) ReadKey(ctx context.Context) (KeyEvent, error) {
	if m.onReadKey != nil {
		m.onReadKey(m)
	}
	if err := ctx.Err(); err != nil {
		return KeyEvent{}, err
	}
	if len(m.keys) == 0 {
		return KeyEvent{}, io.EOF
	}
	ev := m.keys[0]
	m.keys = m.keys[1:]
	return ev, nil
}

// Write draws text at the caret, wrapping at the right edge.
func (m *MockConsole) Write(text string, kind StyleKind) {
	m.ops++
	m.writes = append(m.writes, text)
	for _, r := range text {
		w := runeCells(r)
		if w == 0 {
			continue
		}
		if m.cursorX > 0 && m.cursorX+w > m.width {
			m.cursorX = 0
			m.lineFeed()
		}
		idx := m.cursorY*m.width + m.cursorX
		m.cells[idx] = mockCell{r: r, kind: kind}
		for i := 1; i < w && m.cursorX+i < m.width; i++ {
			m.cells[idx+i] = mockCell{kind: kind, cont: true}
		}
		m.cursorX += w
	}
}

// lineFeed moves the caret down one row, scrolling the screen at the bottom.
func (m *MockConsole) lineFeed() {
	if m.cursorY < m.height-1 {
		m.cursorY++
		return
	}
	copy(m.cells, m.cells[m.width:])
	m.fill(len(m.cells)-m.width, len(m.cells))
}

// NewLine moves the caret to the start of the next row.
func (m *MockConsole) NewLine() {
	m.ops++
	m.cursorX = 0
	m.lineFeed()
}

// MoveUp moves the caret up, stopping at the top row.
func (m *MockConsole) MoveUp(n int) {
	m.ops++
	m.cursorY = max(0, m.cursorY-n)
	m.cursorX = min(m.cursorX, m.width-1)
}

// MoveDown moves the caret down, stopping at the bottom row.
func (m *MockConsole) MoveDown(n int) {
	m.ops++
	m.cursorY = min(m.height-1, m.cursorY+n)
	m.cursorX = min(m.cursorX, m.width-1)
}

// MoveToColumn moves the caret within the current row.
func (m *MockConsole) MoveToColumn(col int) {
	m.ops++
	m.cursorX = max(0, min(col, m.width-1))
}

// ClearToEnd clears from the caret to the end of the screen.
func (m *MockConsole) ClearToEnd() {
	m.ops++
	m.fill(m.cursorY*m.width+min(m.cursorX, m.width-1), len(m.cells))
}

// ClearLineEnd clears from the caret to the end of the row.
func (m *MockConsole) ClearLineEnd() {
	m.ops++
	row := m.cursorY * m.width
	m.fill(row+min(m.cursorX, m.width-1), row+m.width)
}

// HideCursor makes the cursor invisible.
func (m *MockConsole) HideCursor() {
	m.ops++
	m.cursorHidden = true
}

// ShowCursor makes the cursor visible.
func (m *MockConsole) ShowCursor() {
	m.ops++
	m.cursorHidden = false
}

// Flush returns the error set by FailFlush, if any. Flushes are not counted as ops.
func (m *MockConsole) Flush() error {
	m.flushes++
	return m.flushErr
}

// Size returns the console dimensions.
func (m *MockConsole) Size() (width, height int) {
	return m.width, m.height
}

// Caps returns the console's capabilities.
func (m *MockConsole) Caps() Capabilities {
	return m.caps
}

// EnterRawMode simulates entering raw mode.
func (m *MockConsole) EnterRawMode() error {
	m.inRawMode = true
	return nil
}

// ExitRawMode simulates exiting raw mode.
func (m *MockConsole) ExitRawMode() error {
	m.inRawMode = false
	return nil
}

// --- Test helper methods ---

// SetCaps sets the console's capabilities.
func (m *MockConsole) SetCaps(caps Capabilities) {
	m.caps = caps
}

// FailFlush makes every later Flush return err.
func (m *MockConsole) FailFlush(err error) {
	m.flushErr = err
}

// Ops returns the number of output operations performed since the last ResetOps.
func (m *MockConsole) Ops() int {
	return m.ops
}

// Flushes returns the number of Flush calls since the last ResetOps.
func (m *MockConsole) Flushes() int {
	return m.flushes
}

// Writes returns the text of every Write since the last ResetOps.
func (m *MockConsole) Writes() []string {
	return m.writes
}

// ResetOps zeroes the operation counters.
func (m *MockConsole) ResetOps() {
	m.ops = 0
	m.flushes = 0
	m.writes = nil
}

// Cursor returns the caret position. While a wrap is pending x equals the width.
func (m *MockConsole) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

// IsCursorHidden returns whether the cursor is hidden.
func (m *MockConsole) IsCursorHidden() bool {
	return m.cursorHidden
}

// IsInRawMode returns whether the console is in raw mode.
func (m *MockConsole) IsInRawMode() bool {
	return m.inRawMode
}

// StyleAt returns the style of the cell at the given position.
func (m *MockConsole) StyleAt(x, y int) StyleKind {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return StylePlain
	}
	return m.cells[y*m.width+x].kind
}

// Resize changes the console dimensions. Content is kept where it still fits.
func (m *MockConsole) Resize(width, height int) {
	cells := make([]mockCell, width*height)
	for i := range cells {
		cells[i] = blankCell
	}
	for y := 0; y < min(height, m.height); y++ {
		for x := 0; x < min(width, m.width); x++ {
			cells[y*width+x] = m.cells[y*m.width+x]
		}
	}
	m.width, m.height, m.cells = width, height, cells
	m.cursorX = min(m.cursorX, width)
	m.cursorY = min(m.cursorY, height-1)
}

// Rows returns the screen content row by row with trailing spaces removed.
func (m *MockConsole) Rows() []string {
	rows := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		var sb strings.Builder
		for x := 0; x < m.width; x++ {
			c := m.cells[y*m.width+x]
			if c.cont {
				continue
			}
			sb.WriteRune(c.r)
		}
		rows[y] = strings.TrimRight(sb.String(), " ")
	}
	return rows
}

// String renders the screen for snapshot testing. Trailing blank rows are omitted.
func (m *MockConsole) String() string {
	rows := m.Rows()
	n := len(rows)
	for n > 0 && rows[n-1] == "" {
		n--
	}
	return strings.Join(rows[:n], "\n")
}
