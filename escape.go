package prompt

import "strconv"

// escBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// writeInt writes an integer to the buffer.
func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveUp moves the cursor up by n rows.
func (e *escBuilder) MoveUp(n int) {
	if n <= 0 {
		return
	}
	e.writeCSI()
	if n > 1 {
		e.writeInt(n)
	}
	e.buf = append(e.buf, 'A')
}

// MoveDown moves the cursor down by n rows.
func (e *escBuilder) MoveDown(n int) {
	if n <= 0 {
		return
	}
	e.writeCSI()
	if n > 1 {
		e.writeInt(n)
	}
	e.buf = append(e.buf, 'B')
}

// MoveToColumn moves the cursor to a 0-indexed column of the current row.
func (e *escBuilder) MoveToColumn(col int) {
	if col <= 0 {
		e.buf = append(e.buf, '\r')
		return
	}
	e.writeCSI()
	e.writeInt(col + 1) // Convert to 1-indexed
	e.buf = append(e.buf, 'G')
}

// NewLine moves to the start of the next row. Output processing is off in
// raw mode, so the carriage return is explicit.
func (e *escBuilder) NewLine() {
	e.buf = append(e.buf, '\r', '\n')
}

// ClearToEndOfScreen clears from cursor to end of screen (ESC[J or ESC[0J).
func (e *escBuilder) ClearToEndOfScreen() {
	e.writeCSI()
	e.buf = append(e.buf, 'J')
}

// ClearToEndOfLine clears from cursor to end of line (ESC[K).
func (e *escBuilder) ClearToEndOfLine() {
	e.writeCSI()
	e.buf = append(e.buf, 'K')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
