package prompt

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-prompt/internal/debug"
)

// span is a run of text drawn with a single style.
type span struct {
	text string
	kind StyleKind
}

// line is one logical line of a frame. It may wrap over several terminal rows.
type line struct {
	spans []span
	width int // display width in cells
}

func (l line) equal(o line) bool {
	if l.width != o.width || len(l.spans) != len(o.spans) {
		return false
	}
	for i := range l.spans {
		if l.spans[i] != o.spans[i] {
			return false
		}
	}
	return true
}

// String returns the unstyled text of the line.
func (l line) String() string {
	var sb strings.Builder
	for _, s := range l.spans {
		sb.WriteString(s.text)
	}
	return sb.String()
}

// extent returns how many rows the line occupies on a terminal of the given width
// and the caret column after it has been written.
func (l line) extent(width int) (rows, lastCol int) {
	row, col := 0, 0
	for _, s := range l.spans {
		for _, r := range s.text {
			row, col = advance(row, col, runeCells(r), width)
		}
	}
	return row + 1, col
}

// position returns the row and column within the line where the caret sits after
// the first cells display columns have been written.
func (l line) position(cells, width int) (row, col int) {
	acc := 0
	for _, s := range l.spans {
		for _, r := range s.text {
			if acc >= cells {
				return row, col
			}
			w := runeCells(r)
			row, col = advance(row, col, w, width)
			acc += w
		}
	}
	return row, col
}

// frame is the content produced by one render pass.
type frame struct {
	lines    []line
	markLine int
	markCol  int
	marked   bool
}

func newFrame() frame {
	return frame{lines: []line{{}}}
}

func (f *frame) last() *line {
	return &f.lines[len(f.lines)-1]
}

func (f *frame) write(text string, kind StyleKind) {
	if text == "" {
		return
	}
	l := f.last()
	for _, r := range text {
		l.width += runeCells(r)
	}
	if n := len(l.spans); n > 0 && l.spans[n-1].kind == kind {
		l.spans[n-1].text += text
		return
	}
	l.spans = append(l.spans, span{text: text, kind: kind})
}

func (f frame) equal(o frame) bool {
	if len(f.lines) != len(o.lines) || f.markLine != o.markLine || f.markCol != o.markCol {
		return false
	}
	for i := range f.lines {
		if !f.lines[i].equal(o.lines[i]) {
			return false
		}
	}
	return true
}

// layout returns the first terminal row of every line relative to the frame origin.
func (f frame) layout(width int) []int {
	offsets := make([]int, len(f.lines))
	row := 0
	for i, l := range f.lines {
		offsets[i] = row
		rows, _ := l.extent(width)
		row += rows
	}
	return offsets
}

// RenderScope is one render pass. Closing it diffs the frame built since
// BeginRender against the frame on screen and flushes the difference.
type RenderScope struct {
	buf      *OffscreenBuffer
	frame    frame
	canceled bool
	closed   bool
}

// Close releases the scope. Unless the scope was canceled, the new frame is diffed
// against the committed one, the changes are flushed and the frame becomes the new
// baseline. Closing twice is a no-op.
func (s *RenderScope) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.buf.scope = nil

	if s.canceled {
		debug.Log("buffer: render canceled, %d pending lines discarded", len(s.frame.lines))
		return nil
	}
	return s.buf.commit(s.frame)
}

// OffscreenBuffer accumulates one frame of styled lines per render pass and
// turns it into the minimal console updates against the previously committed frame.
//
// The frame is drawn inline starting at the caret position the console had when the
// first frame was flushed, which is expected to be the start of a row.
type OffscreenBuffer struct {
	console Console

	committed      frame
	committedWidth int
	drawn          bool // committed is on screen

	// Caret position relative to the first row of the committed frame.
	caretRow int
	caretCol int

	scope *RenderScope
}

// NewOffscreenBuffer creates a buffer drawing to c.
func NewOffscreenBuffer(c Console) *OffscreenBuffer {
	return &OffscreenBuffer{console: c}
}

// BeginRender starts a render pass. The returned scope must be closed to
// flush the frame; only one scope may be active at a time.
func (b *OffscreenBuffer) BeginRender() (*RenderScope, error) {
	if b.scope != nil {
		return nil, ErrRenderActive
	}
	b.scope = &RenderScope{buf: b, frame: newFrame()}
	return b.scope, nil
}

// Render runs fn inside a render scope. The scope is always released; if fn
// panics the partial frame is discarded and the screen keeps the last committed frame.
func (b *OffscreenBuffer) Render(fn func(*OffscreenBuffer)) (err error) {
	scope, err := b.BeginRender()
	if err != nil {
		return err
	}

	completed := false
	defer func() {
		if !completed {
			scope.canceled = true
		}
		if cerr := scope.Close(); err == nil {
			err = cerr
		}
	}()

	fn(b)
	completed = true
	return nil
}

// Cancel aborts the active render pass: when its scope is released nothing is
// written, leaving the terminal exactly as it was before the pass began.
// Cancel is a no-op outside a render pass.
func (b *OffscreenBuffer) Cancel() {
	if b.scope != nil {
		b.scope.canceled = true
	}
}

func (b *OffscreenBuffer) active() *frame {
	if b.scope == nil {
		panic(ErrNoRenderScope)
	}
	return &b.scope.frame
}

// Write appends text in the given style to the current line. Newlines in text
// start new lines. Write panics with ErrNoRenderScope outside a render pass.
func (b *OffscreenBuffer) Write(text string, kind StyleKind) {
	f := b.active()
	parts := strings.Split(sanitizeText(text), "\n")
	for i, part := range parts {
		if i > 0 {
			f.lines = append(f.lines, line{})
		}
		f.write(part, kind)
	}
}

// WriteLine starts a new line.
func (b *OffscreenBuffer) WriteLine() {
	f := b.active()
	f.lines = append(f.lines, line{})
}

// PushCursor marks the current end of the frame as the position the caret returns
// to once the frame is flushed. Without a mark the caret rests at the end of the frame.
func (b *OffscreenBuffer) PushCursor() {
	f := b.active()
	f.markLine = len(f.lines) - 1
	f.markCol = f.last().width
	f.marked = true
}

// WritePlain writes unstyled text.
func (b *OffscreenBuffer) WritePlain(text string) { b.Write(text, StylePlain) }

// WritePrompt writes text in the prompt style.
func (b *OffscreenBuffer) WritePrompt(text string) { b.Write(text, StylePrompt) }

// WriteDone writes text in the done style.
func (b *OffscreenBuffer) WriteDone(text string) { b.Write(text, StyleDone) }

// WriteHint writes text in the hint style.
func (b *OffscreenBuffer) WriteHint(text string) { b.Write(text, StyleHint) }

// WriteError writes text in the error style.
func (b *OffscreenBuffer) WriteError(text string) { b.Write(text, StyleError) }

// WriteSelect writes text in the selected style.
func (b *OffscreenBuffer) WriteSelect(text string) { b.Write(text, StyleSelected) }

// WriteAnswer writes text in the answer style.
func (b *OffscreenBuffer) WriteAnswer(text string) { b.Write(text, StyleAnswer) }

// Lines returns the unstyled text of the committed frame.
func (b *OffscreenBuffer) Lines() []string {
	if !b.drawn {
		return nil
	}
	out := make([]string, len(b.committed.lines))
	for i, l := range b.committed.lines {
		out[i] = l.String()
	}
	return out
}

func (b *OffscreenBuffer) width() int {
	w, _ := b.console.Size()
	if w < 1 {
		w = 1
	}
	return w
}

// commit makes next the frame on screen, writing only what changed.
func (b *OffscreenBuffer) commit(next frame) error {
	if !next.marked {
		next.markLine = len(next.lines) - 1
		next.markCol = next.last().width
	}

	width := b.width()
	if b.drawn && width == b.committedWidth && b.committed.equal(next) {
		return nil
	}

	b.console.HideCursor()
	switch {
	case !b.drawn:
		b.writeLines(next.lines, width)
	case width != b.committedWidth:
		// Row accounting of the old frame is unreliable after a resize; redraw it all.
		b.moveTo(0, 0)
		b.console.ClearToEnd()
		b.writeLines(next.lines, width)
	default:
		b.patch(next, width)
	}

	offsets := next.layout(width)
	row, col := next.lines[next.markLine].position(next.markCol, width)
	b.moveTo(offsets[next.markLine]+row, col)
	b.console.ShowCursor()

	b.committed = next
	b.committedWidth = width
	b.drawn = true

	if err := b.console.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// patch rewrites the lines of next that differ from the committed frame.
// Changed lines that keep their row count are rewritten in place; from the first
// line whose row count changes, everything below is cleared and redrawn.
func (b *OffscreenBuffer) patch(next frame, width int) {
	old := b.committed.lines
	oldOffsets := b.committed.layout(width)
	n := min(len(old), len(next.lines))

	rewritten := 0
	j := 0
	for ; j < n; j++ {
		if old[j].equal(next.lines[j]) {
			continue
		}
		oldRows, _ := old[j].extent(width)
		newRows, lastCol := next.lines[j].extent(width)
		if oldRows != newRows {
			break
		}
		b.moveTo(oldOffsets[j], 0)
		b.writeLine(next.lines[j], oldOffsets[j], width)
		if lastCol < width {
			b.console.ClearLineEnd()
		}
		rewritten++
	}

	switch {
	case j < len(old):
		b.moveTo(oldOffsets[j], 0)
		b.console.ClearToEnd()
		if j < len(next.lines) {
			b.writeLine(next.lines[j], oldOffsets[j], width)
			b.appendLines(next.lines[j+1:], width)
		}
		rewritten += len(next.lines) - j
	case j < len(next.lines):
		lastRows, lastCol := old[len(old)-1].extent(width)
		b.moveTo(oldOffsets[len(old)-1]+lastRows-1, lastCol)
		b.appendLines(next.lines[j:], width)
		rewritten += len(next.lines) - j
	}

	debug.Log("buffer: patched %d of %d lines (first structural change at %d)", rewritten, len(next.lines), j)
}

// writeLines writes a whole frame starting at the frame origin.
func (b *OffscreenBuffer) writeLines(lines []line, width int) {
	b.writeLine(lines[0], 0, width)
	b.appendLines(lines[1:], width)
}

// appendLines writes lines below the caret, each on a new row.
func (b *OffscreenBuffer) appendLines(lines []line, width int) {
	for _, l := range lines {
		b.console.NewLine()
		b.caretRow++
		b.caretCol = 0
		b.writeLine(l, b.caretRow, width)
	}
}

// writeLine writes l with the caret at column 0 of startRow.
func (b *OffscreenBuffer) writeLine(l line, startRow, width int) {
	for _, s := range l.spans {
		b.console.Write(s.text, s.kind)
	}
	rows, lastCol := l.extent(width)
	b.caretRow = startRow + rows - 1
	b.caretCol = lastCol
}

// moveTo moves the caret to a row and column relative to the frame origin.
func (b *OffscreenBuffer) moveTo(row, col int) {
	switch {
	case row < b.caretRow:
		b.console.MoveUp(b.caretRow - row)
	case row > b.caretRow:
		b.console.MoveDown(row - b.caretRow)
	}
	if col != b.caretCol {
		b.console.MoveToColumn(col)
	}
	b.caretRow = row
	b.caretCol = col
}

// Clear erases the committed frame from the terminal and leaves the caret at the
// frame origin, as if nothing had been drawn.
func (b *OffscreenBuffer) Clear() error {
	if !b.drawn {
		return nil
	}
	b.moveTo(0, 0)
	b.console.ClearToEnd()
	b.console.ShowCursor()
	b.reset()

	if err := b.console.Flush(); err != nil {
		return fmt.Errorf("clear frame: %w", err)
	}
	return nil
}

// Close leaves the committed frame on screen and moves the caret to the start of
// the row below it, so later output does not overwrite it.
func (b *OffscreenBuffer) Close() error {
	if !b.drawn {
		return nil
	}
	width := b.committedWidth
	offsets := b.committed.layout(width)
	lastLine := len(b.committed.lines) - 1
	rows, _ := b.committed.lines[lastLine].extent(width)
	if lastRow := offsets[lastLine] + rows - 1; lastRow > b.caretRow {
		b.console.MoveDown(lastRow - b.caretRow)
	}
	b.console.NewLine()
	b.console.ShowCursor()
	b.reset()

	if err := b.console.Flush(); err != nil {
		return fmt.Errorf("close frame: %w", err)
	}
	return nil
}

func (b *OffscreenBuffer) reset() {
	b.committed = frame{}
	b.committedWidth = 0
	b.drawn = false
	b.caretRow = 0
	b.caretCol = 0
}
