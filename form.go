package prompt

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/bubbles/key"

	"github.com/grindlemire/go-prompt/internal/debug"
)

// reservedRows is the number of rows a list form keeps for its prompt,
// pagination, hint and error lines.
const reservedRows = 4

// pageSizeFor returns how many items fit on a page of a terminal height rows tall.
// A configured size <= 0 means as many as fit.
func pageSizeFor(configured, height int) int {
	available := max(1, height-reservedRows)
	if configured <= 0 {
		return available
	}
	return min(configured, available)
}

type formState int

const (
	formActive formState = iota
	formCompleted
	formCanceled
)

func (s formState) String() string {
	switch s {
	case formActive:
		return "active"
	case formCompleted:
		return "completed"
	case formCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// session is the per-run state shared by every form: the text typed so far,
// the error to show on the next frame and the terminal size of the current frame.
type session struct {
	input   *InputBuffer
	err     string
	width   int
	height  int
	symbols Symbols
	unicode bool
}

// SetError shows msg under the form on the next frame only.
func (s *session) SetError(msg string) {
	s.err = msg
}

// formModel is what a concrete form supplies to the form loop.
type formModel[R any] interface {
	// name identifies the form in cancellation errors and logs.
	name() string
	// keys returns the form's key table. It is read once per run.
	keys() keyTable
	// handleText handles a printable, text-editing or directional key no binding consumed.
	handleText(ev KeyEvent) bool
	// render draws the active form.
	render(b *OffscreenBuffer)
	// tryFinish produces a result or records why it cannot.
	tryFinish() (R, bool)
	// finish draws the final frame for result.
	finish(b *OffscreenBuffer, result R)
}

// form drives a formModel through render and key dispatch until it completes or
// is canceled. Rendering and key handling strictly alternate.
type form[R any] struct {
	console Console
	buf     *OffscreenBuffer
	model   formModel[R]
	sess    *session
	table   keyTable
	state   formState
	result  R
	signals bool
}

func newForm[R any](p *Prompter, s *session, m formModel[R]) *form[R] {
	return &form[R]{
		console: p.console,
		buf:     NewOffscreenBuffer(p.console),
		model:   m,
		sess:    s,
		signals: p.signals,
	}
}

// newSession creates the session state for one form run.
func (p *Prompter) newSession(text string) *session {
	w, h := p.console.Size()
	return &session{
		input:   NewInputBuffer(text),
		width:   w,
		height:  h,
		symbols: *p.symbols,
		unicode: p.console.Caps().Unicode,
	}
}

// run blocks until the form completes or is canceled. Cancellation by key, signal
// or ctx erases the form and returns a *CanceledError.
func (f *form[R]) run(ctx context.Context) (R, error) {
	var zero R
	name := f.model.name()

	if f.signals {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	if err := f.console.EnterRawMode(); err != nil {
		return zero, err
	}
	defer func() {
		if err := f.console.ExitRawMode(); err != nil {
			debug.Log("%s: %v", name, err)
		}
	}()

	f.table = f.model.keys()
	debug.Log("%s: started", name)

	for f.state == formActive {
		if err := f.render(); err != nil {
			debug.Log("%s: render failed: %v", name, err)
			return zero, err
		}

		ev, err := f.console.ReadKey(ctx)
		if err != nil {
			if ctx.Err() != nil {
				f.state = formCanceled
				break
			}
			debug.Log("%s: read failed: %v", name, err)
			return zero, fmt.Errorf("read key: %w", err)
		}

		f.dispatch(ev)
	}

	switch f.state {
	case formCompleted:
		debug.Log("%s: completed", name)
		if err := f.buf.Render(func(b *OffscreenBuffer) { f.model.finish(b, f.result) }); err != nil {
			return zero, err
		}
		if err := f.buf.Close(); err != nil {
			return zero, err
		}
		return f.result, nil
	default:
		debug.Log("%s: canceled", name)
		f.buf.Cancel()
		if err := f.buf.Clear(); err != nil {
			return zero, err
		}
		return zero, &CanceledError{Prompt: name}
	}
}

// render draws the active form, followed by the pending error, which is then cleared.
func (f *form[R]) render() error {
	f.sess.width, f.sess.height = f.console.Size()
	return f.buf.Render(func(b *OffscreenBuffer) {
		f.model.render(b)
		if f.sess.err != "" {
			b.WriteLine()
			b.WriteError(f.sess.symbols.Error + " " + f.sess.err)
			f.sess.err = ""
		}
	})
}

// dispatch applies one key event: the key table first, then the text handler,
// otherwise the key is ignored.
func (f *form[R]) dispatch(ev KeyEvent) {
	if ev.IsPrintable() {
		debug.Log("%s: key rune", f.model.name())
	} else {
		debug.Log("%s: key %s", f.model.name(), ev)
	}

	switch {
	case key.Matches(ev, keys.Cancel):
		f.state = formCanceled
		return
	case key.Matches(ev, keys.Submit):
		f.tryFinish()
		return
	}

	if matched, handled := f.table.dispatch(ev); matched && handled {
		return
	}

	switch classify(ev) {
	case kindPrintable, kindTextEdit, kindDirectional:
		f.model.handleText(ev)
	}
}

func (f *form[R]) tryFinish() {
	result, ok := f.model.tryFinish()
	if !ok {
		debug.Log("%s: rejected: %s", f.model.name(), f.sess.err)
		return
	}
	f.result = result
	f.state = formCompleted
}

// editInput applies a text-editing or printable key to the session input.
// It reports whether the input changed.
func (s *session) editInput(ev KeyEvent) bool {
	in := s.input
	before, caret := in.String(), in.Caret()

	switch {
	case ev.IsPrintable():
		in.Insert(ev.Rune)
	case ev.Is(KeyBackspace, ModCtrl), ev.Is(KeyBackspace, ModAlt), ev.IsRune() && ev.Rune == 'w' && ev.Mod == ModCtrl:
		in.BackspaceWord()
	case ev.Key == KeyBackspace:
		in.Backspace()
	case ev.Key == KeyDelete:
		in.Delete()
	case ev.Key == KeyHome:
		in.MoveHome()
	case ev.Key == KeyEnd:
		in.MoveEnd()
	case ev.Key == KeyLeft:
		in.MoveLeft()
	case ev.Key == KeyRight:
		in.MoveRight()
	default:
		return false
	}

	return in.String() != before || in.Caret() != caret
}

// writeInput draws the input with the cursor mark at its caret.
func (s *session) writeInput(b *OffscreenBuffer) {
	before, after := s.input.Split()
	b.WritePlain(before)
	b.PushCursor()
	b.WritePlain(after)
}

// writePrompt draws the prompt symbol and message that start a form.
func (s *session) writePrompt(b *OffscreenBuffer, message string) {
	b.WritePrompt(s.symbols.Prompt)
	b.WritePlain(" " + message + " ")
}

// writeDone draws the completed form line: done symbol, message and answer.
func (s *session) writeDone(b *OffscreenBuffer, message, answer string) {
	b.WriteDone(s.symbols.Done)
	b.WritePlain(" " + message + " ")
	b.WriteAnswer(answer)
}

// writeHint draws the key hint for table on a new line.
func (s *session) writeHint(b *OffscreenBuffer, table keyTable) {
	bindings := append(table.bindings(), keys.Submit, keys.Cancel)
	if !s.unicode {
		bindings = asciiHint(bindings)
	}
	b.WriteLine()
	b.WriteHint(hintView(bindings))
}

// DefaultPagination formats the page hint of list forms, e.g. "(12 items, 1/3 pages)".
func DefaultPagination(total, current, count int) string {
	return fmt.Sprintf("(%d items, %d/%d pages)", total, current, count)
}
