package prompt

import (
	"context"
	"strings"

	"github.com/mattn/go-runewidth"
)

// SelectOptions configures a Select form.
type SelectOptions[T comparable] struct {
	// Message is the question shown on the prompt line. Required.
	Message string
	// Items are the choices, shown in this order.
	Items []T
	// DefaultValue is highlighted when the form opens, if it is one of Items.
	DefaultValue *T
	// PageSize caps the items shown per page; <= 0 shows as many as the terminal fits.
	PageSize int
	// TextSelector returns an item's display text. Defaults to fmt.Sprint.
	TextSelector TextFunc[T]
	// Filter matches items against the typed keyword.
	Filter FilterFunc[T]
	// DisableSearch ignores typed text instead of filtering by it.
	DisableSearch bool
	// LoopingSelection wraps cursor and page movement around at the ends.
	LoopingSelection bool
	// Pagination formats the page hint. Defaults to DefaultPagination.
	Pagination func(total, current, count int) string
}

func (o *SelectOptions[T]) validate() error {
	if o.Message == "" {
		return optionError("Select", "Message", "must not be empty")
	}
	if o.TextSelector == nil {
		o.TextSelector = defaultText[T]
	}
	if o.Filter == nil {
		o.Filter = ContainsFilter(o.TextSelector)
	}
	if o.Pagination == nil {
		o.Pagination = DefaultPagination
	}
	return nil
}

// Select asks the user to pick one item. On cancellation it returns a *CanceledError.
func Select[T comparable](ctx context.Context, p *Prompter, opts SelectOptions[T]) (T, error) {
	if err := opts.validate(); err != nil {
		var zero T
		return zero, err
	}
	s := p.newSession("")
	return newForm[T](p, s, newSelectModel(opts, s)).run(ctx)
}

type selectModel[T comparable] struct {
	opts      SelectOptions[T]
	sess      *session
	paginator *Paginator[T]
}

func newSelectModel[T comparable](opts SelectOptions[T], s *session) *selectModel[T] {
	p := NewPaginator(opts.Items, pageSizeFor(opts.PageSize, s.height), opts.Filter)
	p.LoopingSelection = opts.LoopingSelection
	if opts.DefaultValue != nil {
		p.Select(*opts.DefaultValue)
	}
	return &selectModel[T]{opts: opts, sess: s, paginator: p}
}

func (m *selectModel[T]) name() string { return "Select" }

func (m *selectModel[T]) keys() keyTable {
	return keyTable{
		{keys.Up, func(KeyEvent) bool { m.paginator.PreviousItem(); return true }},
		{keys.Down, func(KeyEvent) bool { m.paginator.NextItem(); return true }},
		{keys.PrevPage, func(KeyEvent) bool { m.paginator.PreviousPage(); return true }},
		{keys.NextPage, func(KeyEvent) bool { m.paginator.NextPage(); return true }},
	}
}

func (m *selectModel[T]) handleText(ev KeyEvent) bool {
	if m.opts.DisableSearch || classify(ev) == kindDirectional {
		return false
	}
	if !m.sess.editInput(ev) {
		return false
	}
	if kw := m.sess.input.String(); kw != m.paginator.FilterKeyword() {
		m.paginator.UpdateFilter(kw)
	}
	return true
}

func (m *selectModel[T]) render(b *OffscreenBuffer) {
	m.paginator.UpdatePageSize(pageSizeFor(m.opts.PageSize, m.sess.height))
	sym := m.sess.symbols

	m.sess.writePrompt(b, m.opts.Message)
	m.sess.writeInput(b)

	pad := strings.Repeat(" ", runewidth.StringWidth(sym.Selector)+1)
	for i, item := range m.paginator.CurrentItems() {
		b.WriteLine()
		if i == m.paginator.CurrentIndex() {
			b.WriteSelect(sym.Selector + " " + m.opts.TextSelector(item))
		} else {
			b.WritePlain(pad + m.opts.TextSelector(item))
		}
	}

	if m.paginator.PageCount() > 1 {
		b.WriteLine()
		b.WriteHint(m.opts.Pagination(m.paginator.TotalCount(), m.paginator.CurrentPage()+1, m.paginator.PageCount()))
	}

	if m.paginator.TotalCount() == 0 {
		b.WriteLine()
		b.WriteError("No matches found")
		return
	}
	m.sess.writeHint(b, m.keys())
}

func (m *selectModel[T]) tryFinish() (T, bool) {
	item, ok := m.paginator.SelectedItem()
	if !ok {
		m.sess.SetError("No item selected")
	}
	return item, ok
}

func (m *selectModel[T]) finish(b *OffscreenBuffer, result T) {
	m.sess.writeDone(b, m.opts.Message, m.opts.TextSelector(result))
}
