package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// MultiSelectOptions configures a MultiSelect form.
type MultiSelectOptions[T comparable] struct {
	// Message is the question shown on the prompt line. Required.
	Message string
	// Items are the choices, shown in this order.
	Items []T
	// DefaultValues are selected when the form opens.
	DefaultValues []T
	// PageSize caps the items shown per page; <= 0 shows as many as the terminal fits.
	PageSize int
	// Minimum is the fewest items that may be submitted.
	Minimum int
	// Maximum is the most items that may be selected; <= 0 means no limit.
	Maximum int
	// TextSelector returns an item's display text. Defaults to fmt.Sprint.
	TextSelector TextFunc[T]
	// Filter matches items against the typed keyword. Defaults to a
	// case-insensitive substring match on the display text.
	Filter FilterFunc[T]
	// DisableSearch ignores typed text instead of filtering by it.
	DisableSearch bool
	// LoopingSelection wraps cursor and page movement around at the ends.
	LoopingSelection bool
	// Pagination formats the page hint. Defaults to DefaultPagination.
	Pagination func(total, current, count int) string
}

func (o *MultiSelectOptions[T]) validate() error {
	const name = "MultiSelect"
	switch {
	case o.Message == "":
		return optionError(name, "Message", "must not be empty")
	case o.Minimum < 0:
		return optionError(name, "Minimum", "must not be negative, got %d", o.Minimum)
	case o.Maximum > 0 && o.Minimum > o.Maximum:
		return optionError(name, "Minimum", "%d exceeds Maximum %d", o.Minimum, o.Maximum)
	case o.Minimum > len(o.Items):
		return optionError(name, "Minimum", "%d exceeds the %d items", o.Minimum, len(o.Items))
	}

	items := make(selectionSet[T], len(o.Items))
	for _, item := range o.Items {
		items[item] = struct{}{}
	}
	defaults := make([]T, 0, len(o.DefaultValues))
	seen := make(selectionSet[T], len(o.DefaultValues))
	for _, v := range o.DefaultValues {
		if !items.has(v) {
			return optionError(name, "DefaultValues", "%v is not one of the items", v)
		}
		if seen.has(v) {
			continue
		}
		seen[v] = struct{}{}
		defaults = append(defaults, v)
	}
	if o.Maximum > 0 && len(defaults) > o.Maximum {
		return optionError(name, "DefaultValues", "%d values exceed Maximum %d", len(defaults), o.Maximum)
	}
	o.DefaultValues = defaults

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

// MultiSelect asks the user to pick any number of items between the Minimum and
// Maximum. The result keeps the order of opts.Items regardless of filtering.
// On cancellation it returns a *CanceledError.
func MultiSelect[T comparable](ctx context.Context, p *Prompter, opts MultiSelectOptions[T]) ([]T, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	s := p.newSession("")
	m := newMultiSelectModel(opts, s)
	return newForm[[]T](p, s, m).run(ctx)
}

// selectionSet is the set of chosen items, independent of the cursor and filter.
type selectionSet[T comparable] map[T]struct{}

func (s selectionSet[T]) has(item T) bool {
	_, ok := s[item]
	return ok
}

type multiSelectModel[T comparable] struct {
	opts      MultiSelectOptions[T]
	sess      *session
	paginator *Paginator[T]
	selected  selectionSet[T]
}

func newMultiSelectModel[T comparable](opts MultiSelectOptions[T], s *session) *multiSelectModel[T] {
	p := NewPaginator(opts.Items, pageSizeFor(opts.PageSize, s.height), opts.Filter)
	p.LoopingSelection = opts.LoopingSelection

	m := &multiSelectModel[T]{
		opts:      opts,
		sess:      s,
		paginator: p,
		selected:  make(selectionSet[T], len(opts.DefaultValues)),
	}
	for _, v := range opts.DefaultValues {
		m.selected[v] = struct{}{}
	}
	return m
}

func (m *multiSelectModel[T]) name() string { return "MultiSelect" }

func (m *multiSelectModel[T]) keys() keyTable {
	return keyTable{
		{keys.Up, m.previousItem},
		{keys.Down, m.nextItem},
		{keys.PrevPage, m.previousPage},
		{keys.NextPage, m.nextPage},
		{keys.Toggle, m.toggle},
		{keys.ToggleAll, m.toggleAll},
		{keys.Invert, m.invert},
		{keys.Backspace, m.backspace},
		{keys.DeleteWord, m.backspace},
	}
}

func (m *multiSelectModel[T]) previousItem(KeyEvent) bool {
	m.paginator.PreviousItem()
	return true
}

func (m *multiSelectModel[T]) nextItem(KeyEvent) bool {
	m.paginator.NextItem()
	return true
}

func (m *multiSelectModel[T]) previousPage(KeyEvent) bool {
	m.paginator.PreviousPage()
	return true
}

func (m *multiSelectModel[T]) nextPage(KeyEvent) bool {
	m.paginator.NextPage()
	return true
}

func (m *multiSelectModel[T]) maximumError() {
	m.sess.SetError(fmt.Sprintf("A maximum selection of %d items is allowed", m.opts.Maximum))
}

func (m *multiSelectModel[T]) exceedsMaximum(n int) bool {
	return m.opts.Maximum > 0 && n > m.opts.Maximum
}

// toggle flips the highlighted item, refusing to select past the Maximum.
func (m *multiSelectModel[T]) toggle(KeyEvent) bool {
	item, ok := m.paginator.SelectedItem()
	if !ok {
		return false
	}
	if m.selected.has(item) {
		delete(m.selected, item)
		return true
	}
	if m.exceedsMaximum(len(m.selected) + 1) {
		m.maximumError()
		return true
	}
	m.selected[item] = struct{}{}
	return true
}

// toggleAll deselects the filtered items when all of them are selected and
// selects them otherwise. Items outside the filter keep their state.
func (m *multiSelectModel[T]) toggleAll(KeyEvent) bool {
	missing := 0
	for item := range m.paginator.All() {
		if !m.selected.has(item) {
			missing++
		}
	}

	if missing == 0 {
		for item := range m.paginator.All() {
			delete(m.selected, item)
		}
		return true
	}

	if m.exceedsMaximum(len(m.selected) + missing) {
		m.maximumError()
		return true
	}
	for item := range m.paginator.All() {
		m.selected[item] = struct{}{}
	}
	return true
}

// invert swaps the selection state of every filtered item.
func (m *multiSelectModel[T]) invert(KeyEvent) bool {
	next := make(selectionSet[T], len(m.selected))
	for item := range m.selected {
		next[item] = struct{}{}
	}
	for item := range m.paginator.All() {
		if next.has(item) {
			delete(next, item)
		} else {
			next[item] = struct{}{}
		}
	}

	if m.exceedsMaximum(len(next)) {
		m.maximumError()
		return true
	}
	m.selected = next
	return true
}

func (m *multiSelectModel[T]) backspace(ev KeyEvent) bool {
	if m.sess.input.IsStart() {
		return false
	}
	return m.handleText(ev)
}

func (m *multiSelectModel[T]) handleText(ev KeyEvent) bool {
	if m.opts.DisableSearch || classify(ev) == kindDirectional {
		return false
	}
	// Space is reserved for toggling.
	if ev.IsRune() && ev.Rune == ' ' {
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

func (m *multiSelectModel[T]) render(b *OffscreenBuffer) {
	m.paginator.UpdatePageSize(pageSizeFor(m.opts.PageSize, m.sess.height))
	sym := m.sess.symbols

	m.sess.writePrompt(b, m.opts.Message)
	m.sess.writeInput(b)

	pad := strings.Repeat(" ", runewidth.StringWidth(sym.Selector)+1)
	for i, item := range m.paginator.CurrentItems() {
		text := m.opts.TextSelector(item)
		mark := sym.NotSelected
		if m.selected.has(item) {
			mark = sym.Selected
		}

		b.WriteLine()
		switch {
		case i == m.paginator.CurrentIndex():
			b.WriteSelect(sym.Selector + " " + mark + " " + text)
		case m.selected.has(item):
			b.WriteSelect(pad + mark + " " + text)
		default:
			b.WritePlain(pad + mark + " " + text)
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

func (m *multiSelectModel[T]) tryFinish() ([]T, bool) {
	if len(m.selected) < m.opts.Minimum {
		m.sess.SetError(fmt.Sprintf("A minimum selection of %d items is required", m.opts.Minimum))
		return nil, false
	}

	result := make([]T, 0, len(m.selected))
	for _, item := range m.opts.Items {
		if m.selected.has(item) {
			result = append(result, item)
		}
	}
	return result, true
}

func (m *multiSelectModel[T]) finish(b *OffscreenBuffer, result []T) {
	texts := make([]string, len(result))
	for i, item := range result {
		texts[i] = m.opts.TextSelector(item)
	}
	m.sess.writeDone(b, m.opts.Message, strings.Join(texts, ", "))
}
