package prompt

import "iter"

// Paginator windows a filterable collection into pages and tracks the item under
// the cursor. The zero value is not usable; create one with NewPaginator.
type Paginator[T comparable] struct {
	items    []T
	filtered []T
	filter   FilterFunc[T]
	keyword  string

	pageSize int
	page     int
	index    int // in-page cursor, -1 when no item is current

	// LoopingSelection makes item and page navigation wrap around at the ends.
	LoopingSelection bool
}

// NewPaginator creates a paginator over items. A pageSize <= 0 shows every item
// on one page. A nil filter matches items whose text contains the keyword.
func NewPaginator[T comparable](items []T, pageSize int, filter FilterFunc[T]) *Paginator[T] {
	if filter == nil {
		filter = ContainsFilter[T](nil)
	}
	p := &Paginator[T]{
		items:  items,
		filter: filter,
	}
	p.pageSize = p.normalizeSize(pageSize)
	p.UpdateFilter("")
	return p
}

func (p *Paginator[T]) normalizeSize(n int) int {
	if n <= 0 {
		n = len(p.items)
	}
	return max(n, 1)
}

// UpdateFilter recomputes the filtered items for keyword and moves the cursor to
// the first item of the first page.
func (p *Paginator[T]) UpdateFilter(keyword string) {
	p.keyword = keyword
	if keyword == "" {
		p.filtered = p.items
	} else {
		p.filtered = make([]T, 0, len(p.items))
		for _, item := range p.items {
			if p.filter(item, keyword) {
				p.filtered = append(p.filtered, item)
			}
		}
	}

	p.page = 0
	p.index = 0
	if len(p.filtered) == 0 {
		p.index = -1
	}
}

// UpdatePageSize changes the page size, keeping the cursor on the same item.
func (p *Paginator[T]) UpdatePageSize(n int) {
	n = p.normalizeSize(n)
	if n == p.pageSize {
		return
	}
	if p.index < 0 {
		p.pageSize = n
		p.page = 0
		return
	}
	abs := p.page*p.pageSize + p.index
	p.pageSize = n
	p.page = abs / n
	p.index = abs % n
}

// Select moves the cursor to item if it is in the filtered set.
func (p *Paginator[T]) Select(item T) bool {
	for i, v := range p.filtered {
		if v == item {
			p.page = i / p.pageSize
			p.index = i % p.pageSize
			return true
		}
	}
	return false
}

// PreviousItem moves the cursor up within the current page.
func (p *Paginator[T]) PreviousItem() {
	if p.index < 0 {
		return
	}
	switch {
	case p.index > 0:
		p.index--
	case p.LoopingSelection:
		p.index = p.pageLen() - 1
	}
}

// NextItem moves the cursor down within the current page.
func (p *Paginator[T]) NextItem() {
	if p.index < 0 {
		return
	}
	switch {
	case p.index < p.pageLen()-1:
		p.index++
	case p.LoopingSelection:
		p.index = 0
	}
}

// PreviousPage moves to the previous page, keeping the in-page index when it is valid.
func (p *Paginator[T]) PreviousPage() {
	if p.index < 0 {
		return
	}
	switch {
	case p.page > 0:
		p.page--
	case p.LoopingSelection:
		p.page = p.PageCount() - 1
	default:
		return
	}
	p.index = min(p.index, p.pageLen()-1)
}

// NextPage moves to the next page, clamping the in-page index to the page's last item.
func (p *Paginator[T]) NextPage() {
	if p.index < 0 {
		return
	}
	switch {
	case p.page < p.PageCount()-1:
		p.page++
	case p.LoopingSelection:
		p.page = 0
	default:
		return
	}
	p.index = min(p.index, p.pageLen()-1)
}

// SelectedItem returns the item under the cursor. ok is false when nothing matches the filter.
func (p *Paginator[T]) SelectedItem() (item T, ok bool) {
	if p.index < 0 {
		return item, false
	}
	return p.filtered[p.page*p.pageSize+p.index], true
}

// All yields every filtered item in source order, across all pages.
func (p *Paginator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range p.filtered {
			if !yield(item) {
				return
			}
		}
	}
}

// CurrentItems returns the filtered items on the current page.
func (p *Paginator[T]) CurrentItems() []T {
	start := p.page * p.pageSize
	if start >= len(p.filtered) {
		return nil
	}
	return p.filtered[start:min(start+p.pageSize, len(p.filtered))]
}

func (p *Paginator[T]) pageLen() int {
	return len(p.CurrentItems())
}

// TotalCount returns the number of filtered items.
func (p *Paginator[T]) TotalCount() int { return len(p.filtered) }

// PageCount returns the number of pages. An empty result still has one page.
func (p *Paginator[T]) PageCount() int {
	return max(1, (len(p.filtered)+p.pageSize-1)/p.pageSize)
}

// CurrentPage returns the 0-indexed current page.
func (p *Paginator[T]) CurrentPage() int { return p.page }

// CurrentIndex returns the in-page cursor, or -1 when no item is current.
func (p *Paginator[T]) CurrentIndex() int { return p.index }

// PageSize returns the current page size.
func (p *Paginator[T]) PageSize() int { return p.pageSize }

// FilterKeyword returns the keyword the items are filtered by.
func (p *Paginator[T]) FilterKeyword() string { return p.keyword }
