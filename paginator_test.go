package prompt

import (
	"slices"
	"strings"
	"testing"
)

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestPaginator_Navigation(t *testing.T) {
	type tc struct {
		items     int
		pageSize  int
		looping   bool
		moves     func(p *Paginator[string])
		wantPage  int
		wantIndex int
		wantItem  string
	}

	tests := map[string]tc{
		"next item stops at page end": {
			items: 7, pageSize: 3,
			moves:    func(p *Paginator[string]) { p.NextItem(); p.NextItem(); p.NextItem() },
			wantPage: 0, wantIndex: 2, wantItem: "c",
		},
		"next item loops within page": {
			items: 7, pageSize: 3, looping: true,
			moves:    func(p *Paginator[string]) { p.NextItem(); p.NextItem(); p.NextItem() },
			wantPage: 0, wantIndex: 0, wantItem: "a",
		},
		"previous item stops at page start": {
			items: 7, pageSize: 3,
			moves:    func(p *Paginator[string]) { p.PreviousItem() },
			wantPage: 0, wantIndex: 0, wantItem: "a",
		},
		"previous item loops to page end": {
			items: 7, pageSize: 3, looping: true,
			moves:    func(p *Paginator[string]) { p.PreviousItem() },
			wantPage: 0, wantIndex: 2, wantItem: "c",
		},
		"next page keeps index": {
			items: 7, pageSize: 3,
			moves:    func(p *Paginator[string]) { p.NextItem(); p.NextPage() },
			wantPage: 1, wantIndex: 1, wantItem: "e",
		},
		"next page clamps index on short last page": {
			items: 7, pageSize: 3,
			moves:    func(p *Paginator[string]) { p.NextItem(); p.NextItem(); p.NextPage(); p.NextPage() },
			wantPage: 2, wantIndex: 0, wantItem: "g",
		},
		"next page stops at last page": {
			items: 7, pageSize: 3,
			moves:    func(p *Paginator[string]) { p.NextPage(); p.NextPage(); p.NextPage() },
			wantPage: 2, wantIndex: 0, wantItem: "g",
		},
		"next page loops to first": {
			items: 7, pageSize: 3, looping: true,
			moves:    func(p *Paginator[string]) { p.NextPage(); p.NextPage(); p.NextPage() },
			wantPage: 0, wantIndex: 0, wantItem: "a",
		},
		"previous page stops at first page": {
			items: 7, pageSize: 3,
			moves:    func(p *Paginator[string]) { p.PreviousPage() },
			wantPage: 0, wantIndex: 0, wantItem: "a",
		},
		"previous page loops to last": {
			items: 7, pageSize: 3, looping: true,
			moves:    func(p *Paginator[string]) { p.NextItem(); p.PreviousPage() },
			wantPage: 2, wantIndex: 0, wantItem: "g",
		},
		"page size zero shows everything": {
			items: 7, pageSize: 0,
			moves:    func(p *Paginator[string]) { p.NextPage(); p.NextItem(); p.NextItem() },
			wantPage: 0, wantIndex: 2, wantItem: "c",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPaginator(letters(tt.items), tt.pageSize, nil)
			p.LoopingSelection = tt.looping
			tt.moves(p)

			if p.CurrentPage() != tt.wantPage || p.CurrentIndex() != tt.wantIndex {
				t.Errorf("position = page %d index %d, want page %d index %d",
					p.CurrentPage(), p.CurrentIndex(), tt.wantPage, tt.wantIndex)
			}
			item, ok := p.SelectedItem()
			if !ok || item != tt.wantItem {
				t.Errorf("SelectedItem() = %q, %v, want %q", item, ok, tt.wantItem)
			}
		})
	}
}

func TestPaginator_UpdateFilter(t *testing.T) {
	items := []string{"apple", "banana", "cherry", "apricot", "grape", "Avocado"}
	p := NewPaginator(items, 2, nil)

	for _, kw := range []string{"", "a", "ap", "AP", "rr", "zzz", "o"} {
		p.NextPage()
		p.NextItem()
		p.UpdateFilter(kw)

		for item := range p.All() {
			if !strings.Contains(strings.ToLower(item), strings.ToLower(kw)) {
				t.Errorf("UpdateFilter(%q) kept %q", kw, item)
			}
		}
		if p.CurrentPage() != 0 {
			t.Errorf("UpdateFilter(%q) page = %d, want 0", kw, p.CurrentPage())
		}

		_, ok := p.SelectedItem()
		switch {
		case p.TotalCount() == 0:
			if ok || p.CurrentIndex() != -1 {
				t.Errorf("UpdateFilter(%q): empty result still has a current item", kw)
			}
			if p.PageCount() != 1 || len(p.CurrentItems()) != 0 {
				t.Errorf("UpdateFilter(%q): empty result pages = %d, items = %d", kw, p.PageCount(), len(p.CurrentItems()))
			}
		case !ok || p.CurrentIndex() != 0:
			t.Errorf("UpdateFilter(%q): index = %d, want 0", kw, p.CurrentIndex())
		}
		if p.FilterKeyword() != kw {
			t.Errorf("FilterKeyword() = %q, want %q", p.FilterKeyword(), kw)
		}
	}
}

func TestPaginator_UpdateFilterIdempotent(t *testing.T) {
	p := NewPaginator([]string{"alpha", "beta", "gamma", "delta"}, 2, nil)

	p.UpdateFilter("a")
	first := slices.Collect(p.All())
	page, index := p.CurrentPage(), p.CurrentIndex()

	p.UpdateFilter("a")
	if second := slices.Collect(p.All()); !slices.Equal(first, second) {
		t.Errorf("filtered = %q, then %q", first, second)
	}
	if p.CurrentPage() != page || p.CurrentIndex() != index {
		t.Errorf("position changed on repeated filter")
	}
}

func TestPaginator_PageBoundsWithoutLooping(t *testing.T) {
	p := NewPaginator(letters(10), 3, nil)
	moves := []func(){p.NextPage, p.NextPage, p.PreviousPage, p.NextPage, p.NextPage, p.NextPage, p.NextPage, p.PreviousPage,
		p.PreviousPage, p.PreviousPage, p.PreviousPage, p.PreviousPage}

	for i, move := range moves {
		move()
		if p.CurrentPage() < 0 || p.CurrentPage() > p.PageCount()-1 {
			t.Fatalf("move %d: page %d outside [0, %d]", i, p.CurrentPage(), p.PageCount()-1)
		}
		if p.CurrentIndex() >= len(p.CurrentItems()) {
			t.Fatalf("move %d: index %d outside page of %d", i, p.CurrentIndex(), len(p.CurrentItems()))
		}
	}
}

func TestPaginator_UpdatePageSizeKeepsItem(t *testing.T) {
	p := NewPaginator(letters(10), 3, nil)
	p.NextPage()
	p.NextItem() // "e"

	p.UpdatePageSize(4)
	if item, _ := p.SelectedItem(); item != "e" {
		t.Errorf("after resize to 4, SelectedItem() = %q, want %q", item, "e")
	}
	if p.CurrentPage() != 1 || p.CurrentIndex() != 0 {
		t.Errorf("position = page %d index %d, want page 1 index 0", p.CurrentPage(), p.CurrentIndex())
	}
	if p.PageCount() != 3 {
		t.Errorf("PageCount() = %d, want 3", p.PageCount())
	}
}

func TestPaginator_Select(t *testing.T) {
	p := NewPaginator(letters(10), 3, nil)
	if !p.Select("h") {
		t.Fatal("Select(h) = false")
	}
	if item, _ := p.SelectedItem(); item != "h" || p.CurrentPage() != 2 {
		t.Errorf("SelectedItem() = %q on page %d, want h on page 2", item, p.CurrentPage())
	}
	if p.Select("z") {
		t.Error("Select(z) = true for a missing item")
	}
}

func TestPaginator_AllIsFiltered(t *testing.T) {
	p := NewPaginator([]string{"A", "B", "C"}, 1, nil)
	p.UpdateFilter("b")
	if got := slices.Collect(p.All()); !slices.Equal(got, []string{"B"}) {
		t.Errorf("All() = %q, want [B]", got)
	}

	p.UpdateFilter("")
	if got := slices.Collect(p.All()); !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("All() = %q, want every item across pages", got)
	}
}

func TestPageSizeFor(t *testing.T) {
	type tc struct {
		configured, height, want int
	}

	tests := map[string]tc{
		"configured fits":     {configured: 5, height: 24, want: 5},
		"terminal is smaller": {configured: 50, height: 10, want: 6},
		"unbounded":           {configured: 0, height: 10, want: 6},
		"tiny terminal":       {configured: 5, height: 3, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := pageSizeFor(tt.configured, tt.height); got != tt.want {
				t.Errorf("pageSizeFor(%d, %d) = %d, want %d", tt.configured, tt.height, got, tt.want)
			}
		})
	}
}
