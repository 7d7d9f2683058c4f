package prompt

import (
	"fmt"
	"slices"
)

// Choice declares one selectable value with its display text and sort order.
type Choice[T comparable] struct {
	Value T
	Text  string
	// Order sorts choices ascending. Choices with Order <= 0 follow the ordered
	// ones in declaration order.
	Order int
}

// Choices turns declared choices into the items and text selector of a list form.
// An empty Text falls back to fmt.Sprint of the value.
func Choices[T comparable](choices ...Choice[T]) ([]T, TextFunc[T]) {
	sorted := slices.Clone(choices)
	slices.SortStableFunc(sorted, func(a, b Choice[T]) int {
		switch {
		case a.Order > 0 && b.Order > 0:
			return a.Order - b.Order
		case a.Order > 0:
			return -1
		case b.Order > 0:
			return 1
		default:
			return 0
		}
	})

	items := make([]T, len(sorted))
	texts := make(map[T]string, len(sorted))
	for i, c := range sorted {
		items[i] = c.Value
		if c.Text != "" {
			texts[c.Value] = c.Text
		}
	}

	return items, func(v T) string {
		if t, ok := texts[v]; ok {
			return t
		}
		return fmt.Sprint(v)
	}
}
