package prompt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"golang.org/x/text/cases"
)

func init() {
	algo.Init("default")
}

// FilterFunc reports whether item matches the filter keyword.
// It is never called with an empty keyword: an empty keyword matches everything.
type FilterFunc[T any] func(item T, keyword string) bool

// TextFunc returns the display text of an item.
type TextFunc[T any] func(item T) string

func defaultText[T any](item T) string {
	return fmt.Sprint(item)
}

// ContainsFilter matches items whose text contains the keyword, ignoring case.
func ContainsFilter[T any](text TextFunc[T]) FilterFunc[T] {
	if text == nil {
		text = defaultText[T]
	}
	fold := cases.Fold()
	return func(item T, keyword string) bool {
		return strings.Contains(fold.String(text(item)), fold.String(keyword))
	}
}

// PrefixFilter matches items whose text starts with the keyword, ignoring case.
func PrefixFilter[T any](text TextFunc[T]) FilterFunc[T] {
	if text == nil {
		text = defaultText[T]
	}
	fold := cases.Fold()
	return func(item T, keyword string) bool {
		return strings.HasPrefix(fold.String(text(item)), fold.String(keyword))
	}
}

// FuzzyFilter matches items whose text contains the keyword's characters in order,
// using fzf's matching algorithm. Matching is case-insensitive unless the keyword
// contains an upper-case letter.
func FuzzyFilter[T any](text TextFunc[T]) FilterFunc[T] {
	if text == nil {
		text = defaultText[T]
	}
	slab := util.MakeSlab(100*1024, 2048)
	return func(item T, keyword string) bool {
		caseSensitive := strings.IndexFunc(keyword, unicode.IsUpper) >= 0
		pattern := []rune(keyword)
		if !caseSensitive {
			pattern = []rune(strings.ToLower(keyword))
		}
		chars := util.ToChars([]byte(text(item)))
		result, _ := algo.FuzzyMatchV2(caseSensitive, false, true, &chars, pattern, false, slab)
		return result.Start >= 0
	}
}
