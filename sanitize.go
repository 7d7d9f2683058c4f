package prompt

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// sanitizeText strips control and ANSI sequences from text written into a frame.
// Styling is carried by StyleKind, never by embedded escapes, and newlines are kept
// so Write can split them into lines.
func sanitizeText(s string) string {
	if !needsSanitize(s) {
		return s
	}
	s = stripANSISequences(s)

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune('\n')
		case r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// Drop remaining C0/DEL control bytes.
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func needsSanitize(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == 0x7f {
			return true
		}
	}
	return false
}

// stripANSISequences removes common escape-sequence forms from text.
func stripANSISequences(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != 0x1b {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				i++
				continue
			}
			b.WriteRune(r)
			i += size
			continue
		}

		if i+1 >= len(s) {
			i++
			continue
		}

		switch s[i+1] {
		case '[':
			// CSI: ESC [ ... final-byte
			i += 2
			for i < len(s) {
				c := s[i]
				i++
				if c >= 0x40 && c <= 0x7e {
					break
				}
			}
		case ']':
			// OSC: ESC ] ... BEL or ST
			i += 2
			for i < len(s) {
				c := s[i]
				i++
				if c == 0x07 {
					break
				}
				if c == 0x1b && i < len(s) && s[i] == '\\' {
					i++
					break
				}
			}
		default:
			// Generic 2-byte escape.
			i += 2
		}
	}

	return b.String()
}

// runeCells returns the number of terminal columns r occupies.
func runeCells(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return w
}

// advance moves a caret at (row, col) past one rune of width w on a terminal of the
// given width. A rune that does not fit on the current row wraps to the next one;
// a caret at col == width is in the terminal's pending-wrap state.
func advance(row, col, w, width int) (int, int) {
	if col > 0 && col+w > width {
		row++
		col = 0
	}
	return row, col + w
}
