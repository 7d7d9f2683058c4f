package prompt

import "unicode"

// InputBuffer is the single-line text a user types into a form, with a caret.
type InputBuffer struct {
	runes []rune
	pos   int
}

// NewInputBuffer creates a buffer holding text with the caret at its end.
func NewInputBuffer(text string) *InputBuffer {
	b := &InputBuffer{runes: []rune(text)}
	b.pos = len(b.runes)
	return b
}

// Insert inserts r at the caret.
func (b *InputBuffer) Insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.pos+1:], b.runes[b.pos:])
	b.runes[b.pos] = r
	b.pos++
}

// Backspace deletes the character before the caret.
func (b *InputBuffer) Backspace() {
	if b.pos == 0 {
		return
	}
	b.runes = append(b.runes[:b.pos-1], b.runes[b.pos:]...)
	b.pos--
}

// BackspaceWord deletes the word before the caret along with any spaces
// between the word and the caret.
func (b *InputBuffer) BackspaceWord() {
	start := b.pos
	for start > 0 && unicode.IsSpace(b.runes[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(b.runes[start-1]) {
		start--
	}
	b.runes = append(b.runes[:start], b.runes[b.pos:]...)
	b.pos = start
}

// Delete deletes the character at the caret.
func (b *InputBuffer) Delete() {
	if b.pos < len(b.runes) {
		b.runes = append(b.runes[:b.pos], b.runes[b.pos+1:]...)
	}
}

// MoveLeft moves the caret one character left.
func (b *InputBuffer) MoveLeft() {
	if b.pos > 0 {
		b.pos--
	}
}

// MoveRight moves the caret one character right.
func (b *InputBuffer) MoveRight() {
	if b.pos < len(b.runes) {
		b.pos++
	}
}

// MoveHome moves the caret to the start.
func (b *InputBuffer) MoveHome() { b.pos = 0 }

// MoveEnd moves the caret to the end.
func (b *InputBuffer) MoveEnd() { b.pos = len(b.runes) }

// IsStart reports whether the caret is at the start of the buffer.
func (b *InputBuffer) IsStart() bool { return b.pos == 0 }

// IsEnd reports whether the caret is at the end of the buffer.
func (b *InputBuffer) IsEnd() bool { return b.pos == len(b.runes) }

// Len returns the number of characters in the buffer.
func (b *InputBuffer) Len() int { return len(b.runes) }

// Caret returns the caret position in characters.
func (b *InputBuffer) Caret() int { return b.pos }

// Clear empties the buffer.
func (b *InputBuffer) Clear() {
	b.runes = b.runes[:0]
	b.pos = 0
}

// String returns the buffer text.
func (b *InputBuffer) String() string { return string(b.runes) }

// Split returns the text before and after the caret.
func (b *InputBuffer) Split() (before, after string) {
	return string(b.runes[:b.pos]), string(b.runes[b.pos:])
}
