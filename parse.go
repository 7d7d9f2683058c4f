package prompt

import "unicode/utf8"

// parseInput decodes raw tty bytes into the key events forms dispatch on.
// Incomplete escape sequences decode as a lone Escape; invalid UTF-8 bytes are dropped.
func parseInput(data []byte) []KeyEvent {
	var events []KeyEvent
	for len(data) > 0 {
		ev, n := decodeKey(data)
		if ev.Key != KeyNone {
			events = append(events, ev)
		}
		data = data[n:]
	}
	return events
}

// decodeKey decodes the first key in data and returns how many bytes it used.
// The event is zero when the bytes carry no key.
func decodeKey(data []byte) (KeyEvent, int) {
	switch b := data[0]; {
	case b == 0x1b:
		return decodeEscape(data)
	case b == 0x7f:
		return KeyEvent{Key: KeyBackspace}, 1
	case b < 0x20:
		ev, _ := controlToKey(b)
		return ev, 1
	}

	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		return KeyEvent{}, 1
	}
	return KeyEvent{Key: KeyRune, Rune: r}, size
}

// decodeEscape decodes a key starting with ESC: a CSI or SS3 sequence, an
// Alt-modified key, or Escape itself.
func decodeEscape(data []byte) (KeyEvent, int) {
	escape := KeyEvent{Key: KeyEscape}
	if len(data) < 2 {
		return escape, 1
	}

	switch next := data[1]; {
	case next == '[':
		key, mod, n := parseCSISequence(data)
		if n == 0 {
			return escape, 1
		}
		return KeyEvent{Key: key, Mod: mod}, n
	case next == 'O':
		if len(data) > 2 {
			if key := parseSS3(data[2]); key != KeyNone {
				return KeyEvent{Key: key}, 3
			}
		}
		return escape, 1
	case next == 0x7f:
		return KeyEvent{Key: KeyBackspace, Mod: ModAlt}, 2
	case next >= 0x20 && next < 0x7f:
		return KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt}, 2
	}
	return escape, 1
}

// controlToKey converts a control character (0x00-0x1F) to a key event.
func controlToKey(b byte) (KeyEvent, bool) {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return KeyEvent{Key: KeyRune, Rune: ' ', Mod: ModCtrl}, true
	case 0x08: // Ctrl+H, sent by most terminals for Ctrl+Backspace
		return KeyEvent{Key: KeyBackspace, Mod: ModCtrl}, true
	case 0x09: // Ctrl+I
		return KeyEvent{Key: KeyTab}, true
	case 0x0a, 0x0d: // Ctrl+J / Ctrl+M
		return KeyEvent{Key: KeyEnter}, true
	case 0x1b:
		return KeyEvent{Key: KeyEscape}, true
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyEvent{Key: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl}, true
	}
	return KeyEvent{}, false
}

// parseCSISequence decodes "ESC [ params final" at the start of data and returns
// the byte count used, or 0 when the sequence is malformed or incomplete.
func parseCSISequence(data []byte) (Key, Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	var params []int
	param, digits := 0, false
	for i := 2; i < len(data); i++ {
		switch b := data[i]; {
		case b >= '0' && b <= '9':
			param = param*10 + int(b-'0')
			digits = true
		case b == ';':
			params = append(params, param)
			param, digits = 0, false
		case b >= 0x40 && b <= 0x7e:
			if digits {
				params = append(params, param)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		default:
			return KeyNone, ModNone, 0
		}
	}
	return KeyNone, ModNone, 0
}

// parseCSI parses a complete CSI sequence given parameters and final byte.
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone

	// xterm-style: CSI 1;mod X
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		switch params[0] {
		case 1, 7:
			return KeyHome, mod
		case 2:
			return KeyInsert, mod
		case 3:
			return KeyDelete, mod
		case 4, 8:
			return KeyEnd, mod
		case 5:
			return KeyPageUp, mod
		case 6:
			return KeyPageDown, mod
		}
	case 'Z':
		// Backtab (Shift+Tab) - CSI Z
		return KeyTab, ModShift
	}

	return KeyNone, ModNone
}

// parseSS3 parses an SS3 sequence final byte.
func parseSS3(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter.
// The parameter is encoded as: 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0)
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}

	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// parseInputWithRemainder decodes data, holding back a trailing partial UTF-8
// sequence for the next read.
func parseInputWithRemainder(data []byte) ([]KeyEvent, []byte) {
	remaining := findIncompleteUTF8Suffix(data)
	if len(remaining) > 0 {
		data = data[:len(data)-len(remaining)]
	}

	return parseInput(data), remaining
}

// findIncompleteUTF8Suffix returns the trailing bytes of data that start a UTF-8
// sequence the next read will complete.
func findIncompleteUTF8Suffix(data []byte) []byte {
	for i := 1; i <= utf8.UTFMax-1 && i <= len(data); i++ {
		b := data[len(data)-i]
		if utf8.RuneStart(b) {
			if b >= 0xC0 && !utf8.FullRune(data[len(data)-i:]) {
				return data[len(data)-i:]
			}
			return nil
		}
	}
	return nil
}
