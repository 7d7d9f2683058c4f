package prompt

// Symbols are the glyphs forms draw with.
type Symbols struct {
	Prompt      string
	Done        string
	Error       string
	Selector    string
	Selected    string
	NotSelected string
}

// UnicodeSymbols is the glyph set for terminals that render Unicode.
var UnicodeSymbols = Symbols{
	Prompt:      "?",
	Done:        "✔",
	Error:       "»",
	Selector:    "›",
	Selected:    "◉",
	NotSelected: "◯",
}

// ASCIISymbols is the fallback glyph set.
var ASCIISymbols = Symbols{
	Prompt:      "?",
	Done:        "V",
	Error:       ">>",
	Selector:    ">",
	Selected:    "(*)",
	NotSelected: "( )",
}

// SymbolsFor picks the glyph set supported by caps.
func SymbolsFor(caps Capabilities) Symbols {
	if caps.Unicode {
		return UnicodeSymbols
	}
	return ASCIISymbols
}
