// Package symbols selects the glyphs used to decorate CLI output.
//
// Terminals that can render Unicode get checkmarks and icons; legacy
// code pages and plain ASCII streams get bracketed fallbacks:
//
//	set := symbols.ForWriter(os.Stdout, false)
//	fmt.Printf("%s Task complete\n", set.Success)
//	// ✓ Task complete     (UTF-8 terminal)
//	// [OK] Task complete  (cp1252 / ASCII terminal)
package symbols

import (
	"io"
	"strings"

	"github.com/gitstory/gitstory/internal/terminal"
)

// Set is one rendering mode's glyphs. Sets are values and never mutated.
type Set struct {
	Success string
	Error   string
	Info    string
	Warning string
	Debug   string
	Arrow   string
	Bullet  string
}

// Unicode is the glyph set for terminals that can render UTF encodings.
var Unicode = Set{
	Success: "✓",
	Error:   "✗",
	Info:    "ℹ",
	Warning: "⚠",
	Debug:   "•",
	Arrow:   "→",
	Bullet:  "•",
}

// ASCII is the fallback glyph set for single-byte code pages.
var ASCII = Set{
	Success: "[OK]",
	Error:   "[X]",
	Info:    "[i]",
	Warning: "[!]",
	Debug:   "[*]",
	Arrow:   "->",
	Bullet:  "*",
}

// asciiOnly lists encodings known to be unable to render the Unicode set.
var asciiOnly = map[string]struct{}{
	"ascii":      {},
	"cp1252":     {},
	"cp437":      {},
	"cp850":      {},
	"latin-1":    {},
	"iso-8859-1": {},
}

// SupportsUnicode reports whether a stream declaring encoding can render
// the Unicode set. An empty encoding means the stream declares none and is
// treated as Unicode-capable, as is any encoding not known to be ASCII-only.
func SupportsUnicode(encoding string) bool {
	if encoding == "" {
		return true
	}
	enc := strings.ToLower(encoding)
	if strings.HasPrefix(enc, "utf") {
		return true
	}
	_, limited := asciiOnly[enc]
	return !limited
}

// Select returns the glyph set for a stream declaring encoding.
// forceASCII always yields [ASCII].
func Select(encoding string, forceASCII bool) Set {
	if forceASCII || !SupportsUnicode(encoding) {
		return ASCII
	}
	return Unicode
}

// ForWriter returns the glyph set for w based on its declared encoding.
func ForWriter(w io.Writer, forceASCII bool) Set {
	return Select(terminal.Encoding(w), forceASCII)
}
